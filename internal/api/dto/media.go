package dto

// MediaUploadDTO 图片上传请求：data URL 或裸 base64
type MediaUploadDTO struct {
	Image    string `json:"image" binding:"required"`
	Filename string `json:"filename"`
}

// MediaDTO 图片回显结果，无真实存储后端，URL 即 data URL 本身
type MediaDTO struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}
