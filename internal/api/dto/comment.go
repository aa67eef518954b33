package dto

// CommentCreateDTO 创建评论请求（公开接口）
type CommentCreateDTO struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required,max=2000"`
}

// CommentUpdateDTO 评论管理请求：批准/撤销批准或编辑内容
type CommentUpdateDTO struct {
	Content    *string `json:"content"`
	IsApproved *bool   `json:"is_approved"`
}

// CommentListQuery 评论列表分页参数
type CommentListQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// CommentDTO 评论返回详情
type CommentDTO struct {
	ID         string `json:"id"`
	PostID     string `json:"post_id"`
	PostSlug   string `json:"post_slug"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	IsApproved bool   `json:"is_approved"`
	CreatedAt  string `json:"created_at"`
}
