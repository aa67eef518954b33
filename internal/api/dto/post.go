package dto

// PostDTO 文章
type PostDTO struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content,omitempty"` // 列表载荷不带正文
	PosterImage string `json:"poster_image,omitempty"`
	Author      string `json:"author"`

	IsPublished bool   `json:"is_published"`
	IsFeatured  bool   `json:"is_featured"`
	PublishedAt string `json:"published_at,omitempty"`

	Views        int64 `json:"views"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
	CommentCount int64 `json:"comment_count"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PostCreateDTO 文章 - 新增
type PostCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content" binding:"required"`
	PosterImage string `json:"poster_image"`
	Author      string `json:"author" binding:"required"`
	IsPublished bool   `json:"is_published"`
	IsFeatured  bool   `json:"is_featured"`
}

// PostUpdateDTO 文章 - 部分更新，缺省字段保持不变（与置空是两回事）
type PostUpdateDTO struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	PosterImage *string `json:"poster_image"`
	Author      *string `json:"author"`
	IsPublished *bool   `json:"is_published"`
	IsFeatured  *bool   `json:"is_featured"`
}

// PostListQuery 列表查询参数
type PostListQuery struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by,default=published_at"`
	Order     string `form:"order,default=desc"`
	Published *bool  `form:"published"`
}

// PaginationDTO 分页信息
type PaginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// PostListDTO 文章列表响应
type PostListDTO struct {
	List       []*PostDTO    `json:"list"`
	Pagination PaginationDTO `json:"pagination"`
}

// FeaturedDTO 三个独立的精选位，均可为空，同一篇文章可占多个位置
type FeaturedDTO struct {
	Liked  *PostDTO `json:"liked"`
	Viewed *PostDTO `json:"viewed"`
	Latest *PostDTO `json:"latest"`
}

// DeleteAllDTO 批量清除响应
type DeleteAllDTO struct {
	DeletedCount int64 `json:"deleted_count"`
}
