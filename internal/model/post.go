package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 文章文档
// likes/dislikes 为投票者标识集合，同一标识不会同时出现在两个集合中；
// comment_count 为已批准评论数的反范式冗余，由评论操作同步维护
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"` // 全局唯一，URL 安全
	Title       string             `bson:"title"`
	Excerpt     string             `bson:"excerpt,omitempty"`
	Content     string             `bson:"content"`
	PosterImage string             `bson:"poster_image,omitempty"`
	Author      string             `bson:"author"`

	IsPublished bool       `bson:"is_published"`
	IsFeatured  bool       `bson:"is_featured"`
	PublishedAt *time.Time `bson:"published_at,omitempty"` // 首次发布时写入，取消发布不清除

	Views        int64    `bson:"views"`
	Likes        []string `bson:"likes"`
	Dislikes     []string `bson:"dislikes"`
	CommentCount int64    `bson:"comment_count"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// LikeCount 点赞数按集合基数实时计算，不落计数器
func (p *Post) LikeCount() int64 {
	return int64(len(p.Likes))
}

func (p *Post) DislikeCount() int64 {
	return int64(len(p.Dislikes))
}

// HasLiked 判断投票者是否在点赞集合中
func (p *Post) HasLiked(voterID string) bool {
	for _, v := range p.Likes {
		if v == voterID {
			return true
		}
	}
	return false
}

func (p *Post) HasDisliked(voterID string) bool {
	for _, v := range p.Dislikes {
		if v == voterID {
			return true
		}
	}
	return false
}
