package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment 评论文档
// post_id 指向父文章且不可变；post_slug 为冗余引用，文章改名时级联更新
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PostID     primitive.ObjectID `bson:"post_id"`
	PostSlug   string             `bson:"post_slug"`
	Author     string             `bson:"author"`
	Content    string             `bson:"content"`
	IsApproved bool               `bson:"is_approved"`
	CreatedAt  time.Time          `bson:"created_at"`
}
