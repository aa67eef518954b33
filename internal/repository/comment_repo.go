package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentUpdate 部分更新，nil 字段保持不变
type CommentUpdate struct {
	Content    *string
	IsApproved *bool
}

type CommentRepo interface {
	Insert(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	ListByPostSlug(ctx context.Context, slug string, approvedOnly bool, skip, limit int64) ([]*model.Comment, error)
	Update(ctx context.Context, id primitive.ObjectID, upd CommentUpdate) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	CascadeSlug(ctx context.Context, oldSlug, newSlug string) (int64, error)
	DeleteByPostID(ctx context.Context, postID primitive.ObjectID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type commentRepoImpl struct {
	col       *mongo.Collection
	opTimeout time.Duration
}

func NewCommentRepo(db *mongo.Database, opTimeout time.Duration) CommentRepo {
	return &commentRepoImpl{
		col:       db.Collection("comments"),
		opTimeout: opTimeout,
	}
}

func (r *commentRepoImpl) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

func (r *commentRepoImpl) Insert(ctx context.Context, comment *model.Comment) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}

// FindByID 未命中时返回 (nil, nil)
func (r *commentRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var comment model.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPostSlug 按创建时间倒序分页
func (r *commentRepoImpl) ListByPostSlug(ctx context.Context, slug string, approvedOnly bool, skip, limit int64) ([]*model.Comment, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	filter := bson.M{"post_slug": slug}
	if approvedOnly {
		filter["is_approved"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepoImpl) Update(ctx context.Context, id primitive.ObjectID, upd CommentUpdate) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	set := bson.M{}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.IsApproved != nil {
		set["is_approved"] = *upd.IsApproved
	}
	if len(set) == 0 {
		return true, nil
	}

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *commentRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// CascadeSlug 文章改名时批量改写冗余的 post_slug 引用
func (r *commentRepoImpl) CascadeSlug(ctx context.Context, oldSlug, newSlug string) (int64, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"post_slug": oldSlug},
		bson.M{"$set": bson.M{"post_slug": newSlug}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *commentRepoImpl) DeleteByPostID(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *commentRepoImpl) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
