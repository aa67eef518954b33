package repository

import (
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateSlug slug 唯一索引冲突
var ErrDuplicateSlug = errors.New("slug already exists")

const (
	SortByPublishedAt = "published_at"
	SortByViews       = "views"
	SortByLikes       = "likes"
)

// PostListQuery 列表查询条件
type PostListQuery struct {
	// Search 标题/摘要的不区分大小写子串匹配，调用方负责转义
	Search string

	// PublishedFilter nil 表示不过滤发布状态
	PublishedFilter *bool

	SortBy string
	Order  int // 1 升序，-1 降序
	Skip   int64
	Limit  int64
}

// PostUpdate 部分更新，nil 字段保持不变（与置空是两回事）
type PostUpdate struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	PosterImage *string
	Author      *string
	IsPublished *bool
	IsFeatured  *bool
	PublishedAt *time.Time
}

type PostRepo interface {
	Insert(ctx context.Context, post *model.Post) error
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context, q PostListQuery) ([]*model.Post, int64, error)
	Latest(ctx context.Context, limit int64, excludeSlug string) ([]*model.Post, error)
	TopLiked(ctx context.Context, limit int64, excludeSlug string) ([]*model.Post, error)
	MostViewed(ctx context.Context) (*model.Post, error)
	Hero(ctx context.Context) (*model.Post, error)
	Update(ctx context.Context, slug string, upd PostUpdate) (bool, error)
	ClearFeaturedExcept(ctx context.Context, slug string) error
	Delete(ctx context.Context, slug string) (*model.Post, error)
	DeleteAll(ctx context.Context) (int64, error)
	IncrementViews(ctx context.Context, slug string) (*model.Post, error)
	AddVote(ctx context.Context, slug, voterID, action string) (bool, error)
	RemoveVote(ctx context.Context, slug, voterID, action string) (bool, error)
	IncCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error
}

type postRepoImpl struct {
	col       *mongo.Collection
	opTimeout time.Duration
}

func NewPostRepo(db *mongo.Database, opTimeout time.Duration) PostRepo {
	return &postRepoImpl{
		col:       db.Collection("posts"),
		opTimeout: opTimeout,
	}
}

func (r *postRepoImpl) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

func (r *postRepoImpl) Insert(ctx context.Context, post *model.Post) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// FindBySlug 未命中时返回 (nil, nil)
func (r *postRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var post model.Post
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepoImpl) listFilter(q PostListQuery) bson.M {
	filter := bson.M{}
	if q.PublishedFilter != nil {
		filter["is_published"] = *q.PublishedFilter
	}
	if q.Search != "" {
		pattern := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"excerpt": pattern},
		}
	}
	return filter
}

// List 列表返回不含 content 正文，按 likes 排序时走聚合按集合基数计算
func (r *postRepoImpl) List(ctx context.Context, q PostListQuery) ([]*model.Post, int64, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	filter := r.listFilter(q)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	order := q.Order
	if order != 1 {
		order = -1
	}

	var cursor *mongo.Cursor
	if q.SortBy == SortByLikes {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: filter}},
			bson.D{{Key: "$addFields", Value: bson.M{
				"like_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{
				{Key: "like_count", Value: order},
				{Key: "created_at", Value: order},
			}}},
			bson.D{{Key: "$skip", Value: q.Skip}},
			bson.D{{Key: "$limit", Value: q.Limit}},
			bson.D{{Key: "$project", Value: bson.M{"content": 0, "like_count": 0}}},
		}
		cursor, err = r.col.Aggregate(ctx, pipeline)
	} else {
		sortField := SortByPublishedAt
		if q.SortBy == SortByViews {
			sortField = SortByViews
		}
		opts := options.Find().
			SetSort(bson.D{{Key: sortField, Value: order}, {Key: "created_at", Value: order}}).
			SetSkip(q.Skip).
			SetLimit(q.Limit).
			SetProjection(bson.M{"content": 0})
		cursor, err = r.col.Find(ctx, filter, opts)
	}
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Latest 最近发布的已发布文章
func (r *postRepoImpl) Latest(ctx context.Context, limit int64, excludeSlug string) ([]*model.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	filter := bson.M{"is_published": true}
	if excludeSlug != "" {
		filter["slug"] = bson.M{"$ne": excludeSlug}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// TopLiked 按点赞集合基数降序的已发布文章
func (r *postRepoImpl) TopLiked(ctx context.Context, limit int64, excludeSlug string) ([]*model.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	match := bson.M{"is_published": true}
	if excludeSlug != "" {
		match["slug"] = bson.M{"$ne": excludeSlug}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"like_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "like_count", Value: -1},
			{Key: "published_at", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{"like_count": 0}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// MostViewed 浏览量最高的已发布文章，没有则返回 (nil, nil)
func (r *postRepoImpl) MostViewed(ctx context.Context) (*model.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "views", Value: -1}})
	var post model.Post
	err := r.col.FindOne(ctx, bson.M{"is_published": true}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Hero 最近发布且带精选标记的文章，没有则返回 (nil, nil)
func (r *postRepoImpl) Hero(ctx context.Context) (*model.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "published_at", Value: -1}})
	var post model.Post
	err := r.col.FindOne(ctx, bson.M{"is_published": true, "is_featured": true}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 只写入非 nil 字段，返回是否命中文档
func (r *postRepoImpl) Update(ctx context.Context, slug string, upd PostUpdate) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}
	if upd.Excerpt != nil {
		set["excerpt"] = *upd.Excerpt
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.PosterImage != nil {
		set["poster_image"] = *upd.PosterImage
	}
	if upd.Author != nil {
		set["author"] = *upd.Author
	}
	if upd.IsPublished != nil {
		set["is_published"] = *upd.IsPublished
	}
	if upd.IsFeatured != nil {
		set["is_featured"] = *upd.IsFeatured
	}
	if upd.PublishedAt != nil {
		set["published_at"] = *upd.PublishedAt
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, ErrDuplicateSlug
		}
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// ClearFeaturedExcept 清除除指定 slug 外所有文章的精选标记
func (r *postRepoImpl) ClearFeaturedExcept(ctx context.Context, slug string) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	filter := bson.M{"is_featured": true}
	if slug != "" {
		filter["slug"] = bson.M{"$ne": slug}
	}
	_, err := r.col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_featured": false}})
	return err
}

// Delete 硬删除，返回被删除的文档（供级联使用），未命中返回 (nil, nil)
func (r *postRepoImpl) Delete(ctx context.Context, slug string) (*model.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var post model.Post
	err := r.col.FindOneAndDelete(ctx, bson.M{"slug": slug}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepoImpl) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// IncrementViews 原子自增浏览量并返回更新后的文档，未命中返回 (nil, nil)
func (r *postRepoImpl) IncrementViews(ctx context.Context, slug string) (*model.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post model.Post
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func voteFields(action string) (own, opposite string) {
	if action == consts.VoteActionLike {
		return "likes", "dislikes"
	}
	return "dislikes", "likes"
}

// AddVote 单条原子更新：加入己方集合并从对方集合移除
// 过滤条件要求投票者尚不在己方集合中，未命中（已投过或文章不存在）返回 false
func (r *postRepoImpl) AddVote(ctx context.Context, slug, voterID, action string) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	own, opposite := voteFields(action)
	filter := bson.M{"slug": slug, own: bson.M{"$ne": voterID}}
	update := bson.M{
		"$addToSet": bson.M{own: voterID},
		"$pull":     bson.M{opposite: voterID},
	}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// RemoveVote 原子撤销：仅当投票者在己方集合中时拉出
func (r *postRepoImpl) RemoveVote(ctx context.Context, slug, voterID, action string) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	own, _ := voteFields(action)
	filter := bson.M{"slug": slug, own: voterID}
	update := bson.M{"$pull": bson.M{own: voterID}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// IncCommentCount 评论数反范式计数的原子增减
func (r *postRepoImpl) IncCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	_, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"comment_count": delta}})
	return err
}
