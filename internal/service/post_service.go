package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/util"
	"Beacon/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const recommendedLimit = 3

type PostService interface {
	List(ctx context.Context, q *dto.PostListQuery, isAdmin bool) (*dto.PostListDTO, error)
	GetBySlug(ctx context.Context, slug string, isAdmin bool) (*dto.PostDTO, error)
	Featured(ctx context.Context) (*dto.FeaturedDTO, error)
	Hero(ctx context.Context) (*dto.PostDTO, error)
	Recommended(ctx context.Context, excludeSlug string) ([]*dto.PostDTO, error)
	Create(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	Update(ctx context.Context, slug string, req *dto.PostUpdateDTO) (*dto.PostDTO, error)
	Delete(ctx context.Context, slug string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo

	// cascadeCommentDelete 删除文章时是否连带删除其评论（显式配置约定）
	cascadeCommentDelete bool
}

func NewPostService(postRepo repository.PostRepo, commentRepo repository.CommentRepo, cascadeCommentDelete bool) PostService {
	return &postServiceImpl{
		postRepo:             postRepo,
		commentRepo:          commentRepo,
		cascadeCommentDelete: cascadeCommentDelete,
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = consts.DefaultPageSize
	}
	if limit > consts.MaxPageSize {
		limit = consts.MaxPageSize
	}
	return page, limit
}

func (s *postServiceImpl) List(ctx context.Context, q *dto.PostListQuery, isAdmin bool) (*dto.PostListDTO, error) {
	page, limit := normalizePage(q.Page, q.Limit)

	sortBy := q.SortBy
	switch sortBy {
	case repository.SortByViews, repository.SortByLikes:
	default:
		sortBy = repository.SortByPublishedAt
	}

	order := -1
	if strings.EqualFold(q.Order, "asc") {
		order = 1
	}

	published := q.Published
	if !isAdmin {
		// 非管理端一律只看已发布
		published = util.PtrBool(true)
	}

	query := repository.PostListQuery{
		Search:          util.EscapeSearch(q.Search),
		PublishedFilter: published,
		SortBy:          sortBy,
		Order:           order,
		Skip:            int64(page-1) * int64(limit),
		Limit:           int64(limit),
	}

	posts, total, err := s.postRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dto.PostListDTO{
		List: toPostDTOs(posts, false),
		Pagination: dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *postServiceImpl) GetBySlug(ctx context.Context, slug string, isAdmin bool) (*dto.PostDTO, error) {
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !post.IsPublished && !isAdmin {
		return nil, UnauthorizedError
	}
	return toPostDTO(post, true), nil
}

// Featured 三个精选位彼此独立，允许同一篇文章占多个位置
func (s *postServiceImpl) Featured(ctx context.Context) (*dto.FeaturedDTO, error) {
	res := &dto.FeaturedDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		posts, err := s.postRepo.TopLiked(gCtx, 1, "")
		if err != nil {
			return err
		}
		if len(posts) > 0 {
			res.Liked = toPostDTO(posts[0], false)
		}
		return nil
	})
	g.Go(func() error {
		post, err := s.postRepo.MostViewed(gCtx)
		if err != nil {
			return err
		}
		if post != nil {
			res.Viewed = toPostDTO(post, false)
		}
		return nil
	})
	g.Go(func() error {
		posts, err := s.postRepo.Latest(gCtx, 1, "")
		if err != nil {
			return err
		}
		if len(posts) > 0 {
			res.Latest = toPostDTO(posts[0], false)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Hero 没有命中时返回 (nil, nil)，由调用方序列化为 null
func (s *postServiceImpl) Hero(ctx context.Context) (*dto.PostDTO, error) {
	post, err := s.postRepo.Hero(ctx)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return toPostDTO(post, false), nil
}

// Recommended 最新 3 篇与最赞 3 篇的并集，按新鲜度优先去重后截断到 3 篇
func (s *postServiceImpl) Recommended(ctx context.Context, excludeSlug string) ([]*dto.PostDTO, error) {
	latest, err := s.postRepo.Latest(ctx, recommendedLimit, excludeSlug)
	if err != nil {
		return nil, err
	}
	liked, err := s.postRepo.TopLiked(ctx, recommendedLimit, excludeSlug)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	merged := make([]*model.Post, 0, recommendedLimit)
	for _, p := range append(latest, liked...) {
		id := p.ID.Hex()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, p)
		if len(merged) == recommendedLimit {
			break
		}
	}

	return toPostDTOs(merged, false), nil
}

func (s *postServiceImpl) Create(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	author := strings.TrimSpace(req.Author)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	if author == "" {
		return nil, ErrAuthorRequired
	}

	slug := util.Slugify(req.Slug)
	if slug == "" {
		slug = util.Slugify(title)
	}
	if slug == "" {
		return nil, ErrParamInvalid
	}

	existing, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugConflict
	}

	if req.IsFeatured {
		// 先清掉其他文章的精选标记，维持全站至多一篇精选
		if err = s.postRepo.ClearFeaturedExcept(ctx, ""); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	post := &model.Post{
		Slug:        slug,
		Title:       title,
		Excerpt:     strings.TrimSpace(req.Excerpt),
		Content:     content,
		PosterImage: req.PosterImage,
		Author:      author,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
		Views:       0,
		Likes:       []string{},
		Dislikes:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsPublished {
		post.PublishedAt = &now
	}

	if err = s.postRepo.Insert(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugConflict
		}
		return nil, err
	}

	return toPostDTO(post, true), nil
}

func (s *postServiceImpl) Update(ctx context.Context, slug string, req *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	existing, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPostNotFound
	}

	upd := repository.PostUpdate{
		Excerpt:     req.Excerpt,
		PosterImage: req.PosterImage,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		upd.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, ErrContentRequired
		}
		upd.Content = &content
	}
	if req.Author != nil {
		author := strings.TrimSpace(*req.Author)
		if author == "" {
			return nil, ErrAuthorRequired
		}
		upd.Author = &author
	}

	finalSlug := slug
	if req.Slug != nil {
		newSlug := util.Slugify(*req.Slug)
		if newSlug == "" {
			return nil, ErrParamInvalid
		}
		if newSlug != slug {
			other, err := s.postRepo.FindBySlug(ctx, newSlug)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, ErrSlugConflict
			}

			// 先级联改写评论的冗余引用，再提交文章自身的 slug
			if _, err = s.commentRepo.CascadeSlug(ctx, slug, newSlug); err != nil {
				return nil, err
			}
			upd.Slug = &newSlug
			finalSlug = newSlug
		}
	}

	// 首次发布写入 published_at，此后不再覆盖，取消发布也不清除
	if req.IsPublished != nil && *req.IsPublished && existing.PublishedAt == nil {
		now := time.Now()
		upd.PublishedAt = &now
	}

	if req.IsFeatured != nil && *req.IsFeatured {
		if err = s.postRepo.ClearFeaturedExcept(ctx, slug); err != nil {
			return nil, err
		}
	}

	found, err := s.postRepo.Update(ctx, slug, upd)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugConflict
		}
		return nil, err
	}
	if !found {
		return nil, ErrPostNotFound
	}

	updated, err := s.postRepo.FindBySlug(ctx, finalSlug)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(updated, true), nil
}

func (s *postServiceImpl) Delete(ctx context.Context, slug string) (bool, error) {
	post, err := s.postRepo.Delete(ctx, slug)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}

	if s.cascadeCommentDelete {
		if _, err = s.commentRepo.DeleteByPostID(ctx, post.ID); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (s *postServiceImpl) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.postRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	if s.cascadeCommentDelete {
		if _, err = s.commentRepo.DeleteAll(ctx); err != nil {
			return count, err
		}
	}
	return count, nil
}
