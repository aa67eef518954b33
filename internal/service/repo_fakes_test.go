package service

import (
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/repository"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版仓储，语义对齐真实实现：未命中返回 (nil, nil)，投票为条件更新

type fakePostRepo struct {
	mu    sync.Mutex
	posts []*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{}
}

func (r *fakePostRepo) clone(p *model.Post) *model.Post {
	cp := *p
	cp.Likes = append([]string(nil), p.Likes...)
	cp.Dislikes = append([]string(nil), p.Dislikes...)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		cp.PublishedAt = &t
	}
	return &cp
}

func (r *fakePostRepo) find(slug string) *model.Post {
	for _, p := range r.posts {
		if p.Slug == slug {
			return p
		}
	}
	return nil
}

func (r *fakePostRepo) Insert(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(post.Slug) != nil {
		return repository.ErrDuplicateSlug
	}
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	r.posts = append(r.posts, r.clone(post))
	return nil
}

func (r *fakePostRepo) FindBySlug(_ context.Context, slug string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.find(slug); p != nil {
		return r.clone(p), nil
	}
	return nil, nil
}

func (r *fakePostRepo) List(_ context.Context, q repository.PostListQuery) ([]*model.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*model.Post
	for _, p := range r.posts {
		if q.PublishedFilter != nil && p.IsPublished != *q.PublishedFilter {
			continue
		}
		if q.Search != "" {
			needle := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(p.Title), needle) &&
				!strings.Contains(strings.ToLower(p.Excerpt), needle) {
				continue
			}
		}
		matched = append(matched, p)
	}

	desc := q.Order != 1
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch q.SortBy {
		case repository.SortByViews:
			less = matched[i].Views < matched[j].Views
		case repository.SortByLikes:
			less = len(matched[i].Likes) < len(matched[j].Likes)
		default:
			ti, tj := matched[i].PublishedAt, matched[j].PublishedAt
			switch {
			case ti == nil:
				less = true
			case tj == nil:
				less = false
			default:
				less = ti.Before(*tj)
			}
		}
		if desc {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := q.Skip
	if start > total {
		start = total
	}
	end := start + q.Limit
	if q.Limit <= 0 || end > total {
		end = total
	}

	out := make([]*model.Post, 0, end-start)
	for _, p := range matched[start:end] {
		cp := r.clone(p)
		cp.Content = ""
		out = append(out, cp)
	}
	return out, total, nil
}

func (r *fakePostRepo) published(excludeSlug string) []*model.Post {
	var out []*model.Post
	for _, p := range r.posts {
		if !p.IsPublished || p.Slug == excludeSlug {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *fakePostRepo) Latest(_ context.Context, limit int64, excludeSlug string) ([]*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := r.published(excludeSlug)
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].PublishedAt, posts[j].PublishedAt
		if ti == nil || tj == nil {
			return tj == nil
		}
		return ti.After(*tj)
	})
	if int64(len(posts)) > limit {
		posts = posts[:limit]
	}
	out := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, r.clone(p))
	}
	return out, nil
}

func (r *fakePostRepo) TopLiked(_ context.Context, limit int64, excludeSlug string) ([]*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := r.published(excludeSlug)
	sort.SliceStable(posts, func(i, j int) bool {
		return len(posts[i].Likes) > len(posts[j].Likes)
	})
	if int64(len(posts)) > limit {
		posts = posts[:limit]
	}
	out := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, r.clone(p))
	}
	return out, nil
}

func (r *fakePostRepo) MostViewed(_ context.Context) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *model.Post
	for _, p := range r.published("") {
		if best == nil || p.Views > best.Views {
			best = p
		}
	}
	if best == nil {
		return nil, nil
	}
	return r.clone(best), nil
}

func (r *fakePostRepo) Hero(_ context.Context) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *model.Post
	for _, p := range r.published("") {
		if !p.IsFeatured {
			continue
		}
		if best == nil {
			best = p
			continue
		}
		bt, pt := best.PublishedAt, p.PublishedAt
		if bt == nil || (pt != nil && pt.After(*bt)) {
			best = p
		}
	}
	if best == nil {
		return nil, nil
	}
	return r.clone(best), nil
}

func (r *fakePostRepo) Update(_ context.Context, slug string, upd repository.PostUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(slug)
	if p == nil {
		return false, nil
	}
	if upd.Slug != nil && *upd.Slug != slug && r.find(*upd.Slug) != nil {
		return false, repository.ErrDuplicateSlug
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Slug != nil {
		p.Slug = *upd.Slug
	}
	if upd.Excerpt != nil {
		p.Excerpt = *upd.Excerpt
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.PosterImage != nil {
		p.PosterImage = *upd.PosterImage
	}
	if upd.Author != nil {
		p.Author = *upd.Author
	}
	if upd.IsPublished != nil {
		p.IsPublished = *upd.IsPublished
	}
	if upd.IsFeatured != nil {
		p.IsFeatured = *upd.IsFeatured
	}
	if upd.PublishedAt != nil {
		t := *upd.PublishedAt
		p.PublishedAt = &t
	}
	p.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakePostRepo) ClearFeaturedExcept(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug != slug {
			p.IsFeatured = false
		}
	}
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, slug string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.Slug == slug {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return r.clone(p), nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.posts))
	r.posts = nil
	return n, nil
}

func (r *fakePostRepo) IncrementViews(_ context.Context, slug string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(slug)
	if p == nil {
		return nil, nil
	}
	p.Views++
	return r.clone(p), nil
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func remove(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func (r *fakePostRepo) AddVote(_ context.Context, slug, voterID, action string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(slug)
	if p == nil {
		return false, nil
	}
	if action == consts.VoteActionLike {
		if contains(p.Likes, voterID) {
			return false, nil
		}
		p.Likes = append(p.Likes, voterID)
		p.Dislikes = remove(p.Dislikes, voterID)
	} else {
		if contains(p.Dislikes, voterID) {
			return false, nil
		}
		p.Dislikes = append(p.Dislikes, voterID)
		p.Likes = remove(p.Likes, voterID)
	}
	return true, nil
}

func (r *fakePostRepo) RemoveVote(_ context.Context, slug, voterID, action string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(slug)
	if p == nil {
		return false, nil
	}
	if action == consts.VoteActionLike {
		if !contains(p.Likes, voterID) {
			return false, nil
		}
		p.Likes = remove(p.Likes, voterID)
	} else {
		if !contains(p.Dislikes, voterID) {
			return false, nil
		}
		p.Dislikes = remove(p.Dislikes, voterID)
	}
	return true, nil
}

func (r *fakePostRepo) IncCommentCount(_ context.Context, id primitive.ObjectID, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			p.CommentCount += delta
			return nil
		}
	}
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Insert(_ context.Context, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	cp := *comment
	r.comments = append(r.comments, &cp)
	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCommentRepo) ListByPostSlug(_ context.Context, slug string, approvedOnly bool, skip, limit int64) ([]*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*model.Comment
	for _, c := range r.comments {
		if c.PostSlug != slug {
			continue
		}
		if approvedOnly && !c.IsApproved {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if skip > total {
		skip = total
	}
	end := skip + limit
	if limit <= 0 || end > total {
		end = total
	}

	out := make([]*model.Comment, 0, end-skip)
	for _, c := range matched[skip:end] {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, id primitive.ObjectID, upd repository.CommentUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.ID == id {
			if upd.Content != nil {
				c.Content = *upd.Content
			}
			if upd.IsApproved != nil {
				c.IsApproved = *upd.IsApproved
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.comments {
		if c.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCommentRepo) CascadeSlug(_ context.Context, oldSlug, newSlug string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.comments {
		if c.PostSlug == oldSlug {
			c.PostSlug = newSlug
			n++
		}
	}
	return n, nil
}

func (r *fakeCommentRepo) DeleteByPostID(_ context.Context, postID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*model.Comment
	var n int64
	for _, c := range r.comments {
		if c.PostID == postID {
			n++
			continue
		}
		kept = append(kept, c)
	}
	r.comments = kept
	return n, nil
}

func (r *fakeCommentRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.comments))
	r.comments = nil
	return n, nil
}
