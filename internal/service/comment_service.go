package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/repository"
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService interface {
	Create(ctx context.Context, postSlug string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	List(ctx context.Context, postSlug string, page, limit int, isAdmin bool) ([]*dto.CommentDTO, error)
	Update(ctx context.Context, id string, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	Delete(ctx context.Context, id string) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Create 公开接口，评论默认自动批准并同步 +1 父文章的评论计数
func (s *commentServiceImpl) Create(ctx context.Context, postSlug string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	author := strings.TrimSpace(req.Author)
	content := strings.TrimSpace(req.Content)
	if author == "" || content == "" {
		return nil, ErrCommentIncomplete
	}

	post, err := s.postRepo.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:     post.ID,
		PostSlug:   post.Slug,
		Author:     author,
		Content:    content,
		IsApproved: true,
		CreatedAt:  time.Now(),
	}
	if err = s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, err
	}

	if err = s.postRepo.IncCommentCount(ctx, post.ID, 1); err != nil {
		return nil, err
	}

	return toCommentDTO(comment), nil
}

// List 非管理端只能看到已批准的评论，按时间倒序
func (s *commentServiceImpl) List(ctx context.Context, postSlug string, page, limit int, isAdmin bool) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	page, limit = normalizePage(page, limit)
	comments, err := s.commentRepo.ListByPostSlug(ctx, postSlug, !isAdmin, int64(page-1)*int64(limit), int64(limit))
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentDTO(c))
	}
	return res, nil
}

// Update 批准状态翻转时原子地 ±1 父文章评论计数；状态未变则不动计数
func (s *commentServiceImpl) Update(ctx context.Context, id string, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}

	comment, err := s.commentRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	upd := repository.CommentUpdate{}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, ErrCommentIncomplete
		}
		upd.Content = &content
		comment.Content = content
	}

	var delta int64
	if req.IsApproved != nil && *req.IsApproved != comment.IsApproved {
		upd.IsApproved = req.IsApproved
		comment.IsApproved = *req.IsApproved
		if *req.IsApproved {
			delta = 1
		} else {
			delta = -1
		}
	}

	if upd.Content == nil && upd.IsApproved == nil {
		return toCommentDTO(comment), nil
	}

	found, err := s.commentRepo.Update(ctx, objectID, upd)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCommentNotFound
	}

	if delta != 0 {
		if err = s.postRepo.IncCommentCount(ctx, comment.PostID, delta); err != nil {
			return nil, err
		}
	}

	return toCommentDTO(comment), nil
}

// Delete 被删评论若处于已批准状态，父文章评论计数 -1
func (s *commentServiceImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}

	comment, err := s.commentRepo.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	found, err := s.commentRepo.Delete(ctx, objectID)
	if err != nil {
		return err
	}
	if !found {
		return ErrCommentNotFound
	}

	if comment.IsApproved {
		if err = s.postRepo.IncCommentCount(ctx, comment.PostID, -1); err != nil {
			return err
		}
	}
	return nil
}
