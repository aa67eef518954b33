package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/viewledger"
	"Beacon/internal/repository"
	"context"
	"strings"
	"time"
)

type EngagementService interface {
	Vote(ctx context.Context, slug, voterID, action string) (*dto.EngagementDTO, error)
	State(ctx context.Context, slug, voterID string, isAdmin bool) (*dto.EngagementDTO, error)
	TrackView(ctx context.Context, slug string, ledger viewledger.Ledger, now time.Time) (*dto.ViewDTO, error)
}

type engagementServiceImpl struct {
	postRepo repository.PostRepo
}

func NewEngagementService(postRepo repository.PostRepo) EngagementService {
	return &engagementServiceImpl{postRepo: postRepo}
}

// Vote 切换语义：首次投加入对应集合并自动撤掉反向票，重复投为撤销
// 加入/撤销各是一条原子更新，不存在读改写竞态窗口
func (s *engagementServiceImpl) Vote(ctx context.Context, slug, voterID, action string) (*dto.EngagementDTO, error) {
	voterID = strings.TrimSpace(voterID)
	if voterID == "" {
		return nil, ErrVoterRequired
	}
	if action != consts.VoteActionLike && action != consts.VoteActionDislike {
		return nil, ErrInvalidVoteAction
	}

	added, err := s.postRepo.AddVote(ctx, slug, voterID, action)
	if err != nil {
		return nil, err
	}
	if !added {
		// 未命中：要么已投过（撤销），要么文章不存在
		removed, err := s.postRepo.RemoveVote(ctx, slug, voterID, action)
		if err != nil {
			return nil, err
		}
		if !removed {
			post, err := s.postRepo.FindBySlug(ctx, slug)
			if err != nil {
				return nil, err
			}
			if post == nil {
				return nil, ErrPostNotFound
			}
			// 并发下状态已被他处修正，按当前状态返回即可
		}
	}

	// 变更后重新读取，返回新鲜计数而非写前快照
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return engagementState(post, voterID, true), nil
}

func (s *engagementServiceImpl) State(ctx context.Context, slug, voterID string, isAdmin bool) (*dto.EngagementDTO, error) {
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return engagementState(post, voterID, isAdmin), nil
}

// TrackView 浏览计数：账本窗口内的重复浏览不计数，其余原子自增后刷新账本
// 账本由调用方随 Cookie 传入，本方法就地修剪并回填
func (s *engagementServiceImpl) TrackView(ctx context.Context, slug string, ledger viewledger.Ledger, now time.Time) (*dto.ViewDTO, error) {
	if ledger.Seen(slug, now, consts.ViewDedupWindow) {
		post, err := s.postRepo.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, ErrPostNotFound
		}
		return &dto.ViewDTO{Views: post.Views, Incremented: false}, nil
	}

	post, err := s.postRepo.IncrementViews(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	ledger.Touch(slug, now)
	ledger.Prune(now, consts.ViewDedupWindow, consts.ViewLedgerMaxEntries)

	return &dto.ViewDTO{Views: post.Views, Incremented: true}, nil
}

func engagementState(post *model.Post, voterID string, withDislikes bool) *dto.EngagementDTO {
	state := &dto.EngagementDTO{
		LikeCount: post.LikeCount(),
	}
	if withDislikes {
		count := post.DislikeCount()
		state.DislikeCount = &count
	}
	if voterID != "" {
		state.VoterLiked = post.HasLiked(voterID)
		state.VoterDisliked = post.HasDisliked(voterID)
	}
	return state
}
