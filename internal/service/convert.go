package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

func toPostDTO(post *model.Post, withContent bool) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)

	item.ID = post.ID.Hex()
	item.LikeCount = post.LikeCount()
	item.DislikeCount = post.DislikeCount()

	if !withContent {
		item.Content = ""
	}

	if post.PublishedAt != nil {
		item.PublishedAt = post.PublishedAt.Format(timeLayout)
	}
	item.CreatedAt = post.CreatedAt.Format(timeLayout)
	item.UpdatedAt = post.UpdatedAt.Format(timeLayout)

	return item
}

func toPostDTOs(posts []*model.Post, withContent bool) []*dto.PostDTO {
	list := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		list = append(list, toPostDTO(p, withContent))
	}
	return list
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)

	item.ID = comment.ID.Hex()
	item.PostID = comment.PostID.Hex()
	item.CreatedAt = comment.CreatedAt.Format(timeLayout)

	return item
}
