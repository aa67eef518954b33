package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	isAdmin := c.GetBool(consts.IsAdminKey)

	var q dto.PostListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	list, err := s.postSvc.List(c.Request.Context(), &q, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	isAdmin := c.GetBool(consts.IsAdminKey)
	slug := c.Param("slug")

	post, err := s.postSvc.GetBySlug(c.Request.Context(), slug, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetFeatured(c *gin.Context) {
	featured, err := s.postSvc.Featured(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, featured)
}

func (s *PostHandler) GetHero(c *gin.Context) {
	hero, err := s.postSvc.Hero(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, hero)
}

func (s *PostHandler) GetRecommended(c *gin.Context) {
	slug := c.Param("slug")

	posts, err := s.postSvc.Recommended(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.PostUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.Update(c.Request.Context(), slug, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	slug := c.Param("slug")

	found, err := s.postSvc.Delete(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		response.Error(c, service.ErrPostNotFound)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) DeleteAllPosts(c *gin.Context) {
	count, err := s.postSvc.DeleteAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.DeleteAllDTO{DeletedCount: count})
}
