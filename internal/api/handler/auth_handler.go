package handler

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// Login 校验凭据并下发 httpOnly 会话 Cookie
func (s *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := config.Cfg.Auth.TokenTTLHours * 3600
	c.SetCookie(consts.AdminSessionCookie, token, maxAge, "/", "", false, true)
	response.Success(c, dto.AuthStateDTO{Authenticated: true})
}

// Logout 清除会话 Cookie，无服务端吊销名单，已签发令牌自然过期
func (s *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(consts.AdminSessionCookie, "", -1, "/", "", false, true)
	response.Success(c, dto.AuthStateDTO{Authenticated: false})
}

// Verify 报告当前会话状态，配合可选鉴权中间件使用
func (s *AuthHandler) Verify(c *gin.Context) {
	response.Success(c, dto.AuthStateDTO{Authenticated: c.GetBool(consts.IsAdminKey)})
}
