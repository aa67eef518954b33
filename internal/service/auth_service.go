package service

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/security"
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.CredentialDTO) (string, error)
}

type authServiceImpl struct{}

func NewAuthService() AuthService {
	return &authServiceImpl{}
}

// Login 校验唯一管理员的用户名与口令哈希，签发会话令牌
func (s *authServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (string, error) {
	authCfg := config.Cfg.Auth
	if req.Username != authCfg.AdminUsername {
		return "", ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, authCfg.AdminPasswordHash); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken()
	if err != nil {
		return "", err
	}
	return token, nil
}
