package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims 管理员会话令牌携带的业务信息
// 站点只有唯一管理员，令牌只断言"已认证"，不携带用户体系
type AdminClaims struct {
	Authenticated bool `json:"authenticated"`
	jwt.RegisteredClaims
}
