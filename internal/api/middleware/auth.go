package middleware

import (
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/response"
	"Beacon/internal/pkg/security"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 管理端强制鉴权：从会话 Cookie 中解析 JWT，失败直接拒绝
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(consts.AdminSessionCookie)
		if err != nil || tokenString == "" {
			response.Fail(c, response.Unauthorized, "会话缺失，请先登录")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil || !claims.Authenticated {
			response.Fail(c, response.Unauthorized, "会话无效或已过期")
			c.Abort()
			return
		}

		c.Set(consts.IsAdminKey, true)

		newCtx := context.WithValue(c.Request.Context(), consts.IsAdminKey, true)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
