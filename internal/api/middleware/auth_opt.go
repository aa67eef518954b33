package middleware

import (
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/security"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：会话有效则标记管理员视角，否则按访客处理
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(consts.AdminSessionCookie)
		if err != nil || tokenString == "" {
			c.Set(consts.IsAdminKey, false)
			c.Next()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil || !claims.Authenticated {
			c.Set(consts.IsAdminKey, false)
		} else {
			c.Set(consts.IsAdminKey, true)
			newCtx := context.WithValue(c.Request.Context(), consts.IsAdminKey, true)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
