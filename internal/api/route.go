package api

import (
	"Beacon/internal/api/middleware"
	"Beacon/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/logout", group.AuthHandler.Logout)

			verifyGroup := authGroup.Group("")
			verifyGroup.Use(middleware.AuthOptionalMiddleware())
			{
				verifyGroup.GET("/verify", group.AuthHandler.Verify)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			// 访客可读，管理员会话解锁草稿与未批准内容
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/featured", group.PostHandler.GetFeatured)
				authOptGroup.GET("/hero", group.PostHandler.GetHero)
				authOptGroup.GET("/:slug", group.PostHandler.GetPost)
				authOptGroup.GET("/:slug/recommended", group.PostHandler.GetRecommended)
				authOptGroup.GET("/:slug/comments", group.CommentHandler.ListComments)
				authOptGroup.GET("/:slug/engagement", group.EngagementHandler.GetState)
			}

			// 匿名互动入口
			postGroup.POST("/:slug/views", group.EngagementHandler.TrackView)
			postGroup.POST("/:slug/engagement", group.EngagementHandler.Vote)
			postGroup.POST("/:slug/comments", group.CommentHandler.CreateComment)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:slug", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:slug", group.PostHandler.DeletePost)
				authGroup.DELETE("", group.PostHandler.DeleteAllPosts)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.PUT("/:id", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:id", group.CommentHandler.DeleteComment)
		}

		mediaGroup := apiGroup.Group("/images")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("", group.MediaHandler.Upload)
		}
	}

	return r
}
