package api

import "Beacon/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	PostHandler       *handler.PostHandler
	CommentHandler    *handler.CommentHandler
	EngagementHandler *handler.EngagementHandler
	MediaHandler      *handler.MediaHandler
}
