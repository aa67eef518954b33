package wire

import (
	"Beacon/internal/api"
	"Beacon/internal/api/config"
	"Beacon/internal/api/handler"
	"Beacon/internal/repository"
	"Beacon/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *mongo.Database
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	opTimeout := time.Duration(cfg.Mongo.OpTimeout) * time.Second

	postRepo := repository.NewPostRepo(db, opTimeout)
	commentRepo := repository.NewCommentRepo(db, opTimeout)

	postService := service.NewPostService(postRepo, commentRepo, cfg.Blog.CascadeCommentDelete)
	commentService := service.NewCommentService(commentRepo, postRepo)
	engagementService := service.NewEngagementService(postRepo)
	authService := service.NewAuthService()
	mediaService := service.NewMediaService()

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		PostHandler:       handler.NewPostHandler(postService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		EngagementHandler: handler.NewEngagementHandler(engagementService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
