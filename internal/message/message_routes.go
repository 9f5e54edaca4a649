package message

import (
	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterMessageRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewMessageRepository(db)
	userRepo := user.NewUserRepository(db)
	controller := NewMessageController(repo, userRepo)

	messages := router.Group("/messages")
	messages.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		messages.POST("", controller.SendMessage)
		messages.POST("/conversations", controller.CreateConversation)
		messages.GET("/conversations", controller.ListConversations)
		messages.GET("/conversations/:id", controller.ListMessages)
		messages.PUT("/conversations/:id/read", controller.MarkRead)
	}
}
