package subscription

import (
	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSubscriptionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewSubscriptionRepository(db)
	controller := NewSubscriptionController(repo)

	subs := router.Group("/subscriptions")
	subs.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		subs.GET("/me", controller.MySubscription)
		subs.PUT("/me", controller.ChangePlan)
	}
}
