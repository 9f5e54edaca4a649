package application

import (
	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/cache"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterApplicationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, c *cache.Cache) {
	repo := NewApplicationRepository(db)
	offerRepo := offer.NewOfferRepository(db)
	controller := NewApplicationController(repo, offerRepo, c)

	apps := router.Group("/applications")
	apps.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		apps.POST("", middleware.RequireRole(string(user.RolePlayer)), controller.Apply)
		apps.GET("/my", controller.MyApplications)
		apps.GET("/offer/:id", controller.OfferApplications)
		apps.PUT("/:id/status", controller.UpdateStatus)
		apps.PUT("/:id/withdraw", controller.Withdraw)
		apps.DELETE("/:id", controller.Withdraw)
	}

	offers := router.Group("/offers")
	offers.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		offers.GET("/:id/applications", controller.OfferApplications)
	}
}
