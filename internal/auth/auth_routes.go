package auth

import (
	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	authGroup := router.Group("/auth")
	authGroup.Use(middleware.RateLimitPerIP(rate.Limit(5), 10))
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authProtected.GET("/me", controller.Me)
		authProtected.POST("/logout", controller.Logout)
	}
}
