package user

import (
	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo)

	users := router.Group("/users")
	{
		users.GET("", controller.SearchUsers)
		users.GET("/:id", controller.GetUser)
		users.GET("/:id/performance", controller.GetPerformance)
	}

	usersProtected := router.Group("/users")
	usersProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		usersProtected.PUT("/:id", controller.UpdateUser)
		usersProtected.PUT("/:id/performance", controller.UpdatePerformance)
	}
}
