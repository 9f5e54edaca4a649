package favorite

import (
	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterFavoriteRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewFavoriteRepository(db)
	offerRepo := offer.NewOfferRepository(db)
	userRepo := user.NewUserRepository(db)
	controller := NewFavoriteController(repo, offerRepo, userRepo)

	favorites := router.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		favorites.GET("", controller.ListFavorites)
		favorites.POST("", controller.AddFavorite)
		favorites.GET("/check/:type/:id", controller.CheckFavorite)
		favorites.DELETE("/:type/:id", controller.RemoveFavorite)
	}
}
