package offer

import (
	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/cache"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterOfferRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, c *cache.Cache) {
	repo := NewOfferRepository(db)
	controller := NewOfferController(repo, c)

	offers := router.Group("/offers")
	{
		offers.GET("", controller.ListOffers)
		offers.GET("/:id", controller.GetOffer)
	}

	offersProtected := router.Group("/offers")
	offersProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		offersProtected.POST("", middleware.RequireRole(string(user.RoleClub)), controller.CreateOffer)
		offersProtected.PUT("/:id", controller.UpdateOffer)
		offersProtected.DELETE("/:id", controller.DeleteOffer)
	}

	// A club's public offer feed lives under the user resource.
	router.GET("/users/:id/offers", controller.ListClubOffers)
}
