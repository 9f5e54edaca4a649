package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/application"
	"github.com/enzogallo/sportsmatch-api/internal/auth"
	"github.com/enzogallo/sportsmatch-api/internal/cache"
	"github.com/enzogallo/sportsmatch-api/internal/favorite"
	"github.com/enzogallo/sportsmatch-api/internal/message"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"github.com/enzogallo/sportsmatch-api/internal/subscription"
	"github.com/enzogallo/sportsmatch-api/internal/user"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config, c *cache.Cache) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(ginzap.Ginzap(config.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(config.Logger, true))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	if appConfig.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	user.RegisterUserRoutes(api, db, appConfig)
	offer.RegisterOfferRoutes(api, db, appConfig, c)
	application.RegisterApplicationRoutes(api, db, appConfig, c)
	message.RegisterMessageRoutes(api, db, appConfig)
	favorite.RegisterFavoriteRoutes(api, db, appConfig)
	subscription.RegisterSubscriptionRoutes(api, db, appConfig)

	return r
}
