package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/enzogallo/sportsmatch-api/config"
	_ "github.com/enzogallo/sportsmatch-api/docs"
	"github.com/enzogallo/sportsmatch-api/internal/application"
	"github.com/enzogallo/sportsmatch-api/internal/cache"
	"github.com/enzogallo/sportsmatch-api/internal/favorite"
	"github.com/enzogallo/sportsmatch-api/internal/message"
	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"github.com/enzogallo/sportsmatch-api/internal/subscription"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/enzogallo/sportsmatch-api/routes"
)

// @title SportsMatch REST API
// @version 1.0
// @description Two-sided marketplace backend connecting players and clubs.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	_, flush := config.InitLogger(cfg)
	defer flush()

	err := config.DB.AutoMigrate(
		&user.User{},
		&offer.Offer{},
		&application.Application{},
		&message.Conversation{}, &message.Message{},
		&favorite.Favorite{},
		&subscription.Subscription{},
	)
	if err != nil {
		config.Logger.Fatal("automigrate failed", zap.Error(err))
	}

	redisCache := cache.New(cfg)

	r := routes.SetupRoutes(config.DB, cfg, redisCache)

	config.Logger.Info("starting server",
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		config.Logger.Fatal("server exited", zap.Error(err))
	}
}
