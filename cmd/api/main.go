package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edudesk/school-admin-api/internal/config"
	"github.com/edudesk/school-admin-api/internal/database"
	"github.com/edudesk/school-admin-api/internal/handlers"
	"github.com/edudesk/school-admin-api/internal/logger"
	"github.com/edudesk/school-admin-api/internal/middleware"
	"github.com/edudesk/school-admin-api/internal/repository"
	"github.com/edudesk/school-admin-api/internal/services"
	"github.com/edudesk/school-admin-api/internal/validation"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	gin.SetMode(cfg.GinMode)
	validation.SetupBinding()

	// --- Database Connections ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := database.NewMongoDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// --- Handlers ---
	h := handlers.NewHandler(
		repository.NewMongoUserRepository(db),
		repository.NewMongoStudentRepository(db),
		repository.NewMongoTeacherRepository(db),
		repository.NewMongoCourseRepository(db),
		services.NewRedisResetTokens(rdb, cfg.ResetTokenTTL),
		services.NewWebhookMailer(cfg.ResetWebhookURL, log),
		handlers.Options{
			JWTSecret:      []byte(cfg.JWTSecret),
			JWTExpiry:      cfg.JWTExpiry,
			BcryptCost:     cfg.BcryptCost,
			EchoResetToken: cfg.ResetWebhookURL == "" && cfg.GinMode != gin.ReleaseMode,
		},
		log,
	)

	// --- Gin Router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	h.RegisterRoutes(r)

	log.Info().Str("port", cfg.APIPort).Msg("Starting server")
	if err := r.Run(":" + cfg.APIPort); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
