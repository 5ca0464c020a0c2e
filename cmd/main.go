package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"travel-go/service-api/internal/config"
	"travel-go/service-api/internal/handler"
	"travel-go/service-api/internal/repository"
	"travel-go/service-api/internal/services"
	"travel-go/service-api/internal/utils"
	"travel-go/service-api/internal/utils/mongodb"
)

func main() {
	// 1. Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger := utils.NewLogger(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.Server.Mode)

	// 2. Root context + shutdown manager
	ctx, shutdownManager := utils.NewShutdownManager(context.Background(), logger)
	shutdownManager.StartListening()

	jwtUtil := utils.NewJWTUtil(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	deps := handler.Dependencies{
		Tokens: services.NewTokenService(jwtUtil),
		JWT:    jwtUtil,
		Logger: logger,
		Capabilities: handler.Capabilities{
			TokenIssue:   cfg.Features.TokenIssue,
			ReviewEdit:   cfg.Features.ReviewEdit,
			ServiceMedia: cfg.MediaEnabled(),
		},
	}

	// 3. MongoDB. Without it the process stays up serving only the liveness route.
	mongoClient, err := mongodb.NewMongoDBConnection(ctx, cfg.MongoDB)
	if err != nil {
		logger.Error().Err(err).Msg("MongoDB unavailable")
	} else {
		shutdownManager.Register(func(ctx context.Context) error {
			logger.Info().Msg("[SHUTDOWN] Closing MongoDB connection...")
			return mongoClient.Disconnect(ctx)
		})
		db := mongoClient.Database(cfg.MongoDB.DBName)

		catalog := services.NewCatalogService(repository.NewServiceRepository(db))

		// 4. Redis catalog cache (optional)
		if cfg.CacheEnabled() {
			rdb, err := utils.NewRedisClient(ctx, cfg.Redis.URL)
			if err != nil {
				logger.Warn().Err(err).Msg("Redis unavailable, catalog cache disabled")
			} else {
				catalog.WithCache(rdb, cfg.Redis.CacheTTL)
				shutdownManager.Register(func(context.Context) error {
					logger.Info().Msg("[SHUTDOWN] Closing Redis connection...")
					return rdb.Close()
				})
			}
		}

		deps.Catalog = catalog
		deps.Reviews = services.NewReviewService(repository.NewReviewRepository(db))

		// 5. MinIO service media (optional)
		if cfg.MediaEnabled() {
			minioClient, err := utils.InitMinio(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
			if err == nil {
				err = utils.EnsureBucket(ctx, minioClient, cfg.Minio.Bucket)
			}
			if err != nil {
				logger.Warn().Err(err).Msg("MinIO unavailable, service media disabled")
				deps.Capabilities.ServiceMedia = false
			} else {
				deps.Media = services.NewMediaService(repository.NewMediaRepository(db), minioClient, cfg.Minio.Bucket, cfg.Minio.PublicURL)
			}
		}
	}

	// 6. Router + server
	router := handler.NewRouter(deps)
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("App is listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server error")
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		logger.Info().Msg("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	<-shutdownManager.Done()
}
