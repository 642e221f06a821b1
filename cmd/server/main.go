package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/beatgig/youtube-stats/internal/config"
	"github.com/beatgig/youtube-stats/internal/handler"
	"github.com/beatgig/youtube-stats/internal/middleware"
	"github.com/beatgig/youtube-stats/internal/service"
	"github.com/beatgig/youtube-stats/internal/service/youtube"
	"github.com/beatgig/youtube-stats/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("invalid configuration", zap.Error(err))
	}

	youtubeClient, err := youtube.NewClient(cfg.YouTube.APIKey,
		youtube.WithBaseURL(cfg.YouTube.BaseURL),
		youtube.WithTimeout(cfg.YouTube.RequestTimeout),
	)
	if err != nil {
		logger.Log.Fatal("failed to create YouTube client", zap.Error(err))
	}

	statsService := service.NewChannelStatsService(youtubeClient)

	channelHandler := handler.NewChannelHandler(statsService)
	healthHandler := handler.NewHealthHandler(cfg.YouTube.APIKey != "")
	authMiddleware := middleware.NewAPIKeyAuth(cfg.Auth.APIKeys)

	router := buildRouter(channelHandler, healthHandler, authMiddleware, len(cfg.Auth.APIKeys) > 0)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("server starting", zap.Int("port", cfg.Server.Port))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Log.Fatal("server error", zap.Error(err))
	case sig := <-shutdown:
		logger.Log.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
			if err := server.Close(); err != nil {
				logger.Log.Error("failed to close server", zap.Error(err))
			}
			os.Exit(1)
		}

		logger.Log.Info("server stopped gracefully")
	}
}

// buildRouter wires middleware and routes. Health and metrics stay open;
// the API group requires a service API key when any are configured.
func buildRouter(
	channelHandler *handler.ChannelHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.APIKeyAuth,
	authEnabled bool,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.GET("/health/live", healthHandler.LivenessProbe)
	router.GET("/health/ready", healthHandler.ReadinessProbe)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	if authEnabled {
		api.Use(authMiddleware.Middleware())
	}

	api.GET("/channels/search", channelHandler.SearchChannels)
	api.GET("/channels/:identifier/stats", channelHandler.GetChannelStats)

	return router
}
