package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msuss/atelier/internal/api"
	"github.com/msuss/atelier/internal/app"
	"github.com/msuss/atelier/internal/buildconfig"
	"github.com/msuss/atelier/internal/config"
	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/events"
	"github.com/msuss/atelier/internal/logging"
	"github.com/msuss/atelier/internal/service"
	"go.uber.org/zap"
)

func main() {
	bootstrap, _ := zap.NewProduction()

	if err := config.Load(); err != nil {
		bootstrap.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.New(config.LogLevel(), config.LogDevelopment())
	if err != nil {
		bootstrap.Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting atelier", zap.String("version", buildconfig.String()))

	hub := events.NewHub(logger)
	hub.Start()

	publishers := []domain.EventPublisher{hub}
	var natsPub *events.NATSPublisher
	if url := config.NATSURL(); url != "" {
		natsPub, err = events.NewNATSPublisher(url, logger)
		if err != nil {
			logger.Warn("NATS unavailable, events stay local", zap.String("url", url), zap.Error(err))
		} else {
			publishers = append(publishers, natsPub)
			logger.Info("forwarding events to NATS", zap.String("url", url))
		}
	}

	atelier := app.New(app.Options{
		ArtistsDir:   config.ArtistsDir(),
		TemplatesDir: config.TemplatesDir(),
		Provider:     config.LLMProvider(),
		APIKey:       config.LLMAPIKey(),
		Model:        config.LLMModel(),
		BaseURL:      config.LLMBaseURL(),
		Timeout:      config.LLMTimeout(),
		Seed:         config.RandomSeed(),
		GalleryTTL:   config.GalleryCacheTTL(),
		Publishers:   publishers,
	}, logger)

	server := api.NewApp(atelier, hub, api.Options{
		APIKey:         config.APIKey(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
	}, logger)

	var scheduler *service.ExchangeScheduler
	if interval := config.ExchangeInterval(); interval > 0 {
		scheduler = service.NewExchangeScheduler(atelier.Exchange, interval, logger)
		scheduler.Start()
		logger.Info("scheduled exchanges enabled", zap.Duration("interval", interval))
	}

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("artists_dir", config.ArtistsDir()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	hub.Stop()
	if natsPub != nil {
		natsPub.Close()
	}

	logger.Info("server stopped")
}
