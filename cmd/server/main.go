package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/davidvr/animeta/internal/api"
	"github.com/davidvr/animeta/internal/cache"
	"github.com/davidvr/animeta/internal/client"
	"github.com/davidvr/animeta/internal/config"
	"github.com/davidvr/animeta/internal/export"
	"github.com/davidvr/animeta/internal/imageproxy"
	"github.com/davidvr/animeta/internal/metrics"
	"github.com/davidvr/animeta/internal/providers"
)

// cacheLogger adapts the global zerolog logger to the cache error interface.
type cacheLogger struct{}

func (cacheLogger) Error(msg string, err error) {
	config.GetLogger().Error().Err(err).Msg(msg)
}

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Str("language", cfg.Language).
		Str("cache_provider", cfg.Cache.Provider).
		Msg("Application started with configuration")

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Sentry")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	httpClient := client.New(cfg)

	ttl := time.Hour
	if parsed, err := time.ParseDuration(cfg.Cache.TTL); err == nil {
		ttl = parsed
	}
	imageCache, err := cache.New(cfg.Cache.Provider, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           ttl,
		Logger:        cacheLogger{},
		RedisAddress:  cfg.Cache.RedisAddress,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
		Group:         "imageproxy",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create image cache")
	}
	defer func() {
		if err := imageCache.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close image cache")
		}
	}()

	fetcher := imageproxy.NewFetcher(httpClient, imageCache)
	server := api.New(
		providers.NewAniListClient(httpClient),
		providers.NewAggregator(httpClient, cfg),
		fetcher,
		export.NewPackager(fetcher),
	)

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	httpServer := api.NewHTTPServer(cfg, server)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		}
	}()

	logger.Info().Str("address", httpServer.Addr).Msg("Starting HTTP server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Failed to serve HTTP")
	}

	logger.Info().Msg("Server stopped gracefully")
}
