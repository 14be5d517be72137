package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/sociogram/social-service/internal/config"
	"github.com/sociogram/social-service/internal/metrics"
	"github.com/sociogram/social-service/internal/pkg/jwt"
	"github.com/sociogram/social-service/internal/pkg/validator"
	"github.com/sociogram/social-service/internal/realtime"
	db "github.com/sociogram/social-service/internal/repository/postgres"
	"github.com/sociogram/social-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := newLogger(cfg)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	if err := db.Migrate(dbRepo.DB()); err != nil {
		logger.Error(fmt.Sprintf("failed to run migrations: %v", err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	rtMetrics := metrics.New(registry)

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	presence := realtime.NewRegistry(rtMetrics, logger)
	chatService := realtime.NewChatService(presence, dbRepo, dbRepo, logger)
	notifier := realtime.NewNotifier(presence, dbRepo, logger)
	wsHandler := realtime.NewHandler(presence, chatService, jwtGenerator, logger)

	handler := rest.New(dbRepo, notifier, presence, vldtr, jwtGenerator)

	router := chi.NewRouter()
	router.Use(rest.LoggerMiddleware(logger))
	router.Mount("/api", handler.Routes(rest.AuthMiddleware(jwtGenerator)))
	router.Get("/ws", wsHandler.Handler)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		os.Exit(1)
	}

	logger.Info("service listening", "port", cfg.Service.Port)

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logger.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.Logger.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler).With(
		slog.String("service", cfg.Service.Name),
		slog.String("env", cfg.Service.Env),
	)
	slog.SetDefault(logger)
	return logger
}
