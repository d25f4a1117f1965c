package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/yt-dashboard/internal/api"
	"github.com/yt-dashboard/internal/config"
	"github.com/yt-dashboard/internal/pipeline"
	"github.com/yt-dashboard/internal/storage"
	"github.com/yt-dashboard/internal/youtube"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewPostgres(storage.PostgresInfo{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
	})
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	yt, err := youtube.NewClient(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		logger.Error("failed to initialize YouTube client", "error", err)
		os.Exit(1)
	}

	pipe := pipeline.NewService(yt, store, logger)
	server := api.NewServer(yt, pipe, store, logger)

	logger.Info("server starting", "port", cfg.Port)
	if err := server.Start(cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
