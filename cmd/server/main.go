package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/ba-career-quest/config"
	"github.com/user/ba-career-quest/internal/catalog"
	"github.com/user/ba-career-quest/internal/game"
	"github.com/user/ba-career-quest/internal/journal"
	"github.com/user/ba-career-quest/internal/server"
	"github.com/user/ba-career-quest/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Set up logger
	logger := setupLogger(zapcore.InfoLevel)

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	level, err := zapcore.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Unknown log level, using info", zap.String("log_level", cfg.Server.LogLevel))
	} else if level != zapcore.InfoLevel {
		logger = setupLogger(level)
	}
	defer logger.Sync()

	// Open save storage
	store, closer, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closer.Close()
	logger.Info("Opened storage",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("path", cfg.Storage.Path))

	// Load game content
	cat, err := catalog.LoadOrDefault(cfg.Game.CatalogPath)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Loaded catalog",
		zap.Int("characters", len(cat.Characters)),
		zap.Int("scenarios", len(cat.Scenarios)),
		zap.Int("skill_categories", len(cat.SkillCategories)))

	kb, err := journal.LoadOrDefault(cfg.Journal.Path)
	if err != nil {
		logger.Fatal("Failed to load journal", zap.Error(err))
	}
	logger.Info("Loaded journal", zap.Int("categories", len(kb.Categories())))

	// Initialize game manager
	gameManager := game.NewGameManager(cfg, cat, game.NewGameStateStorage(store, cfg.Storage.Key), logger)

	// Set up HTTP server
	srv := server.NewHTTPServer(cfg.Server, server.New(gameManager, kb, logger).Router())

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(srv, logger)
}

func setupLogger(level zapcore.Level) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

func waitForShutdown(srv *http.Server, logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}
	logger.Info("Shutting down")
}
