package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/winstonung/cr-cycle-server-go/internal/catalog"
	"github.com/winstonung/cr-cycle-server-go/internal/config"
	"github.com/winstonung/cr-cycle-server-go/internal/repository"
	"github.com/winstonung/cr-cycle-server-go/internal/server"
	"github.com/winstonung/cr-cycle-server-go/internal/session"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting cycle server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// The catalog starts empty and fills in the background; until the load
	// completes, searches and adds simply find no matches.
	cat := catalog.New(logger)
	switch cfg.Catalog.Source {
	case "postgres":
		db, dbErr := repository.NewDB(ctx, cfg.Database, logger)
		if dbErr != nil {
			logger.Fatal("failed to connect to database", zap.Error(dbErr))
		}
		defer db.Close()

		stats := db.Stats()
		logger.Info("database connection pool initialized",
			zap.Int32("total_conns", stats.TotalConns()),
			zap.Int32("idle_conns", stats.IdleConns()),
		)

		go func() {
			entries, loadErr := db.LoadCatalogEntries(ctx)
			if loadErr != nil {
				logger.Error("failed to load catalog from database", zap.Error(loadErr))
				return
			}
			cat.Replace(entries)
		}()

	default:
		go func() {
			if loadErr := cat.LoadFile(cfg.Catalog.Path); loadErr != nil {
				logger.Error("failed to load catalog file",
					zap.String("path", cfg.Catalog.Path),
					zap.Error(loadErr),
				)
			}
		}()
	}

	sessionMgr := session.NewManager(cat, cfg.Server.LeasePeriod, cfg.Server.MaxSessions, logger)
	logger.Info("session manager initialized",
		zap.Duration("lease_period", cfg.Server.LeasePeriod),
		zap.Int("max_sessions", cfg.Server.MaxSessions),
	)

	go sessionMgr.CleanupExpiredSessions(ctx)

	go func() {
		if wsErr := server.StartWebSocketServer(cfg.Server.WebSocket, sessionMgr, cat, logger); wsErr != nil {
			logger.Error("WebSocket server error", zap.Error(wsErr))
		}
	}()

	logger.Info("cycle server initialized",
		zap.String("websocket_address", cfg.Server.WebSocket.Address),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("shutting down gracefully...")
	cancel()

	sessionMgr.CloseAll()

	logger.Info("cycle server stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
