package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"property-dashboard/internal/config"
	"property-dashboard/internal/handlers"
	"property-dashboard/internal/scheduler"
	"property-dashboard/internal/snapshot"
	"property-dashboard/internal/store"
)

func main() {
	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config/dashboard.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("loaded configuration", zap.String("path", configPath))

	// Build the store; the demo portfolio gives the dashboard something to
	// show out of the box
	st := store.New()
	if cfg.Seed.Demo {
		st.LoadDemoData()
		logger.Info("loaded demo dataset",
			zap.Int("properties", len(st.Properties())),
			zap.Int("units", len(st.Units())),
			zap.Int("tenants", len(st.Tenants())))
	}

	// Metrics snapshot service and its daily capture schedule
	snapshotService := snapshot.NewService(st, logger, cfg.Snapshot.HistoryLimit)
	sched := scheduler.NewScheduler(snapshotService, cfg, logger)
	if err := sched.Start(); err != nil {
		logger.Warn("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	handlers.NewHandler(st, snapshotService, logger).Register(r)

	port := getEnv("PORT", fmt.Sprintf("%d", cfg.Server.Port))
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
