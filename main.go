package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales/config"
	"sales/controllers"
	"sales/migrations"
	"sales/routes"
	"sales/services"
	"sales/services/logger"
	"sales/utils"

	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

//	@title			Sales API
//	@version		1.0
//	@description	Filtered queries, category summary and ingest for sales transactions.
//	@BasePath		/
func main() {
	config.LoadEnv()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger := logger.NewDefaultLogger(cfg.LogLevel)
	// LOG_DIR bật ghi log ra file theo ngày, song song với stdout
	if cfg.LogDir != "" {
		logFile, err := utils.OpenDailyLogFile(cfg.LogDir, time.Now())
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		appLogger = logger.NewLogger(io.MultiWriter(os.Stdout, logFile), cfg.LogLevel)
	}

	if cfg.DB.AutoMigrate {
		if err := migrations.RunMigrations(cfg.DB.MigrationURL()); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		appLogger.Info("Database schema is up to date")
	}

	db, err := config.ConnectDB(cfg.DB, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}
	defer config.CloseDB(db)
	appLogger.Info("Successfully connected to db")

	ctx := context.Background()

	// Redis là tùy chọn, không có thì bỏ qua cache
	var rdb redis.Cmdable
	redisClient, err := config.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, summary cache disabled: %v", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		rdb = redisClient
		appLogger.Info("Kết nối Redis thành công: %s", cfg.Redis.Addr)
	}

	notifier, err := config.NewNotifier(cfg.AMQP)
	if err != nil {
		log.Fatalf("Failed to connect to AMQP: %v", err)
	}
	defer notifier.Close()

	saleService := services.NewSaleService(services.SaleServiceOptions{
		DB:       db,
		Logger:   appLogger,
		Cache:    services.NewSummaryCache(rdb, cfg.Redis.TTL, appLogger),
		Notifier: notifier,
	})
	saleController := controllers.NewSaleController(saleService)

	router, err := config.InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	routes.SetupRoutes(router, saleController, appLogger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown: %v", err)
	}
}
