package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homepro_backend/database"
	"homepro_backend/internal/config"
	"homepro_backend/internal/email"
	"homepro_backend/internal/handlers"
	"homepro_backend/internal/logger"
	"homepro_backend/internal/middleware"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/routes"
	"homepro_backend/internal/services"
	"homepro_backend/internal/storage"
	"homepro_backend/internal/validator"
	"homepro_backend/internal/workers"
	"homepro_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "path", cfg.Database.Path)
	db, err := database.Connect(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Seed.Demo {
		if err := database.SeedDatabase(db, cfg.Seed.DefaultPassword); err != nil {
			logger.Fatal("Failed to seed database", "error", err)
		}
	}

	ginRouter, wsManager := SetupRouter(cfg, db)
	go wsManager.Run()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	startWorkers(workerCtx, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if err := database.Close(db); err != nil {
		logger.Error("Database close error", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и gin-роутер.
// Возвращает также WebSocket-менеджер, его Run запускает вызывающая сторона.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, *ws.Manager) {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	wsManager := ws.NewManager()
	wsHandler := ws.NewHandler(wsManager)

	serviceContainer := services.NewServiceContainer(newEmailProvider(cfg), wsManager, store)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	// Локальные файлы отдаются напрямую
	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		ginRouter.Static("/files", cfg.Storage.BasePath)
	}

	return ginRouter, wsManager
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)
	return ginRouter
}

// newEmailProvider: без настроенного SMTP письма пишутся в mock
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, using mock email provider")
		return email.NewMockProvider()
	}
	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

func startWorkers(ctx context.Context, db *gorm.DB) {
	workers.NewLeadWorker(db, repositories.NewLeadRepository()).Start(ctx)
	workers.NewSubscriptionWorker(db).Start(ctx)
	logger.Info("Background workers started")
}
