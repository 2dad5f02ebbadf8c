package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/api/handlers"
	"github.com/linskybing/design-review/internal/api/middleware"
	"github.com/linskybing/design-review/internal/api/routes"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/config"
	"github.com/linskybing/design-review/internal/config/db"
	"github.com/linskybing/design-review/internal/cron"
	"github.com/linskybing/design-review/internal/repository"
	"github.com/linskybing/design-review/internal/repository/memory"
	"github.com/linskybing/design-review/internal/seed"
	"github.com/linskybing/design-review/internal/storage"
	"github.com/linskybing/design-review/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	zlog, err := logger.New(config.LogLevel, config.AppEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Initialize JWT signing key
	middleware.Init(config.JwtSecret, config.Issuer)

	repos, ping, err := openStore(zlog)
	if err != nil {
		zlog.Fatal("Failed to open store", zap.Error(err))
	}

	if config.SeedData {
		fixture, err := seed.LoadFile(config.SeedFile)
		if err != nil {
			zlog.Fatal("Failed to load seed data", zap.Error(err))
		}
		written, err := seed.Apply(repos, fixture)
		if err != nil {
			zlog.Fatal("Failed to seed store", zap.Error(err))
		}
		zlog.Info("Seed data checked", zap.Bool("written", written))
	}

	blobs, err := openBlobStore(zlog)
	if err != nil {
		zlog.Fatal("Failed to open blob store", zap.Error(err))
	}

	services := application.New(repos, blobs, zlog)

	scheduler, err := cron.StartCleanupTask(services.Audit, config.AuditCleanupSchedule, config.AuditRetentionDays, zlog)
	if err != nil {
		zlog.Warn("Audit cleanup disabled", zap.Error(err))
	}

	gin.SetMode(config.GinMode)
	h := handlers.New(services, handlers.Options{
		AppName:       config.AppName,
		AppVersion:    config.AppVersion,
		StoreDriver:   config.StoreDriver,
		PublicBaseURL: config.PublicBaseURL,
		Ping:          ping,
	})
	router := routes.NewEngine(h, zlog, routes.Options{
		CorsOrigins:   config.CorsOrigins,
		DefaultUserID: config.DefaultUserID,
		UploadRPS:     config.UploadRateLimit,
		UploadBurst:   config.UploadRateBurst,
	})

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("Starting API server", zap.String("addr", srv.Addr), zap.String("store", config.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Forced shutdown", zap.Error(err))
	}
}

func openStore(zlog *zap.Logger) (*repository.Repos, handlers.Pinger, error) {
	switch config.StoreDriver {
	case config.StoreMemory:
		zlog.Info("Using in-memory store")
		return memory.NewRepositories(), nil, nil
	case config.StorePostgres:
		gdb, err := db.Open(db.DSN())
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, nil, err
		}
		zlog.Info("Connected to postgres", zap.String("host", config.DbHost), zap.String("db", config.DbName))
		return repository.NewRepositories(gdb), sqlDB.PingContext, nil
	default:
		return nil, nil, errors.New("unknown STORE_DRIVER " + config.StoreDriver)
	}
}

func openBlobStore(zlog *zap.Logger) (storage.BlobStore, error) {
	switch config.BlobDriver {
	case config.BlobLocal:
		return storage.NewLocalStore(config.UploadDir)
	case config.BlobMinio:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			UseSSL:    config.MinioUseSSL,
			Bucket:    config.MinioBucket,
		}, zlog)
	default:
		return nil, errors.New("unknown BLOB_DRIVER " + config.BlobDriver)
	}
}
