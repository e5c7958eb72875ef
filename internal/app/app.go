package app

import (
	"context"
	"database/sql"
	"net/http"

	"go-opscentral/internal/config"
	"go-opscentral/internal/job"
	"go-opscentral/internal/messaging/kafka"
	"go-opscentral/internal/middleware"
	"go-opscentral/internal/personnel"
	"go-opscentral/internal/settings"
	"go-opscentral/internal/shared/connection"
	"go-opscentral/internal/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// BuildApp connects the stores, migrates the schema and registers every
// module on router. The returned cleanup closes the connections.
func BuildApp(ctx context.Context, cfg *config.Config, router *gin.Engine) (func(), error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := migrate(ctx, gormDB, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("database schema ready")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	// 2. Register Modules & Routes
	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, logger); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

func migrate(ctx context.Context, gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(
		&job.Job{},
		&personnel.Personnel{},
		&vehicle.Vehicle{},
		&settings.SystemSettings{},
	); err != nil {
		return err
	}
	return kafka.EnsureOutboxSchema(ctx, sqlDB)
}

// NewRouter installs the middleware every route shares.
func NewRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
	)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}
