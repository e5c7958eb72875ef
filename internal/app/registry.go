package app

import (
	"database/sql"

	"go-opscentral/internal/auth"
	"go-opscentral/internal/config"
	"go-opscentral/internal/job"
	"go-opscentral/internal/messaging/kafka"
	"go-opscentral/internal/middleware"
	"go-opscentral/internal/personnel"
	"go-opscentral/internal/rbac"
	"go-opscentral/internal/rbac/infra"
	"go-opscentral/internal/settings"
	"go-opscentral/internal/user"
	"go-opscentral/internal/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository()
	jobRepo := job.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	personnelRepo := personnel.NewRepository(gormDB)
	vehicleRepo := vehicle.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	roster, err := user.NewRoster(user.DefaultRoster())
	if err != nil {
		return err
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(rbacRepo, enforcer, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	userService := user.NewService(roster, logger)
	authService := auth.NewService(userService, cfg.JWTSecret, cfg.TokenTTL, logger)
	jobService := job.NewService(db, jobRepo, settingsRepo, outboxRepo, logger)
	settingsService := settings.NewService(db, settingsRepo, rdb, logger)
	personnelService := personnel.NewService(db, personnelRepo, rdb, logger)
	vehicleService := vehicle.NewService(db, vehicleRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	userHandler := user.NewHandler(userService, logger)
	jobHandler := job.NewHandler(jobService, logger)
	settingsHandler := settings.NewHandler(settingsService, logger)
	personnelHandler := personnel.NewHandler(personnelService)
	vehicleHandler := vehicle.NewHandler(vehicleService)
	rbacHandler := rbac.NewHandler(rbacService)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware, rate.Limit(cfg.LoginRatePerSec), cfg.LoginBurst)
		user.RegisterRoutes(api, userHandler, rbacService, authMiddleware, logger)
		job.RegisterRoutes(api, jobHandler, rbacService, authMiddleware, rdb)
		settings.RegisterRoutes(api, settingsHandler, rbacService, authMiddleware)
		personnel.RegisterRoutes(api, personnelHandler, rbacService, authMiddleware)
		vehicle.RegisterRoutes(api, vehicleHandler, rbacService, authMiddleware)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
	}

	return nil
}
