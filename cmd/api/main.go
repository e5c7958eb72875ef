package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-opscentral/internal/app"
	"go-opscentral/internal/bootstrap"
	"go-opscentral/internal/config"
	"go-opscentral/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := app.NewRouter(logger)

	// build dependency + routes
	cleanup, err := app.BuildApp(ctx, cfg, r)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(ctx, r, bootstrap.DefaultServerConfig(cfg.Port), auditLogger); err != nil {
		logger.Error("http server stopped with error", zap.Error(err))
	}
}
