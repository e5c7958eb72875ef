package app

import (
	"context"

	"go-opscentral/internal/bootstrap"
	"go-opscentral/internal/config"
	"go-opscentral/internal/events"
	"go-opscentral/internal/messaging/kafka/consumer"
	"go-opscentral/internal/shared/connection"

	"go.uber.org/zap"
)

const auditConsumerGroup = "opscentral-job-audit"

// RunConsumer writes job lifecycle events to the audit trail until ctx is
// cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.JobLifecycleTopic, auditConsumerGroup)
	defer reader.Close()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	consumer.ConsumeJobLifecycle(ctx, reader, auditLogger, logger)

	logger.Info("consumer shutting down")
	return nil
}
