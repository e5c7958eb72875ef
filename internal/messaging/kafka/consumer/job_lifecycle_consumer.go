package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"go-opscentral/internal/bootstrap"
	"go-opscentral/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Backoff bounds between failed fetches.
var (
	FetchRetryMin = 500 * time.Millisecond
	FetchRetryMax = 30 * time.Second
)

func ConsumeJobLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.job_lifecycle")
	log.Info("job lifecycle consumer started")

	backoff := FetchRetryMin
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("job lifecycle consumer stopped")
				return
			}
			if errors.Is(err, io.EOF) {
				log.Info("job lifecycle reader closed")
				return
			}
			log.Error("fetch job lifecycle message failed",
				zap.Duration("retry_in", backoff),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				log.Info("job lifecycle consumer stopped")
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, FetchRetryMax)
			continue
		}
		backoff = FetchRetryMin

		HandleJobLifecycle(ctx, msg, auditLogger, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit job lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleJobLifecycle records one lifecycle message in the audit trail.
// Undecodable payloads are logged and dropped.
func HandleJobLifecycle(ctx context.Context, msg kafkago.Message, auditLogger bootstrap.AuditLogger, log *zap.Logger) {
	var event events.JobLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode job lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	auditLogger.Log(ctx, bootstrap.AuditLog{
		Action:  strings.ToUpper(event.EventType),
		Message: "job lifecycle event",
		Meta: map[string]any{
			"job_id":      event.JobID,
			"job_date":    event.JobDate,
			"status":      event.Status,
			"actor_id":    event.ActorID,
			"actor_role":  event.ActorRole,
			"request_id":  event.RequestID,
			"occurred_at": event.OccurredAt,
		},
	})

	if event.AwaitsApproval() {
		log.Info("approval queue notification",
			zap.String("job_id", event.JobID),
			zap.String("event_type", event.EventType),
			zap.String("requested_by", event.ActorID),
		)
	}
}
