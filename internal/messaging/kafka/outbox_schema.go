package kafka

import (
	"context"
	"database/sql"
)

const outboxSchema = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id             VARCHAR(64) PRIMARY KEY,
	request_id     VARCHAR(64) NOT NULL DEFAULT '',
	aggregate_type VARCHAR(32) NOT NULL,
	aggregate_id   VARCHAR(64) NOT NULL,
	event_type     VARCHAR(64) NOT NULL,
	topic          VARCHAR(128) NOT NULL,
	payload        BYTEA NOT NULL,
	status         VARCHAR(16) NOT NULL,
	retry_count    INT NOT NULL DEFAULT 0,
	error_message  TEXT,
	next_retry_at  TIMESTAMPTZ,
	processed_at   TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created ON outbox_events (status, created_at);
`

// EnsureOutboxSchema creates the outbox table when it does not exist yet.
func EnsureOutboxSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, outboxSchema)
	return err
}
