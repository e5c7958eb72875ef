package settings

import (
	"context"
	"database/sql"
	"time"

	"go-opscentral/internal/shared/connection"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Get(ctx context.Context) (*SystemSettings, error)
	CreateIfAbsent(ctx context.Context, s *SystemSettings) (bool, error)
	UpdateLimits(ctx context.Context, limits DailyLimits) error
	UpdateHolidays(ctx context.Context, holidays []string, limits DailyLimits) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Get(ctx context.Context) (*SystemSettings, error) {
	var s SystemSettings
	err := connection.Conn(ctx, r.db, r.tx).First(&s, "id = ?", SingletonID).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateIfAbsent inserts the singleton unless a row already exists. It
// reports false when another writer got there first; the surrounding
// transaction stays usable in that case.
func (r *repository) CreateIfAbsent(ctx context.Context, s *SystemSettings) (bool, error) {
	res := connection.Conn(ctx, r.db, r.tx).Exec(
		"INSERT INTO system_settings (id, daily_job_limits, holidays, updated_at) VALUES (?, ?, ?, ?) ON CONFLICT (id) DO NOTHING",
		s.ID, s.DailyJobLimits, s.Holidays, time.Now(),
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) UpdateLimits(ctx context.Context, limits DailyLimits) error {
	return connection.Conn(ctx, r.db, r.tx).
		Model(&SystemSettings{ID: SingletonID}).
		Update("daily_job_limits", limits).Error
}

func (r *repository) UpdateHolidays(ctx context.Context, holidays []string, limits DailyLimits) error {
	return connection.Conn(ctx, r.db, r.tx).
		Model(&SystemSettings{ID: SingletonID}).
		Updates(map[string]any{
			"holidays":         pq.StringArray(holidays),
			"daily_job_limits": limits,
		}).Error
}
