package job

import (
	"context"
	"database/sql"
	"strings"

	"go-opscentral/internal/shared/connection"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, j *Job) error
	FindAll(ctx context.Context, filter JobFilter) ([]Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	CountActiveOnDate(ctx context.Context, date string) (int64, error)
	CountClearanceOnDate(ctx context.Context, date string) (int64, error)
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.conn(ctx).Create(j).Error
}

func (r *repository) FindAll(ctx context.Context, filter JobFilter) ([]Job, error) {
	var jobs []Job
	err := r.conn(ctx).
		Scopes(filterScope(filter)).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Job, error) {
	var j Job
	if err := r.conn(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	res := r.conn(ctx).Model(&Job{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountActiveOnDate counts every job on the date that still holds a slot.
func (r *repository) CountActiveOnDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&Job{}).
		Where("job_date = ?", date).
		Where("status <> ?", StatusRejected).
		Count(&count).Error
	return count, err
}

// CountClearanceOnDate counts clearance jobs regardless of status.
func (r *repository) CountClearanceOnDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&Job{}).
		Where("job_date = ?", date).
		Where("is_import_clearance = ?", true).
		Count(&count).Error
	return count, err
}

func filterScope(f JobFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.Date != "" {
			db = db.Where("job_date = ?", f.Date)
		}
		if f.ImportClearance != nil {
			db = db.Where("is_import_clearance = ?", *f.ImportClearance)
		}
		if f.WarehouseActivity != nil {
			db = db.Where("is_warehouse_activity = ?", *f.WarehouseActivity)
		}
		if q := strings.TrimSpace(f.Query); q != "" {
			like := "%" + strings.ToLower(q) + "%"
			db = db.Where("(LOWER(id) LIKE ? OR LOWER(shipper_name) LIKE ? OR LOWER(location) LIKE ?)", like, like, like)
		}
		return db
	}
}
