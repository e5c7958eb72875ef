package vehicle

import (
	"context"
	"database/sql"

	"go-opscentral/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=vehicle_repo.go -destination=mock/vehicle_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, v *Vehicle) error
	FindAll(ctx context.Context) ([]Vehicle, error)
	FindByID(ctx context.Context, id string) (*Vehicle, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, v *Vehicle) error {
	return r.conn(ctx).Create(v).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	err := r.conn(ctx).Order("name ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	if err := r.conn(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res := r.conn(ctx).Model(&Vehicle{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
