package vehicle

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-opscentral/internal/domain"
	"go-opscentral/internal/shared/apperror"
	vehicleerrors "go-opscentral/internal/vehicle/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]VehicleResponse, error)
	Create(ctx context.Context, actor domain.Actor, req CreateVehicleRequest) (VehicleResponse, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, status string) (VehicleResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("vehicle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vehicle.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]VehicleResponse, error) {
	vehicles, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list vehicles failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		res[i] = mapToResponse(v)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateVehicleRequest) (VehicleResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("create vehicle forbidden", zap.String("actor_id", actor.EmployeeID))
		return VehicleResponse{}, vehicleerrors.ErrAdminOnly
	}
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if plate == "" {
		return VehicleResponse{}, apperror.RequiredField("plate")
	}
	status := StatusAvailable
	if req.Status != "" {
		st, ok := ParseStatus(req.Status)
		if !ok {
			return VehicleResponse{}, vehicleerrors.ErrInvalidStatus
		}
		status = st
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return VehicleResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	v := &Vehicle{
		ID:     uuid.New(),
		Name:   req.Name,
		Plate:  plate,
		Status: status,
	}
	if err := s.repo.WithTx(tx).Create(ctx, v); err != nil {
		s.logger.Error("create vehicle failed", zap.String("plate", plate), zap.Error(err))
		return VehicleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return VehicleResponse{}, apperror.Backend(err)
	}

	s.logger.Info("create vehicle success", zap.String("id", v.ID.String()), zap.String("plate", plate))
	return mapToResponse(*v), nil
}

func (s *service) UpdateStatus(ctx context.Context, actor domain.Actor, id string, status string) (VehicleResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("update vehicle status forbidden", zap.String("actor_id", actor.EmployeeID))
		return VehicleResponse{}, vehicleerrors.ErrAdminOnly
	}
	st, ok := ParseStatus(status)
	if !ok {
		return VehicleResponse{}, vehicleerrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return VehicleResponse{}, vehicleerrors.ErrVehicleNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return VehicleResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	v, err := qtx.FindByID(ctx, id)
	if err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}
	if err := qtx.UpdateStatus(ctx, id, st); err != nil {
		s.logger.Error("update vehicle status failed", zap.String("id", id), zap.Error(err))
		return VehicleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return VehicleResponse{}, apperror.Backend(err)
	}

	v.Status = st
	s.logger.Info("update vehicle status success", zap.String("id", id), zap.String("status", string(st)))
	return mapToResponse(*v), nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		s.logger.Warn("delete vehicle forbidden", zap.String("actor_id", actor.EmployeeID))
		return vehicleerrors.ErrAdminOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return vehicleerrors.ErrVehicleNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Backend(err)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("delete vehicle failed", zap.String("id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return apperror.Backend(err)
	}

	s.logger.Info("delete vehicle success", zap.String("id", id))
	return nil
}

func mapToResponse(v Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:     v.ID.String(),
		Name:   v.Name,
		Plate:  v.Plate,
		Status: string(v.Status),
	}
	if !v.CreatedAt.IsZero() {
		resp.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	}
	if !v.UpdatedAt.IsZero() {
		resp.UpdatedAt = v.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
