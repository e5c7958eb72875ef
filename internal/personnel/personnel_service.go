package personnel

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-opscentral/internal/domain"
	personnelerrors "go-opscentral/internal/personnel/errors"
	"go-opscentral/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKey = "personnel:all"
	CacheTTL = 30 * time.Minute
)

type Service interface {
	GetAll(ctx context.Context) ([]PersonnelResponse, error)
	Create(ctx context.Context, actor domain.Actor, req CreatePersonnelRequest) (PersonnelResponse, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, status string) (PersonnelResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("personnel.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("personnel.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]PersonnelResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, CacheKey).Result()
		if err == nil {
			var resp []PersonnelResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CacheKey, func() (any, error) {
		people, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("list personnel failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(people)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, CacheKey, data, CacheTTL).Err(); err != nil {
					s.logger.Warn("cache personnel failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]PersonnelResponse), nil
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreatePersonnelRequest) (PersonnelResponse, error) {
	s.logger.Debug("create personnel requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("employee_id", req.EmployeeID),
	)

	if !actor.IsAdmin() {
		return PersonnelResponse{}, personnelerrors.ErrAdminOnly
	}
	if strings.TrimSpace(req.EmployeeID) == "" {
		return PersonnelResponse{}, apperror.RequiredField("employee_id")
	}
	if strings.TrimSpace(req.EmiratesID) == "" {
		return PersonnelResponse{}, apperror.RequiredField("emirates_id")
	}
	typ, ok := ParseType(req.Type)
	if !ok {
		return PersonnelResponse{}, personnelerrors.ErrInvalidType
	}
	status := StatusAvailable
	if req.Status != "" {
		if status, ok = ParseStatus(req.Status); !ok {
			return PersonnelResponse{}, personnelerrors.ErrInvalidStatus
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PersonnelResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	p := &Personnel{
		ID:         uuid.New(),
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Name:       req.Name,
		Type:       typ,
		Status:     status,
		EmiratesID: strings.TrimSpace(req.EmiratesID),
	}
	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		s.logger.Error("create personnel failed", zap.String("employee_id", p.EmployeeID), zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PersonnelResponse{}, apperror.Backend(err)
	}

	s.invalidate(ctx)
	s.logger.Info("create personnel success", zap.String("id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) UpdateStatus(ctx context.Context, actor domain.Actor, id string, status string) (PersonnelResponse, error) {
	s.logger.Debug("update personnel status requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("id", id),
		zap.String("status", status),
	)

	if !actor.IsAdmin() {
		return PersonnelResponse{}, personnelerrors.ErrAdminOnly
	}
	st, ok := ParseStatus(status)
	if !ok {
		return PersonnelResponse{}, personnelerrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrPersonnelNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PersonnelResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}
	if err := qtx.UpdateStatus(ctx, id, st); err != nil {
		s.logger.Error("update personnel status failed", zap.String("id", id), zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PersonnelResponse{}, apperror.Backend(err)
	}

	p.Status = st
	s.invalidate(ctx)
	s.logger.Info("update personnel status success", zap.String("id", id), zap.String("status", string(st)))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return personnelerrors.ErrAdminOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return personnelerrors.ErrPersonnelNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Backend(err)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("delete personnel failed", zap.String("id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return apperror.Backend(err)
	}

	s.invalidate(ctx)
	s.logger.Info("delete personnel success", zap.String("id", id))
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CacheKey).Err(); err != nil {
		s.logger.Warn("invalidate personnel cache failed", zap.Error(err))
	}
}

func mapToResponse(p Personnel) PersonnelResponse {
	resp := PersonnelResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID,
		Name:       p.Name,
		Type:       string(p.Type),
		Status:     string(p.Status),
		EmiratesID: p.EmiratesID,
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(people []Personnel) []PersonnelResponse {
	res := make([]PersonnelResponse, len(people))
	for i, p := range people {
		res[i] = mapToResponse(p)
	}
	return res
}
