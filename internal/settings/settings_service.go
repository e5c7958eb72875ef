package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"time"

	"go-opscentral/internal/capacity"
	"go-opscentral/internal/domain"
	settingserrors "go-opscentral/internal/settings/errors"
	"go-opscentral/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	CacheKey = "settings:system"
	// CacheGenKey is bumped on every write so an in-flight fill that read
	// the old row does not repopulate the cache.
	CacheGenKey = "settings:system:gen"
	CacheTTL    = 5 * time.Minute
)

type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	SetLimit(ctx context.Context, actor domain.Actor, date string, limit int) (SettingsResponse, error)
	ToggleHoliday(ctx context.Context, actor domain.Actor, date string) (SettingsResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// LoadCapacity reads the singleton through repo without initializing it;
// a missing row behaves like empty settings.
func LoadCapacity(ctx context.Context, repo Repository) (capacity.Settings, error) {
	row, err := repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultSettings().Capacity(), nil
		}
		return capacity.Settings{}, apperror.Backend(err)
	}
	return row.Capacity(), nil
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, CacheKey).Result()
		if err == nil {
			var resp SettingsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CacheKey, func() (interface{}, error) {
		gen, genOK := s.cacheGen(ctx)

		row, err := s.loadOrInit(ctx, s.repo)
		if err != nil {
			return nil, err
		}

		resp := mapToResponse(*row)
		if genOK {
			s.fillCache(ctx, gen, resp)
		}
		return resp, nil
	})
	if err != nil {
		return SettingsResponse{}, err
	}

	return v.(SettingsResponse), nil
}

func (s *service) SetLimit(ctx context.Context, actor domain.Actor, date string, limit int) (SettingsResponse, error) {
	s.logger.Debug("set daily limit requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("date", date),
		zap.Int("limit", limit),
	)

	if !actor.IsAdmin() {
		return SettingsResponse{}, settingserrors.ErrAdminOnly
	}
	if err := validateDate(date); err != nil {
		return SettingsResponse{}, err
	}
	if limit < 0 {
		return SettingsResponse{}, settingserrors.ErrNegativeLimit
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("set daily limit begin tx failed", zap.Error(err))
		return SettingsResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := s.loadOrInit(ctx, qtx)
	if err != nil {
		return SettingsResponse{}, err
	}

	limits := cloneLimits(row.DailyJobLimits)
	limits[date] = limit

	if err := qtx.UpdateLimits(ctx, limits); err != nil {
		s.logger.Error("set daily limit persist failed", zap.String("date", date), zap.Error(err))
		return SettingsResponse{}, apperror.Backend(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("set daily limit commit failed", zap.Error(err))
		return SettingsResponse{}, apperror.Backend(err)
	}

	row.DailyJobLimits = limits
	s.invalidate(ctx)
	s.logger.Info("set daily limit success", zap.String("date", date), zap.Int("limit", limit))

	return mapToResponse(*row), nil
}

// ToggleHoliday keeps a listed holiday's limit at zero. Toggling off resets
// the date to the default limit, dropping any custom limit set before.
func (s *service) ToggleHoliday(ctx context.Context, actor domain.Actor, date string) (SettingsResponse, error) {
	s.logger.Debug("toggle holiday requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("date", date),
	)

	if !actor.IsAdmin() {
		return SettingsResponse{}, settingserrors.ErrAdminOnly
	}
	if err := validateDate(date); err != nil {
		return SettingsResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("toggle holiday begin tx failed", zap.Error(err))
		return SettingsResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := s.loadOrInit(ctx, qtx)
	if err != nil {
		return SettingsResponse{}, err
	}

	limits := cloneLimits(row.DailyJobLimits)
	holidays := slices.Clone([]string(row.Holidays))
	if slices.Contains(holidays, date) {
		holidays = slices.DeleteFunc(holidays, func(h string) bool { return h == date })
		limits[date] = capacity.DefaultDailyLimit
	} else {
		holidays = append(holidays, date)
		limits[date] = 0
	}

	if err := qtx.UpdateHolidays(ctx, holidays, limits); err != nil {
		s.logger.Error("toggle holiday persist failed", zap.String("date", date), zap.Error(err))
		return SettingsResponse{}, apperror.Backend(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("toggle holiday commit failed", zap.Error(err))
		return SettingsResponse{}, apperror.Backend(err)
	}

	row.DailyJobLimits = limits
	row.Holidays = holidays
	s.invalidate(ctx)
	s.logger.Info("toggle holiday success",
		zap.String("date", date),
		zap.Bool("holiday", slices.Contains(holidays, date)),
	)

	return mapToResponse(*row), nil
}

// loadOrInit creates the singleton on first read.
func (s *service) loadOrInit(ctx context.Context, repo Repository) (*SystemSettings, error) {
	row, err := repo.Get(ctx)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load settings failed", zap.Error(err))
		return nil, apperror.Backend(err)
	}

	s.logger.Info("settings not initialized, creating defaults")
	row = defaultSettings()
	created, err := repo.CreateIfAbsent(ctx, row)
	if err != nil {
		s.logger.Error("create initial settings failed", zap.Error(err))
		return nil, apperror.Backend(err)
	}
	if created {
		return row, nil
	}

	s.logger.Info("settings initialized by another writer, reloading")
	row, err = repo.Get(ctx)
	if err != nil {
		s.logger.Error("reload settings failed", zap.Error(err))
		return nil, apperror.Backend(err)
	}
	return row, nil
}

// cacheGen returns the current cache generation. ok is false when redis is
// unavailable, in which case the caller skips the fill.
func (s *service) cacheGen(ctx context.Context) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	gen, err := s.rdb.Get(ctx, CacheGenKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", false
	}
	return gen, true
}

func (s *service) fillCache(ctx context.Context, gen string, resp SettingsResponse) {
	current, ok := s.cacheGen(ctx)
	if !ok || current != gen {
		s.logger.Debug("settings changed during load, skip cache fill")
		return
	}
	jsonData, err := json.Marshal(resp)
	if err != nil {
		return
	}
	s.rdb.SetNX(ctx, CacheKey, jsonData, CacheTTL)
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, CacheGenKey).Err(); err != nil {
		s.logger.Error("failed to bump settings cache generation",
			zap.String("key", CacheGenKey),
			zap.Error(err),
		)
	}
	if err := s.rdb.Del(ctx, CacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate settings cache",
			zap.String("key", CacheKey),
			zap.Error(err),
		)
	}
}

func validateDate(v string) error {
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return settingserrors.ErrInvalidDateFormat
	}
	return nil
}

func cloneLimits(in DailyLimits) DailyLimits {
	out := make(DailyLimits, len(in)+1)
	maps.Copy(out, in)
	return out
}

func mapToResponse(s SystemSettings) SettingsResponse {
	limits := make(map[string]int, len(s.DailyJobLimits))
	maps.Copy(limits, s.DailyJobLimits)
	holidays := append([]string{}, s.Holidays...)
	return SettingsResponse{
		DailyJobLimits: limits,
		Holidays:       holidays,
	}
}
