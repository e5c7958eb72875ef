package settings_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"go-opscentral/internal/domain"
	"go-opscentral/internal/settings"
	settingserrors "go-opscentral/internal/settings/errors"
	settingsMock "go-opscentral/internal/settings/mock"
	"go-opscentral/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var (
	admin = domain.Actor{UserID: "a1", EmployeeID: "ADMIN-001", Role: domain.RoleAdmin}
	user  = domain.Actor{UserID: "b2", EmployeeID: "OPS-101", Role: domain.RoleUser}
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   settings.Service
	repo      *settingsMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := settingsMock.NewMockRepository(ctrl)

	svc := settings.NewService(db, repo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		repo:      repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("served from cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(settings.CacheKey).
			SetVal(`{"daily_job_limits":{"2024-06-01":3},"holidays":["2024-12-25"]}`)

		resp, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.DailyJobLimits["2024-06-01"])
		assert.Equal(t, []string{"2024-12-25"}, resp.Holidays)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("absent row is initialized with defaults", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(settings.CacheKey).RedisNil()
		deps.redisMock.ExpectGet(settings.CacheGenKey).RedisNil()
		deps.repo.EXPECT().Get(ctx).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			CreateIfAbsent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *settings.SystemSettings) (bool, error) {
				assert.Equal(t, settings.SingletonID, s.ID)
				assert.Empty(t, s.DailyJobLimits)
				assert.Empty(t, s.Holidays)
				return true, nil
			})

		expected := settings.SettingsResponse{DailyJobLimits: map[string]int{}, Holidays: []string{}}
		payload, _ := json.Marshal(expected)
		deps.redisMock.ExpectGet(settings.CacheGenKey).RedisNil()
		deps.redisMock.ExpectSetNX(settings.CacheKey, payload, settings.CacheTTL).SetVal(true)

		resp, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("backend failure keeps message", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(settings.CacheKey).RedisNil()
		deps.redisMock.ExpectGet(settings.CacheGenKey).RedisNil()
		deps.repo.EXPECT().Get(ctx).Return(nil, errors.New("connection refused"))

		_, err := deps.service.Get(ctx)

		assert.Error(t, err)
		assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
		assert.Equal(t, "connection refused", apperror.ToHTTP(err).Message)
	})

	t.Run("write during load skips cache fill", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(settings.CacheKey).RedisNil()
		deps.redisMock.ExpectGet(settings.CacheGenKey).SetVal("3")
		deps.repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{
			ID:             settings.SingletonID,
			DailyJobLimits: settings.DailyLimits{"2024-06-01": 3},
			Holidays:       pq.StringArray{},
		}, nil)
		deps.redisMock.ExpectGet(settings.CacheGenKey).SetVal("4")

		resp, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.DailyJobLimits["2024-06-01"])
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("redis down still serves from store", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(settings.CacheKey).SetErr(errors.New("dial tcp: refused"))
		deps.redisMock.ExpectGet(settings.CacheGenKey).SetErr(errors.New("dial tcp: refused"))
		deps.repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{ID: settings.SingletonID}, nil)

		resp, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp.DailyJobLimits)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestSettingsService_SetLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{
			ID:             settings.SingletonID,
			DailyJobLimits: settings.DailyLimits{"2024-06-02": 4},
			Holidays:       pq.StringArray{},
		}, nil)
		deps.repo.EXPECT().
			UpdateLimits(ctx, settings.DailyLimits{"2024-06-01": 3, "2024-06-02": 4}).
			Return(nil)
		deps.redisMock.ExpectIncr(settings.CacheGenKey).SetVal(1)
		deps.redisMock.ExpectDel(settings.CacheKey).SetVal(1)

		resp, err := deps.service.SetLimit(ctx, admin, "2024-06-01", 3)

		assert.NoError(t, err)
		assert.Equal(t, map[string]int{"2024-06-01": 3, "2024-06-02": 4}, resp.DailyJobLimits)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("non admin is rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.SetLimit(ctx, user, "2024-06-01", 3)

		assert.ErrorIs(t, err, settingserrors.ErrAdminOnly)
		assert.Equal(t, apperror.KindPermission, apperror.KindOf(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.SetLimit(ctx, admin, "06/01/2024", 3)

		assert.ErrorIs(t, err, settingserrors.ErrInvalidDateFormat)
	})

	t.Run("negative limit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.SetLimit(ctx, admin, "2024-06-01", -1)

		assert.ErrorIs(t, err, settingserrors.ErrNegativeLimit)
	})

	t.Run("persist failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{ID: settings.SingletonID}, nil)
		deps.repo.EXPECT().UpdateLimits(ctx, gomock.Any()).Return(errors.New("disk full"))

		_, err := deps.service.SetLimit(ctx, admin, "2024-06-01", 3)

		assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("first write after concurrent initialization reloads the row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		gomock.InOrder(
			deps.repo.EXPECT().Get(ctx).Return(nil, gorm.ErrRecordNotFound),
			deps.repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(false, nil),
			deps.repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{
				ID:             settings.SingletonID,
				DailyJobLimits: settings.DailyLimits{"2024-06-02": 6},
				Holidays:       pq.StringArray{},
			}, nil),
		)
		deps.repo.EXPECT().
			UpdateLimits(ctx, settings.DailyLimits{"2024-06-01": 3, "2024-06-02": 6}).
			Return(nil)
		deps.redisMock.ExpectIncr(settings.CacheGenKey).SetVal(1)
		deps.redisMock.ExpectDel(settings.CacheKey).SetVal(1)

		resp, err := deps.service.SetLimit(ctx, admin, "2024-06-01", 3)

		assert.NoError(t, err)
		assert.Equal(t, map[string]int{"2024-06-01": 3, "2024-06-02": 6}, resp.DailyJobLimits)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("initialization failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Get(ctx).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(false, errors.New("disk full"))

		_, err := deps.service.SetLimit(ctx, admin, "2024-06-01", 3)

		assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
		assert.Equal(t, "disk full", apperror.ToHTTP(err).Message)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		_, err := deps.service.SetLimit(ctx, admin, "2024-06-01", 3)

		assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
	})
}

func TestSettingsService_ToggleHoliday(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle on forces limit to zero", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{
			ID:             settings.SingletonID,
			DailyJobLimits: settings.DailyLimits{},
			Holidays:       pq.StringArray{"2024-01-01"},
		}, nil)
		deps.repo.EXPECT().
			UpdateHolidays(ctx, []string{"2024-01-01", "2024-12-25"}, settings.DailyLimits{"2024-12-25": 0}).
			Return(nil)
		deps.redisMock.ExpectIncr(settings.CacheGenKey).SetVal(1)
		deps.redisMock.ExpectDel(settings.CacheKey).SetVal(1)

		resp, err := deps.service.ToggleHoliday(ctx, admin, "2024-12-25")

		assert.NoError(t, err)
		assert.Contains(t, resp.Holidays, "2024-12-25")
		assert.Equal(t, 0, resp.DailyJobLimits["2024-12-25"])
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("toggle off resets to default even after custom limit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{
			ID:             settings.SingletonID,
			DailyJobLimits: settings.DailyLimits{"2024-12-25": 7},
			Holidays:       pq.StringArray{"2024-12-25"},
		}, nil)
		deps.repo.EXPECT().
			UpdateHolidays(ctx, []string{}, settings.DailyLimits{"2024-12-25": 10}).
			Return(nil)
		deps.redisMock.ExpectIncr(settings.CacheGenKey).SetVal(1)
		deps.redisMock.ExpectDel(settings.CacheKey).SetVal(1)

		resp, err := deps.service.ToggleHoliday(ctx, admin, "2024-12-25")

		assert.NoError(t, err)
		assert.NotContains(t, resp.Holidays, "2024-12-25")
		assert.Equal(t, 10, resp.DailyJobLimits["2024-12-25"])
	})

	t.Run("non admin", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ToggleHoliday(ctx, user, "2024-12-25")

		assert.ErrorIs(t, err, settingserrors.ErrAdminOnly)
	})
}

func TestLoadCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := settingsMock.NewMockRepository(ctrl)
	ctx := context.Background()

	t.Run("missing row behaves as empty settings", func(t *testing.T) {
		repo.EXPECT().Get(ctx).Return(nil, gorm.ErrRecordNotFound)

		s, err := settings.LoadCapacity(ctx, repo)

		assert.NoError(t, err)
		assert.Empty(t, s.DailyJobLimits)
		assert.Empty(t, s.Holidays)
	})

	t.Run("existing row", func(t *testing.T) {
		repo.EXPECT().Get(ctx).Return(&settings.SystemSettings{
			DailyJobLimits: settings.DailyLimits{"2024-06-01": 2},
			Holidays:       pq.StringArray{"2024-12-25"},
		}, nil)

		s, err := settings.LoadCapacity(ctx, repo)

		assert.NoError(t, err)
		assert.Equal(t, 2, s.DailyJobLimits["2024-06-01"])
		assert.Equal(t, []string{"2024-12-25"}, s.Holidays)
	})
}
