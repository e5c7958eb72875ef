package personnel_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"go-opscentral/internal/domain"
	"go-opscentral/internal/personnel"
	personnelerrors "go-opscentral/internal/personnel/errors"
	personnelMock "go-opscentral/internal/personnel/mock"
	"go-opscentral/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
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
	service   personnel.Service
	repo      *personnelMock.MockRepository
}

func setupServiceTest(t *testing.T, withCache bool) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := personnelMock.NewMockRepository(ctrl)

	var rdb *redis.Client
	var redisMock redismock.ClientMock
	if withCache {
		rdb, redisMock = redismock.NewClientMock()
	}

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   personnel.NewService(db, repo, rdb),
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

func TestPersonnelService_GetAll(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	people := []personnel.Personnel{{
		ID:         id,
		EmployeeID: "OPS-201",
		Name:       "Rahul",
		Type:       personnel.TypeTeamLeader,
		Status:     personnel.StatusAvailable,
		EmiratesID: "784-1990-1234567-1",
	}}

	t.Run("cache miss fills cache", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(personnel.CacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(people, nil)

		expected := []personnel.PersonnelResponse{{
			ID:         id.String(),
			EmployeeID: "OPS-201",
			Name:       "Rahul",
			Type:       "Team Leader",
			Status:     "Available",
			EmiratesID: "784-1990-1234567-1",
		}}
		data, _ := json.Marshal(expected)
		deps.redisMock.ExpectSet(personnel.CacheKey, data, personnel.CacheTTL).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(personnel.CacheKey).SetVal(`[{"id":"x","employee_id":"OPS-9","name":"Cached","type":"Writer Crew","status":"Sick Leave","emirates_id":"784"}]`)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Cached", resp[0].Name)
	})

	t.Run("backend error", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("relation \"personnel\" does not exist"))

		_, err := deps.service.GetAll(ctx)

		assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
		assert.Equal(t, "relation \"personnel\" does not exist", apperror.ToHTTP(err).Message)
	})
}

func TestPersonnelService_Create(t *testing.T) {
	ctx := context.Background()
	req := personnel.CreatePersonnelRequest{
		EmployeeID: "OPS-201",
		Name:       "Rahul",
		Type:       "Writer Crew",
		EmiratesID: "784-1990-1234567-1",
	}

	t.Run("success defaults to available", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *personnel.Personnel) error {
				assert.NotEqual(t, uuid.Nil, p.ID)
				assert.Equal(t, personnel.TypeWriterCrew, p.Type)
				assert.Equal(t, personnel.StatusAvailable, p.Status)
				return nil
			})
		deps.redisMock.ExpectDel(personnel.CacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, admin, req)

		assert.NoError(t, err)
		assert.Equal(t, "Available", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("user is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, user, req)

		assert.ErrorIs(t, err, personnelerrors.ErrAdminOnly)
		assert.Equal(t, apperror.KindPermission, apperror.KindOf(err))
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		bad := req
		bad.Type = "Driver"
		_, err := deps.service.Create(ctx, admin, bad)

		assert.ErrorIs(t, err, personnelerrors.ErrInvalidType)
	})

	t.Run("missing emirates id", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		bad := req
		bad.EmiratesID = " "
		_, err := deps.service.Create(ctx, admin, bad)

		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Equal(t, "emirates_id is required", apperror.ToHTTP(err).Message)
	})

	t.Run("duplicate employee id -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.Create(ctx, admin, req)

		assert.ErrorIs(t, err, personnelerrors.ErrEmployeeIDExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPersonnelService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&personnel.Personnel{
			ID:     uuid.MustParse(id),
			Name:   "Rahul",
			Type:   personnel.TypeTeamLeader,
			Status: personnel.StatusAvailable,
		}, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, id, personnel.StatusAnnualLeave).Return(nil)

		resp, err := deps.service.UpdateStatus(ctx, admin, id, "Annual Leave")

		assert.NoError(t, err)
		assert.Equal(t, "Annual Leave", resp.Status)
	})

	t.Run("status outside the closed set", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		_, err := deps.service.UpdateStatus(ctx, admin, id, "On Holiday")

		assert.ErrorIs(t, err, personnelerrors.ErrInvalidStatus)
	})

	t.Run("unknown id", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, admin, id, "Sick Leave")

		assert.ErrorIs(t, err, personnelerrors.ErrPersonnelNotFound)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("user is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		_, err := deps.service.UpdateStatus(ctx, user, id, "Sick Leave")

		assert.ErrorIs(t, err, personnelerrors.ErrAdminOnly)
	})
}

func TestPersonnelService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.redisMock.ExpectDel(personnel.CacheKey).SetVal(1)

		err := deps.service.Delete(ctx, admin, id)

		assert.NoError(t, err)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, admin, id)

		assert.ErrorIs(t, err, personnelerrors.ErrPersonnelNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, admin, "nope")

		assert.ErrorIs(t, err, personnelerrors.ErrPersonnelNotFound)
	})
}
