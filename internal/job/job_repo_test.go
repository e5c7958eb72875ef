package job_test

import (
	"context"
	"testing"

	"go-opscentral/internal/job"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (job.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	return job.NewRepository(gdb), mock
}

func TestJobRepository_CountActiveOnDate(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE job_date = \$1 AND status <> \$2`).
		WithArgs("2024-06-01", "REJECTED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountActiveOnDate(context.Background(), "2024-06-01")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_CountClearanceOnDate(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE job_date = \$1 AND is_import_clearance = \$2`).
		WithArgs("2024-06-01", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.CountClearanceOnDate(context.Background(), "2024-06-01")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindAll(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs("ACTIVE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_date", "status", "writer_crew", "created_at"}).
			AddRow("JOB-002", "2024-06-01", "ACTIVE", "{OPS-103,OPS-104}", int64(2000)).
			AddRow("JOB-001", "2024-06-01", "ACTIVE", "{}", int64(1000)))

	jobs, err := repo.FindAll(context.Background(), job.JobFilter{Status: "ACTIVE"})

	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "JOB-002", jobs[0].ID)
	assert.Equal(t, []string{"OPS-103", "OPS-104"}, []string(jobs[0].WriterCrew))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_UpdateFieldsMissingRow(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectExec(`UPDATE "jobs" SET "status"=\$1 WHERE id = \$2`).
		WithArgs("ACTIVE", "NOPE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFields(context.Background(), "NOPE", map[string]any{"status": job.StatusActive})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
