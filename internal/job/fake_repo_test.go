package job_test

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"go-opscentral/internal/job"
	"go-opscentral/internal/settings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type fakeJobRepository struct {
	jobs   map[string]job.Job
	writes int

	CreateErr error
	UpdateErr error
	DeleteErr error
}

func newFakeJobRepository(seed ...job.Job) *fakeJobRepository {
	r := &fakeJobRepository{jobs: map[string]job.Job{}}
	for _, j := range seed {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepository) WithTx(tx *sql.Tx) job.Repository { return r }

func (r *fakeJobRepository) Create(ctx context.Context, j *job.Job) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	if _, ok := r.jobs[j.ID]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "jobs_pkey"}
	}
	r.writes++
	r.jobs[j.ID] = *j
	return nil
}

func (r *fakeJobRepository) FindAll(ctx context.Context, f job.JobFilter) ([]job.Job, error) {
	out := []job.Job{}
	for _, j := range r.jobs {
		if f.Status != "" && string(j.Status) != f.Status {
			continue
		}
		if f.Date != "" && j.JobDate != f.Date {
			continue
		}
		if f.ImportClearance != nil && j.IsClearance != *f.ImportClearance {
			continue
		}
		if f.WarehouseActivity != nil && j.IsWarehouse != *f.WarehouseActivity {
			continue
		}
		if q := strings.ToLower(f.Query); q != "" &&
			!strings.Contains(strings.ToLower(j.ID), q) &&
			!strings.Contains(strings.ToLower(j.ShipperName), q) &&
			!strings.Contains(strings.ToLower(j.Location), q) {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt > out[b].CreatedAt })
	return out, nil
}

func (r *fakeJobRepository) FindByID(ctx context.Context, id string) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &j, nil
}

func (r *fakeJobRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	j, ok := r.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			j.Status = v.(job.Status)
		case "is_locked":
			j.IsLocked = v.(bool)
		case "customs_status":
			j.CustomsStatus = v.(job.CustomsStatus)
		case "team_leader":
			j.TeamLeader = v.(string)
		case "vehicle":
			j.Vehicle = v.(string)
		case "writer_crew":
			j.WriterCrew = v.(pq.StringArray)
		}
	}
	r.writes++
	r.jobs[id] = j
	return nil
}

func (r *fakeJobRepository) Delete(ctx context.Context, id string) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	if _, ok := r.jobs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.writes++
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepository) CountActiveOnDate(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.JobDate == date && j.Status != job.StatusRejected {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepository) CountClearanceOnDate(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.JobDate == date && j.IsClearance {
			n++
		}
	}
	return n, nil
}

type fakeSettingsRepository struct {
	row *settings.SystemSettings
}

func (r *fakeSettingsRepository) WithTx(tx *sql.Tx) settings.Repository { return r }

func (r *fakeSettingsRepository) Get(ctx context.Context) (*settings.SystemSettings, error) {
	if r.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.row
	return &cp, nil
}

func (r *fakeSettingsRepository) CreateIfAbsent(ctx context.Context, s *settings.SystemSettings) (bool, error) {
	if r.row != nil {
		return false, nil
	}
	r.row = s
	return true, nil
}

func (r *fakeSettingsRepository) UpdateLimits(ctx context.Context, limits settings.DailyLimits) error {
	r.row.DailyJobLimits = limits
	return nil
}

func (r *fakeSettingsRepository) UpdateHolidays(ctx context.Context, holidays []string, limits settings.DailyLimits) error {
	r.row.Holidays = holidays
	r.row.DailyJobLimits = limits
	return nil
}
