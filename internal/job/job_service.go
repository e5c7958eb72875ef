package job

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"go-opscentral/internal/capacity"
	"go-opscentral/internal/domain"
	"go-opscentral/internal/events"
	joberrors "go-opscentral/internal/job/errors"
	"go-opscentral/internal/messaging/kafka"
	"go-opscentral/internal/settings"
	"go-opscentral/internal/shared/apperror"
	"go-opscentral/internal/shared/contextutil"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateJobRequest) (JobResponse, error)
	GetAll(ctx context.Context, filter JobFilter) ([]JobResponse, error)
	GetByID(ctx context.Context, id string) (JobResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) (DeleteResult, error)
	UpdateAllocation(ctx context.Context, actor domain.Actor, id string, req AllocationRequest) (JobResponse, error)
	UpdateCustomsStatus(ctx context.Context, actor domain.Actor, id string, status string) (JobResponse, error)
	ToggleLock(ctx context.Context, actor domain.Actor, id string) (JobResponse, error)
	ResolveApproval(ctx context.Context, actor domain.Actor, id string, approved bool, alloc *AllocationRequest) (ApprovalOutcome, error)
	Complete(ctx context.Context, actor domain.Actor, id string) (JobResponse, error)
	Capacity(ctx context.Context, date string) (CapacityResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	settings settings.Repository
	outbox   kafka.OutboxRepository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	settingsRepo settings.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		settings: settingsRepo,
		outbox:   outboxRepo,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateJobRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create job requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.EmployeeID),
		zap.String("job_id", req.ID),
		zap.String("date", req.JobDate),
	)

	j, err := s.buildJob(actor, req)
	if err != nil {
		s.logger.Warn("create job rejected by validation", zap.String("job_id", req.ID), zap.Error(err))
		return JobResponse{}, err
	}

	// count-then-insert must not interleave with another create on the same date
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		s.logger.Error("create job begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	caps, err := settings.LoadCapacity(ctx, s.settings.WithTx(tx))
	if err != nil {
		s.logger.Error("create job load settings failed", zap.Error(err))
		return JobResponse{}, err
	}

	count, err := qtx.CountActiveOnDate(ctx, j.JobDate)
	if err != nil {
		s.logger.Error("create job count failed", zap.String("date", j.JobDate), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}
	if d := capacity.Evaluate(j.JobDate, int(count), caps); !d.Allow {
		s.logger.Warn("create job rejected by capacity",
			zap.String("date", j.JobDate),
			zap.String("reason", d.Reason),
		)
		return JobResponse{}, joberrors.CapacityExceeded(d.Reason)
	}

	if j.IsClearance {
		clearance, err := qtx.CountClearanceOnDate(ctx, j.JobDate)
		if err != nil {
			s.logger.Error("create job clearance count failed", zap.String("date", j.JobDate), zap.Error(err))
			return JobResponse{}, mapRepositoryError(err)
		}
		if d := capacity.EvaluateClearance(j.JobDate, int(clearance)); !d.Allow {
			s.logger.Warn("create job rejected by clearance cap",
				zap.String("date", j.JobDate),
				zap.String("reason", d.Reason),
			)
			return JobResponse{}, joberrors.CapacityExceeded(d.Reason)
		}
	}

	if err := qtx.Create(ctx, j); err != nil {
		s.logger.Error("create job persist failed", zap.String("job_id", j.ID), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, actor, j, events.JobCreated); err != nil {
		return JobResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create job commit failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}

	s.logger.Info("create job success",
		zap.String("request_id", rid),
		zap.String("job_id", j.ID),
		zap.String("status", string(j.Status)),
	)

	return mapToResponse(*j), nil
}

func (s *service) GetAll(ctx context.Context, filter JobFilter) ([]JobResponse, error) {
	s.logger.Debug("get all jobs requested",
		zap.String("status", filter.Status),
		zap.String("date", filter.Date),
	)

	if filter.Status != "" {
		if _, ok := ParseStatus(filter.Status); !ok {
			return nil, joberrors.ErrInvalidStatus
		}
	}
	if filter.Date != "" {
		if _, err := time.Parse(dateLayout, filter.Date); err != nil {
			return nil, joberrors.ErrInvalidDate
		}
	}

	jobs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all jobs failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, mapToResponse(j))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobResponse, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*j), nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) (DeleteResult, error) {
	s.logger.Debug("delete job requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("job_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete job begin tx failed", zap.Error(err))
		return DeleteResult{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DeleteResult{}, mapRepositoryError(err)
	}

	tr, err := DeleteTransition(*j, actor.Role)
	if err != nil {
		s.logger.Warn("delete job rejected",
			zap.String("job_id", id),
			zap.String("actor_id", actor.EmployeeID),
			zap.Error(err),
		)
		return DeleteResult{}, err
	}

	var result DeleteResult
	switch tr.Effect {
	case EffectHardDelete:
		if err := qtx.Delete(ctx, id); err != nil {
			s.logger.Error("delete job persist failed", zap.String("job_id", id), zap.Error(err))
			return DeleteResult{}, mapRepositoryError(err)
		}
		if err := s.enqueue(ctx, tx, actor, j, events.JobDeleted); err != nil {
			return DeleteResult{}, err
		}
		result = DeleteResult{Deleted: true}
	case EffectSetStatus:
		if err := qtx.UpdateFields(ctx, id, map[string]any{"status": tr.Status}); err != nil {
			s.logger.Error("delete job request persist failed", zap.String("job_id", id), zap.Error(err))
			return DeleteResult{}, mapRepositoryError(err)
		}
		j.Status = tr.Status
		if err := s.enqueue(ctx, tx, actor, j, events.JobDeleteRequested); err != nil {
			return DeleteResult{}, err
		}
		resp := mapToResponse(*j)
		result = DeleteResult{Deleted: false, Job: &resp}
	case EffectNone:
		resp := mapToResponse(*j)
		return DeleteResult{Job: &resp}, nil
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete job commit failed", zap.Error(err))
		return DeleteResult{}, apperror.Backend(err)
	}

	s.logger.Info("delete job success",
		zap.String("job_id", id),
		zap.Bool("hard_delete", result.Deleted),
	)
	return result, nil
}

func (s *service) UpdateAllocation(ctx context.Context, actor domain.Actor, id string, req AllocationRequest) (JobResponse, error) {
	s.logger.Debug("update allocation requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("job_id", id),
	)

	fields := allocationFields(req)
	if len(fields) == 0 {
		return s.GetByID(ctx, id)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update allocation begin tx failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	if err := qtx.UpdateFields(ctx, id, fields); err != nil {
		s.logger.Error("update allocation persist failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update allocation commit failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}

	applyAllocation(j, req)
	s.logger.Info("update allocation success", zap.String("job_id", id))
	return mapToResponse(*j), nil
}

func (s *service) UpdateCustomsStatus(ctx context.Context, actor domain.Actor, id string, status string) (JobResponse, error) {
	s.logger.Debug("update customs status requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("job_id", id),
		zap.String("status", status),
	)

	if !actor.IsAdmin() {
		s.logger.Warn("update customs status forbidden", zap.String("actor_id", actor.EmployeeID))
		return JobResponse{}, joberrors.ErrAdminOnly
	}
	cs, ok := ParseCustomsStatus(status)
	if !ok {
		return JobResponse{}, joberrors.ErrInvalidCustomsStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update customs status begin tx failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}
	if !j.IsClearance {
		return JobResponse{}, joberrors.ErrCustomsNotApplicable
	}

	if err := qtx.UpdateFields(ctx, id, map[string]any{"customs_status": cs}); err != nil {
		s.logger.Error("update customs status persist failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update customs status commit failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}

	j.CustomsStatus = cs
	s.logger.Info("update customs status success",
		zap.String("job_id", id),
		zap.String("status", string(cs)),
	)
	return mapToResponse(*j), nil
}

func (s *service) ToggleLock(ctx context.Context, actor domain.Actor, id string) (JobResponse, error) {
	s.logger.Debug("toggle lock requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("job_id", id),
	)

	if !actor.IsAdmin() {
		s.logger.Warn("toggle lock forbidden", zap.String("actor_id", actor.EmployeeID))
		return JobResponse{}, joberrors.ErrAdminOnly
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("toggle lock begin tx failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	locked := !j.IsLocked
	if err := qtx.UpdateFields(ctx, id, map[string]any{"is_locked": locked}); err != nil {
		s.logger.Error("toggle lock persist failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}
	j.IsLocked = locked

	eventType := events.JobUnlocked
	if locked {
		eventType = events.JobLocked
	}
	if err := s.enqueue(ctx, tx, actor, j, eventType); err != nil {
		return JobResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("toggle lock commit failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}

	s.logger.Info("toggle lock success",
		zap.String("job_id", id),
		zap.Bool("locked", locked),
	)
	return mapToResponse(*j), nil
}

func (s *service) ResolveApproval(
	ctx context.Context,
	actor domain.Actor,
	id string,
	approved bool,
	alloc *AllocationRequest,
) (ApprovalOutcome, error) {
	s.logger.Debug("resolve approval requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("job_id", id),
		zap.Bool("approved", approved),
	)

	if !actor.IsAdmin() {
		s.logger.Warn("resolve approval forbidden", zap.String("actor_id", actor.EmployeeID))
		return ApprovalOutcome{}, joberrors.ErrAdminOnly
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve approval begin tx failed", zap.Error(err))
		return ApprovalOutcome{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ApprovalOutcome{}, mapRepositoryError(err)
	}

	tr := ResolveTransition(j.Status, approved)
	switch tr.Effect {
	case EffectNone:
		s.logger.Info("resolve approval skipped, job not pending",
			zap.String("job_id", id),
			zap.String("status", string(j.Status)),
		)
		resp := mapToResponse(*j)
		return ApprovalOutcome{Outcome: tr.Outcome, Job: &resp}, nil

	case EffectHardDelete:
		if err := qtx.Delete(ctx, id); err != nil {
			s.logger.Error("resolve approval delete failed", zap.String("job_id", id), zap.Error(err))
			return ApprovalOutcome{}, mapRepositoryError(err)
		}
		if err := s.enqueue(ctx, tx, actor, j, events.JobDeleted); err != nil {
			return ApprovalOutcome{}, err
		}

	case EffectSetStatus:
		fields := map[string]any{"status": tr.Status}
		if tr.Outcome == OutcomeActivated && alloc != nil {
			for k, v := range allocationFields(*alloc) {
				fields[k] = v
			}
			applyAllocation(j, *alloc)
		}
		if err := qtx.UpdateFields(ctx, id, fields); err != nil {
			s.logger.Error("resolve approval persist failed", zap.String("job_id", id), zap.Error(err))
			return ApprovalOutcome{}, mapRepositoryError(err)
		}
		j.Status = tr.Status
		if err := s.enqueue(ctx, tx, actor, j, outcomeEvent(tr.Outcome)); err != nil {
			return ApprovalOutcome{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve approval commit failed", zap.Error(err))
		return ApprovalOutcome{}, apperror.Backend(err)
	}

	s.logger.Info("resolve approval success",
		zap.String("job_id", id),
		zap.String("outcome", string(tr.Outcome)),
	)

	if tr.Effect == EffectHardDelete {
		return ApprovalOutcome{Outcome: tr.Outcome}, nil
	}
	resp := mapToResponse(*j)
	return ApprovalOutcome{Outcome: tr.Outcome, Job: &resp}, nil
}

func (s *service) Complete(ctx context.Context, actor domain.Actor, id string) (JobResponse, error) {
	s.logger.Debug("complete job requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("job_id", id),
	)

	if !actor.IsAdmin() {
		s.logger.Warn("complete job forbidden", zap.String("actor_id", actor.EmployeeID))
		return JobResponse{}, joberrors.ErrAdminOnly
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("complete job begin tx failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	tr, err := CompleteTransition(j.Status)
	if err != nil {
		s.logger.Warn("complete job rejected",
			zap.String("job_id", id),
			zap.String("status", string(j.Status)),
		)
		return JobResponse{}, err
	}

	if err := qtx.UpdateFields(ctx, id, map[string]any{"status": tr.Status}); err != nil {
		s.logger.Error("complete job persist failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}
	j.Status = tr.Status
	if err := s.enqueue(ctx, tx, actor, j, events.JobCompleted); err != nil {
		return JobResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("complete job commit failed", zap.Error(err))
		return JobResponse{}, apperror.Backend(err)
	}

	s.logger.Info("complete job success", zap.String("job_id", id))
	return mapToResponse(*j), nil
}

func (s *service) Capacity(ctx context.Context, date string) (CapacityResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return CapacityResponse{}, joberrors.ErrInvalidDate
	}

	caps, err := settings.LoadCapacity(ctx, s.settings)
	if err != nil {
		return CapacityResponse{}, err
	}

	used, err := s.repo.CountActiveOnDate(ctx, date)
	if err != nil {
		s.logger.Error("capacity count failed", zap.String("date", date), zap.Error(err))
		return CapacityResponse{}, mapRepositoryError(err)
	}
	clearance, err := s.repo.CountClearanceOnDate(ctx, date)
	if err != nil {
		s.logger.Error("capacity clearance count failed", zap.String("date", date), zap.Error(err))
		return CapacityResponse{}, mapRepositoryError(err)
	}

	return CapacityResponse{
		Date:               date,
		Holiday:            capacity.IsHoliday(date, caps),
		Limit:              capacity.EffectiveLimit(date, caps),
		Used:               int(used),
		Remaining:          capacity.Remaining(date, int(used), caps),
		ClearanceLimit:     capacity.ClearanceDailyCap,
		ClearanceUsed:      int(clearance),
		ClearanceRemaining: capacity.ClearanceRemaining(int(clearance)),
	}, nil
}

// buildJob validates the request and fills the create defaults.
func (s *service) buildJob(actor domain.Actor, req CreateJobRequest) (*Job, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, joberrors.ErrInvalidJobID
	}
	if strings.TrimSpace(req.ShipperName) == "" {
		return nil, apperror.RequiredField("shipper_name")
	}

	priority := PriorityLow
	if req.Priority != "" {
		p, ok := ParsePriority(req.Priority)
		if !ok {
			return nil, joberrors.ErrInvalidPriority
		}
		priority = p
	}

	loading := LoadingWarehouseRemoval
	if req.IsImportClearance {
		loading = LoadingDirectLoading
	}
	if req.LoadingType != "" {
		l, ok := ParseLoadingType(req.LoadingType)
		if !ok {
			return nil, joberrors.ErrInvalidLoadingType
		}
		loading = l
	}

	date := req.JobDate
	if date == "" {
		date = s.now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, joberrors.ErrInvalidDate
	}

	var customs CustomsStatus
	switch {
	case !req.IsImportClearance && req.CustomsStatus != "":
		return nil, joberrors.ErrCustomsNotApplicable
	case req.IsImportClearance && req.CustomsStatus == "":
		customs = CustomsPendingDocumentation
	case req.IsImportClearance:
		c, ok := ParseCustomsStatus(req.CustomsStatus)
		if !ok {
			return nil, joberrors.ErrInvalidCustomsStatus
		}
		customs = c
	}

	return &Job{
		ID:              id,
		Title:           id,
		ShipperName:     req.ShipperName,
		Location:        req.Location,
		Description:     orDefault(req.Description, DefaultText),
		ShipmentDetails: orDefault(req.ShipmentDetails, DefaultText),
		AgentName:       req.AgentName,
		Priority:        priority,
		LoadingType:     loading,
		MainCategory:    req.MainCategory,
		SubCategory:     req.SubCategory,
		VolumeCBM:       req.VolumeCBM,
		JobDate:         date,
		JobTime:         req.JobTime,
		Status:          InitialStatus(actor.Role),
		CreatedAt:       s.now().UnixMilli(),
		RequesterID:     actor.EmployeeID,
		AssignedTo:      orDefault(req.AssignedTo, DefaultAssignee),
		IsLocked:        false,
		IsWarehouse:     req.IsWarehouseActivity,
		IsClearance:     req.IsImportClearance,
		TeamLeader:      req.TeamLeader,
		Vehicle:         req.Vehicle,
		WriterCrew:      pq.StringArray(req.WriterCrew),
		BolNumber:       req.BolNumber,
		ContainerNumber: req.ContainerNumber,
		CustomsStatus:   customs,
	}, nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, actor domain.Actor, j *Job, eventType string) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewJobLifecycleEvent(events.JobLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		JobID:      j.ID,
		JobDate:    j.JobDate,
		Status:     string(j.Status),
		ActorID:    actor.EmployeeID,
		ActorRole:  string(actor.Role),
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("build outbox event failed", zap.String("job_id", j.ID), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to build job event", http.StatusInternalServerError)
	}

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("job outbox persist failed",
			zap.String("job_id", j.ID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return apperror.Backend(err)
	}
	return nil
}

func outcomeEvent(o Outcome) string {
	switch o {
	case OutcomeActivated:
		return events.JobApproved
	case OutcomeRejected:
		return events.JobRejected
	case OutcomeRestored:
		return events.JobRestored
	case OutcomeDeleted:
		return events.JobDeleted
	default:
		return ""
	}
}

func allocationFields(req AllocationRequest) map[string]any {
	fields := map[string]any{}
	if req.TeamLeader != nil {
		fields["team_leader"] = *req.TeamLeader
	}
	if req.Vehicle != nil {
		fields["vehicle"] = *req.Vehicle
	}
	if req.WriterCrew != nil {
		fields["writer_crew"] = pq.StringArray(*req.WriterCrew)
	}
	return fields
}

func applyAllocation(j *Job, req AllocationRequest) {
	if req.TeamLeader != nil {
		j.TeamLeader = *req.TeamLeader
	}
	if req.Vehicle != nil {
		j.Vehicle = *req.Vehicle
	}
	if req.WriterCrew != nil {
		j.WriterCrew = pq.StringArray(*req.WriterCrew)
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func mapToResponse(j Job) JobResponse {
	crew := append([]string{}, j.WriterCrew...)
	return JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		ShipperName:         j.ShipperName,
		Location:            j.Location,
		Description:         j.Description,
		ShipmentDetails:     j.ShipmentDetails,
		AgentName:           j.AgentName,
		Priority:            string(j.Priority),
		LoadingType:         string(j.LoadingType),
		MainCategory:        j.MainCategory,
		SubCategory:         j.SubCategory,
		VolumeCBM:           j.VolumeCBM,
		JobDate:             j.JobDate,
		JobTime:             j.JobTime,
		Status:              string(j.Status),
		CreatedAt:           j.CreatedAt,
		RequesterID:         j.RequesterID,
		AssignedTo:          j.AssignedTo,
		IsLocked:            j.IsLocked,
		IsWarehouseActivity: j.IsWarehouse,
		IsImportClearance:   j.IsClearance,
		TeamLeader:          j.TeamLeader,
		Vehicle:             j.Vehicle,
		WriterCrew:          crew,
		BolNumber:           j.BolNumber,
		ContainerNumber:     j.ContainerNumber,
		CustomsStatus:       string(j.CustomsStatus),
	}
}
