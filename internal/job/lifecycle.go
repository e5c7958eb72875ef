package job

import (
	"go-opscentral/internal/domain"
	joberrors "go-opscentral/internal/job/errors"
	"go-opscentral/internal/shared/apperror"
)

type Status string

const (
	StatusPendingAdd    Status = "PENDING_ADD"
	StatusPendingDelete Status = "PENDING_DELETE"
	StatusActive        Status = "ACTIVE"
	StatusCompleted     Status = "COMPLETED"
	StatusRejected      Status = "REJECTED"
)

func ParseStatus(v string) (Status, bool) {
	switch s := Status(v); s {
	case StatusPendingAdd, StatusPendingDelete, StatusActive, StatusCompleted, StatusRejected:
		return s, true
	default:
		return "", false
	}
}

// IsPending reports whether the job is waiting on an admin decision.
func (s Status) IsPending() bool {
	return s == StatusPendingAdd || s == StatusPendingDelete
}

type Effect int

const (
	EffectNone Effect = iota
	EffectSetStatus
	EffectHardDelete
)

type Outcome string

const (
	OutcomeActivated Outcome = "activated"
	OutcomeRejected  Outcome = "rejected"
	OutcomeDeleted   Outcome = "deleted"
	OutcomeRestored  Outcome = "restored"
	OutcomeUnchanged Outcome = "unchanged"
)

// Transition is the store effect a lifecycle decision asks for.
// Status is only meaningful with EffectSetStatus.
type Transition struct {
	Effect  Effect
	Status  Status
	Outcome Outcome
}

func InitialStatus(role domain.Role) Status {
	switch role {
	case domain.RoleAdmin:
		return StatusActive
	case domain.RoleUser:
		return StatusPendingAdd
	default:
		return StatusPendingAdd
	}
}

// DeleteTransition applies the delete rules for the caller's role. A user
// delete on an unlocked job always requests PENDING_DELETE, even when the
// job is already waiting on a delete.
func DeleteTransition(j Job, role domain.Role) (Transition, error) {
	switch role {
	case domain.RoleAdmin:
		return Transition{Effect: EffectHardDelete, Outcome: OutcomeDeleted}, nil
	case domain.RoleUser:
		if j.IsLocked {
			return Transition{}, joberrors.ErrJobLocked
		}
		return Transition{Effect: EffectSetStatus, Status: StatusPendingDelete}, nil
	default:
		return Transition{}, apperror.ErrForbidden
	}
}

// ResolveTransition maps an admin decision onto a job status. Non-pending
// jobs are left alone.
func ResolveTransition(current Status, approved bool) Transition {
	switch current {
	case StatusPendingAdd:
		if approved {
			return Transition{Effect: EffectSetStatus, Status: StatusActive, Outcome: OutcomeActivated}
		}
		return Transition{Effect: EffectSetStatus, Status: StatusRejected, Outcome: OutcomeRejected}
	case StatusPendingDelete:
		if approved {
			return Transition{Effect: EffectHardDelete, Outcome: OutcomeDeleted}
		}
		return Transition{Effect: EffectSetStatus, Status: StatusActive, Outcome: OutcomeRestored}
	case StatusActive, StatusCompleted, StatusRejected:
		return Transition{Effect: EffectNone, Outcome: OutcomeUnchanged}
	default:
		return Transition{Effect: EffectNone, Outcome: OutcomeUnchanged}
	}
}

func CompleteTransition(current Status) (Transition, error) {
	switch current {
	case StatusActive:
		return Transition{Effect: EffectSetStatus, Status: StatusCompleted}, nil
	case StatusPendingAdd, StatusPendingDelete, StatusCompleted, StatusRejected:
		return Transition{}, joberrors.ErrNotCompletable
	default:
		return Transition{}, joberrors.ErrNotCompletable
	}
}
