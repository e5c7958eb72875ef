package events

import "time"

const JobLifecycleTopic = "ops.job.lifecycle.v1"

const (
	JobCreated         = "job_created"
	JobDeleteRequested = "job_delete_requested"
	JobDeleted         = "job_deleted"
	JobApproved        = "job_approved"
	JobRejected        = "job_rejected"
	JobRestored        = "job_restored"
	JobLocked          = "job_locked"
	JobUnlocked        = "job_unlocked"
	JobCompleted       = "job_completed"
)

type JobLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	JobID      string    `json:"job_id"`
	JobDate    string    `json:"job_date"`
	Status     string    `json:"status,omitempty"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AwaitsApproval reports whether an admin has to act on the job next.
func (e JobLifecycleEvent) AwaitsApproval() bool {
	switch e.EventType {
	case JobDeleteRequested:
		return true
	case JobCreated:
		return e.Status == "PENDING_ADD"
	default:
		return false
	}
}
