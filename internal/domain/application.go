package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusConfirmed ApplicationStatus = "CONFIRMED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
	// CANCELLED is a reserved terminal state: it exists in stored data but no
	// operation currently emits it.
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave the status.
// CONFIRMED is terminal for the application itself; the membership row it
// spawned lives on independently.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case ApplicationStatusRejected, ApplicationStatusConfirmed,
		ApplicationStatusWithdrawn, ApplicationStatusCancelled:
		return true
	}
	return false
}

// Application is a student's request for a seat on a project. At most one
// application exists per (project, user) pair.
type Application struct {
	ID          int32             `json:"id"`
	ProjectID   int32             `json:"project_id"`
	UserID      int32             `json:"user_id"`
	Motivation  string            `json:"motivation"`
	Experience  string            `json:"experience"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submitted_at"`
	DecidedAt   *time.Time        `json:"decided_at,omitempty"`
}
