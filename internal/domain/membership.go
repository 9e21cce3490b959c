package domain

import "time"

// Membership records that a student occupies a confirmed seat on a project.
// It is created exactly once, when an accepted application is confirmed,
// and is never updated or deleted. Keyed by (project_id, user_id).
type Membership struct {
	ProjectID  int32     `json:"project_id"`
	UserID     int32     `json:"user_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}
