package repository

import (
	"context"
	"time"

	"communityserve-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int32) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Project, error)
}

// ConfirmOutcome reports how a transactional confirm attempt resolved.
type ConfirmOutcome int

const (
	ConfirmOK ConfirmOutcome = iota
	ConfirmNotAccepted
	ConfirmCapacityFull
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	GetByProjectAndUser(ctx context.Context, projectID, userID int32) (*domain.Application, error)
	// UpdateStatusFrom moves the application to the target status only if its
	// persisted status is still one of the given source statuses, and reports
	// whether a row was updated. This is the serialization point for
	// concurrent decisions and withdrawals.
	UpdateStatusFrom(ctx context.Context, id int32, from []domain.ApplicationStatus, to domain.ApplicationStatus, decidedAt time.Time) (bool, error)
	// ConfirmWithCapacity flips an accepted application to CONFIRMED and
	// inserts the membership row in one transaction, holding the project's
	// row lock while the confirmed count is checked against slotsTotal.
	// Concurrent confirms on the same project serialize on that lock, so
	// confirmed occupancy never exceeds the slot count.
	ConfirmWithCapacity(ctx context.Context, id, projectID, userID, slotsTotal int32, decidedAt time.Time) (ConfirmOutcome, error)
	ListByProject(ctx context.Context, projectID int32) ([]domain.Application, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Application, error)
}

// MembershipRepository is the durable seat ledger. Insert must be safe to
// call twice for the same (project, user) pair; the second call is a no-op.
type MembershipRepository interface {
	Insert(ctx context.Context, m *domain.Membership) error
	Exists(ctx context.Context, projectID, userID int32) (bool, error)
	CountForProject(ctx context.Context, projectID int32) (int32, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error)
	ListByProject(ctx context.Context, projectID int32) ([]domain.Membership, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
