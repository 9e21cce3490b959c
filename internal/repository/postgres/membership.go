package postgres

import (
	"context"
	"database/sql"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// Insert relies on the (project_id, user_id) primary key: a concurrent
// duplicate insert degrades to a no-op instead of an error, which is what
// makes Confirm safe to retry.
func (r *membershipRepository) Insert(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (project_id, user_id, accepted_at)
	          VALUES ($1, $2, $3) ON CONFLICT (project_id, user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, m.ProjectID, m.UserID, m.AcceptedAt)
	return err
}

func (r *membershipRepository) Exists(ctx context.Context, projectID, userID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM memberships WHERE project_id = $1 AND user_id = $2)`
	err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&exists)
	return exists, err
}

func (r *membershipRepository) CountForProject(ctx context.Context, projectID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM memberships WHERE project_id = $1`
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(&count)
	return count, err
}

func (r *membershipRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error) {
	query := `SELECT project_id, user_id, accepted_at FROM memberships WHERE user_id = $1 ORDER BY accepted_at`
	return r.queryMemberships(ctx, query, userID)
}

func (r *membershipRepository) ListByProject(ctx context.Context, projectID int32) ([]domain.Membership, error) {
	query := `SELECT project_id, user_id, accepted_at FROM memberships WHERE project_id = $1 ORDER BY accepted_at`
	return r.queryMemberships(ctx, query, projectID)
}

func (r *membershipRepository) queryMemberships(ctx context.Context, query string, args ...interface{}) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.ProjectID, &m.UserID, &m.AcceptedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
