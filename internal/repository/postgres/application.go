package postgres

import (
	"context"
	"database/sql"
	"time"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/repository"

	"github.com/lib/pq"
)

// legacyStatusApproved is an older spelling of ACCEPTED still present in
// stored rows. It is normalized on every read and matched on every guarded
// update; nothing above this package ever sees it.
const legacyStatusApproved = "APPROVED"

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (project_id, user_id, motivation, experience, status, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		a.ProjectID, a.UserID, a.Motivation, a.Experience, a.Status, a.SubmittedAt).Scan(&a.ID)
}

func scanApplication(row interface{ Scan(...interface{}) error }) (*domain.Application, error) {
	a := &domain.Application{}
	err := row.Scan(&a.ID, &a.ProjectID, &a.UserID, &a.Motivation, &a.Experience, &a.Status, &a.SubmittedAt, &a.DecidedAt)
	if err != nil {
		return nil, err
	}
	if string(a.Status) == legacyStatusApproved {
		a.Status = domain.ApplicationStatusAccepted
	}
	return a, nil
}

const applicationColumns = `id, project_id, user_id, motivation, experience, status, submitted_at, decided_at`

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRowContext(ctx, query, id))
}

func (r *applicationRepository) GetByProjectAndUser(ctx context.Context, projectID, userID int32) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE project_id = $1 AND user_id = $2`
	return scanApplication(r.db.QueryRowContext(ctx, query, projectID, userID))
}

func (r *applicationRepository) UpdateStatusFrom(ctx context.Context, id int32, from []domain.ApplicationStatus, to domain.ApplicationStatus, decidedAt time.Time) (bool, error) {
	sources := make([]string, 0, len(from)+1)
	for _, s := range from {
		sources = append(sources, string(s))
		if s == domain.ApplicationStatusAccepted {
			sources = append(sources, legacyStatusApproved)
		}
	}

	query := `UPDATE applications SET status = $1, decided_at = $2 WHERE id = $3 AND status = ANY($4)`
	res, err := r.db.ExecContext(ctx, query, to, decidedAt, id, pq.Array(sources))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *applicationRepository) ConfirmWithCapacity(ctx context.Context, id, projectID, userID, slotsTotal int32, decidedAt time.Time) (repository.ConfirmOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.ConfirmOK, err
	}
	defer tx.Rollback()

	// The project row lock serializes concurrent confirms; the membership
	// count below cannot change until this transaction ends.
	var lockedID int32
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM projects WHERE id = $1 FOR UPDATE`, projectID).Scan(&lockedID); err != nil {
		return repository.ConfirmOK, err
	}

	sources := []string{string(domain.ApplicationStatusAccepted), legacyStatusApproved}
	res, err := tx.ExecContext(ctx,
		`UPDATE applications SET status = $1, decided_at = $2 WHERE id = $3 AND status = ANY($4)`,
		domain.ApplicationStatusConfirmed, decidedAt, id, pq.Array(sources))
	if err != nil {
		return repository.ConfirmOK, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.ConfirmOK, err
	}
	if n == 0 {
		return repository.ConfirmNotAccepted, nil
	}

	var confirmed int32
	if err := tx.QueryRowContext(ctx,
		`SELECT count(*) FROM memberships WHERE project_id = $1`, projectID).Scan(&confirmed); err != nil {
		return repository.ConfirmOK, err
	}
	if confirmed >= slotsTotal {
		// Rollback also undoes the status flip above.
		return repository.ConfirmCapacityFull, nil
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO memberships (project_id, user_id, accepted_at)
		 VALUES ($1, $2, $3) ON CONFLICT (project_id, user_id) DO NOTHING`,
		projectID, userID, decidedAt); err != nil {
		return repository.ConfirmOK, err
	}

	if err := tx.Commit(); err != nil {
		return repository.ConfirmOK, err
	}
	return repository.ConfirmOK, nil
}

func (r *applicationRepository) ListByProject(ctx context.Context, projectID int32) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE project_id = $1 ORDER BY submitted_at`
	return r.queryApplications(ctx, query, projectID)
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1 ORDER BY submitted_at`
	return r.queryApplications(ctx, query, userID)
}

func (r *applicationRepository) queryApplications(ctx context.Context, query string, args ...interface{}) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}
