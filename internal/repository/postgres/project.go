package postgres

import (
	"context"
	"database/sql"
	"time"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/repository"

	"github.com/lib/pq"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, org_id, title, description, slots_total, required_hours, apply_by,
	repeat_interval, repeat_unit, days_of_week, time_start, time_end, start_date, end_date, created_on`

func (r *projectRepository) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (org_id, title, description, slots_total, required_hours, apply_by,
	              repeat_interval, repeat_unit, days_of_week, time_start, time_end, start_date, end_date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.OrgID, p.Title, p.Description, p.SlotsTotal, p.RequiredHours, p.ApplyBy,
		p.RepeatInterval, p.RepeatUnit, pq.Array(p.DaysOfWeek), p.TimeStart, p.TimeEnd,
		p.StartDate, p.EndDate, time.Now()).Scan(&p.ID)
}

func scanProject(row interface{ Scan(...interface{}) error }) (*domain.Project, error) {
	p := &domain.Project{}
	err := row.Scan(&p.ID, &p.OrgID, &p.Title, &p.Description, &p.SlotsTotal, &p.RequiredHours, &p.ApplyBy,
		&p.RepeatInterval, &p.RepeatUnit, pq.Array(&p.DaysOfWeek), &p.TimeStart, &p.TimeEnd,
		&p.StartDate, &p.EndDate, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY start_date, id`
	return r.queryProjects(ctx, query)
}

func (r *projectRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE org_id = $1 ORDER BY start_date, id`
	return r.queryProjects(ctx, query, orgID)
}

func (r *projectRepository) queryProjects(ctx context.Context, query string, args ...interface{}) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}
