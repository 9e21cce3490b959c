package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityserve-backend/internal/domain"
)

var projectRows = []string{
	"id", "org_id", "title", "description", "slots_total", "required_hours", "apply_by",
	"repeat_interval", "repeat_unit", "days_of_week", "time_start", "time_end",
	"start_date", "end_date", "created_on",
}

func TestProjectRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.Project{
		OrgID:          3,
		Title:          "River Cleanup",
		Description:    "Weekly cleanup shifts",
		SlotsTotal:     4,
		RequiredHours:  20,
		ApplyBy:        time.Date(2025, 5, 30, 23, 59, 0, 0, time.UTC),
		RepeatInterval: 2,
		RepeatUnit:     domain.RepeatUnitWeek,
		DaysOfWeek:     []string{"Monday", "Thursday"},
		TimeStart:      "14:00",
		TimeEnd:        "16:00",
		StartDate:      "2025-06-02",
		EndDate:        "2025-06-30",
	}

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(p.OrgID, p.Title, p.Description, p.SlotsTotal, p.RequiredHours, p.ApplyBy,
			p.RepeatInterval, p.RepeatUnit, `{"Monday","Thursday"}`, p.TimeStart, p.TimeEnd,
			p.StartDate, p.EndDate, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(ctx, p)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), p.ID)
}

func TestProjectRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	applyBy := time.Date(2025, 5, 30, 23, 59, 0, 0, time.UTC)
	createdOn := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM projects WHERE id").
		WithArgs(int32(5)).
		WillReturnRows(sqlmock.NewRows(projectRows).
			AddRow(5, 3, "River Cleanup", "desc", 4, 20, applyBy,
				2, "WEEK", `{"Monday","Thursday"}`, "14:00", "16:00",
				"2025-06-02", "2025-06-30", createdOn))

	p, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Thursday"}, p.DaysOfWeek)
	assert.Equal(t, domain.RepeatUnitWeek, p.RepeatUnit)
	assert.Equal(t, int32(2), p.RepeatInterval)
	assert.False(t, p.OneTime())
}
