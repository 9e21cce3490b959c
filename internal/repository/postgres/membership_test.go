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

func TestMembershipRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMembershipRepository(db)
	ctx := context.Background()
	acceptedAt := time.Date(2025, 6, 13, 15, 0, 0, 0, time.UTC)

	m := &domain.Membership{ProjectID: 5, UserID: 9, AcceptedAt: acceptedAt}

	t.Run("FirstInsert", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO memberships").
			WithArgs(m.ProjectID, m.UserID, acceptedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Insert(ctx, m))
	})

	t.Run("DuplicateIsNoOp", func(t *testing.T) {
		// ON CONFLICT DO NOTHING: zero rows affected, still no error.
		mock.ExpectExec("INSERT INTO memberships").
			WithArgs(m.ProjectID, m.UserID, acceptedAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Insert(ctx, m))
	})
}

func TestMembershipRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMembershipRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int32(5), int32(9)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, 5, 9)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestMembershipRepository_CountForProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMembershipRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WithArgs(int32(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountForProject(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), count)
}

func TestMembershipRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMembershipRepository(db)
	ctx := context.Background()
	acceptedAt := time.Date(2025, 6, 13, 15, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT project_id, user_id, accepted_at FROM memberships WHERE user_id").
		WithArgs(int32(9)).
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "user_id", "accepted_at"}).
			AddRow(5, 9, acceptedAt).
			AddRow(6, 9, acceptedAt.Add(time.Hour)))

	members, err := repo.ListByUser(ctx, 9)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, int32(5), members[0].ProjectID)
	assert.Equal(t, int32(6), members[1].ProjectID)
}
