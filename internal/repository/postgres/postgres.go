package postgres

import (
	"database/sql"

	"communityserve-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrganizationRepository
	repository.ProjectRepository
	repository.ApplicationRepository
	repository.MembershipRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		ProjectRepository:      NewProjectRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		MembershipRepository:   NewMembershipRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
