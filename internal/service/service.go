package service

import (
	"context"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/schedule"
)

type DecisionAction string

const (
	DecisionAccept DecisionAction = "accept"
	DecisionReject DecisionAction = "reject"
)

type ApplicationService interface {
	Submit(ctx context.Context, projectID, userID int32, motivation, experience string) (*domain.Application, error)
	Decide(ctx context.Context, applicationID, actingOrgID int32, action DecisionAction) (*domain.Application, error)
	Confirm(ctx context.Context, applicationID, actingUserID int32) (*domain.Application, error)
	Withdraw(ctx context.Context, applicationID, actingUserID int32) (*domain.Application, error)
	GetApplication(ctx context.Context, applicationID, actingUserID int32) (*domain.Application, error)
	ListByProject(ctx context.Context, projectID, actingOrgID int32) ([]domain.Application, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Application, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, actingOrgID int32, project *domain.Project) error
	GetProject(ctx context.Context, id int32) (*domain.Project, domain.Capacity, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Project, error)
}

type SessionService interface {
	ProjectSessions(ctx context.Context, projectID int32, lookaheadDays int) ([]schedule.Occurrence, error)
	UpcomingSessions(ctx context.Context, userID int32, lookaheadDays int) ([]schedule.Occurrence, error)
}

type AuthService interface {
	SignupStudent(ctx context.Context, name, email, password string) (*domain.User, string, error)
	SignupOrganization(ctx context.Context, orgName, orgDescription, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendApplicationReceived(ctx context.Context, orgEmail, studentName, projectTitle string) error
	SendDecisionNotification(ctx context.Context, studentEmail, projectTitle string, accepted bool) error
	SendConfirmationReceived(ctx context.Context, orgEmail, studentName, projectTitle string) error
	SendWithdrawalNotice(ctx context.Context, orgEmail, studentName, projectTitle string) error
	SendSessionReminder(ctx context.Context, studentEmail, projectTitle, date, startTime, endTime string) error
	SendPendingDigest(ctx context.Context, orgEmail, orgName string, pendingCount int) error
}
