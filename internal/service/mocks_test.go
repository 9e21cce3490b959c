package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/repository"
)

// fixedClock pins time for deterministic admission and projection tests.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockOrgRepo
type MockOrgRepo struct {
	mock.Mock
}

func (m *MockOrgRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrgRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrgRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}

// MockProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Project, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Project), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByProjectAndUser(ctx context.Context, projectID, userID int32) (*domain.Application, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatusFrom(ctx context.Context, id int32, from []domain.ApplicationStatus, to domain.ApplicationStatus, decidedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, decidedAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) ConfirmWithCapacity(ctx context.Context, id, projectID, userID, slotsTotal int32, decidedAt time.Time) (repository.ConfirmOutcome, error) {
	args := m.Called(ctx, id, projectID, userID, slotsTotal, decidedAt)
	return args.Get(0).(repository.ConfirmOutcome), args.Error(1)
}
func (m *MockApplicationRepo) ListByProject(ctx context.Context, projectID int32) ([]domain.Application, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

// MockMembershipRepo
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) Insert(ctx context.Context, ms *domain.Membership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}
func (m *MockMembershipRepo) Exists(ctx context.Context, projectID, userID int32) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockMembershipRepo) CountForProject(ctx context.Context, projectID int32) (int32, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockMembershipRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListByProject(ctx context.Context, projectID int32) ([]domain.Membership, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationReceived(ctx context.Context, orgEmail, studentName, projectTitle string) error {
	args := m.Called(ctx, orgEmail, studentName, projectTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendDecisionNotification(ctx context.Context, studentEmail, projectTitle string, accepted bool) error {
	args := m.Called(ctx, studentEmail, projectTitle, accepted)
	return args.Error(0)
}
func (m *MockEmailService) SendConfirmationReceived(ctx context.Context, orgEmail, studentName, projectTitle string) error {
	args := m.Called(ctx, orgEmail, studentName, projectTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendWithdrawalNotice(ctx context.Context, orgEmail, studentName, projectTitle string) error {
	args := m.Called(ctx, orgEmail, studentName, projectTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendSessionReminder(ctx context.Context, studentEmail, projectTitle, date, startTime, endTime string) error {
	args := m.Called(ctx, studentEmail, projectTitle, date, startTime, endTime)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingDigest(ctx context.Context, orgEmail, orgName string, pendingCount int) error {
	args := m.Called(ctx, orgEmail, orgName, pendingCount)
	return args.Error(0)
}
