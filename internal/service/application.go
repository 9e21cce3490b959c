package service

import (
	"context"
	"fmt"
	"strings"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/logger"
	"communityserve-backend/internal/repository"
	"communityserve-backend/internal/schedule"
)

type applicationService struct {
	appRepo    repository.ApplicationRepository
	projRepo   repository.ProjectRepository
	memberRepo repository.MembershipRepository
	userRepo   repository.UserRepository
	orgRepo    repository.OrganizationRepository
	noteRepo   repository.NotificationRepository
	emailSvc   EmailService
	clock      schedule.Clock
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	projRepo repository.ProjectRepository,
	memberRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	clock schedule.Clock,
) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		projRepo:   projRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		noteRepo:   noteRepo,
		emailSvc:   emailSvc,
		clock:      clock,
	}
}

// Submit creates a pending application after the admission guard passes.
// Guards run in order: deadline, capacity, duplicate. Submission does not
// reserve a seat; capacity is enforced again at confirmation time.
func (s *applicationService) Submit(ctx context.Context, projectID, userID int32, motivation, experience string) (*domain.Application, error) {
	project, err := s.projRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFound(err)
	}

	confirmed, err := s.memberRepo.CountForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	switch CheckAdmission(s.clock.Now(), project.ApplyBy, confirmed, project.SlotsTotal) {
	case RejectDeadline:
		return nil, ErrDeadlineExpired
	case RejectFull:
		return nil, ErrCapacityExceeded
	}

	if existing, err := s.appRepo.GetByProjectAndUser(ctx, projectID, userID); err == nil && existing != nil {
		return nil, ErrDuplicateApplication
	}

	app := &domain.Application{
		ProjectID:   projectID,
		UserID:      userID,
		Motivation:  motivation,
		Experience:  experience,
		Status:      domain.ApplicationStatusPending,
		SubmittedAt: s.clock.Now(),
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		// The unique constraint on (project_id, user_id) absorbs the race
		// between the duplicate check above and this insert.
		if isUniqueViolation(err) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	s.notifyOrg(ctx, project, userID, func(orgEmail, studentName string) error {
		return s.emailSvc.SendApplicationReceived(ctx, orgEmail, studentName, project.Title)
	})

	return app, nil
}

// Decide records an organisation's accept or reject verdict on a pending
// application. The transition is guarded by the persisted status, so a
// concurrent withdrawal makes this fail with ErrInvalidTransition instead
// of silently overwriting.
func (s *applicationService) Decide(ctx context.Context, applicationID, actingOrgID int32, action DecisionAction) (*domain.Application, error) {
	var to domain.ApplicationStatus
	switch action {
	case DecisionAccept:
		to = domain.ApplicationStatusAccepted
	case DecisionReject:
		to = domain.ApplicationStatusRejected
	default:
		return nil, fmt.Errorf("%w: unknown decision action %q", ErrValidation, action)
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFound(err)
	}
	project, err := s.projRepo.GetByID(ctx, app.ProjectID)
	if err != nil {
		return nil, notFound(err)
	}
	if project.OrgID != actingOrgID {
		return nil, ErrForbidden
	}

	now := s.clock.Now()
	ok, err := s.appRepo.UpdateStatusFrom(ctx, app.ID,
		[]domain.ApplicationStatus{domain.ApplicationStatusPending}, to, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.transitionConflict(ctx, app.ID)
	}
	app.Status = to
	app.DecidedAt = &now

	s.notifyStudent(ctx, app.UserID, project,
		fmt.Sprintf("Application %s", statusWord(to)),
		fmt.Sprintf("Your application for %q was %s.", project.Title, statusWord(to)),
		func(email string) error {
			return s.emailSvc.SendDecisionNotification(ctx, email, project.Title, to == domain.ApplicationStatusAccepted)
		})

	return app, nil
}

// Confirm turns an accepted application into a confirmed seat. The status
// flip, the capacity check, and the membership insert run in one
// transaction holding the project's row lock, so two students confirming
// into the last seat cannot both get in: the loser sees
// ErrCapacityExceeded and stays ACCEPTED.
func (s *applicationService) Confirm(ctx context.Context, applicationID, actingUserID int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFound(err)
	}
	if app.UserID != actingUserID {
		return nil, ErrForbidden
	}
	project, err := s.projRepo.GetByID(ctx, app.ProjectID)
	if err != nil {
		return nil, notFound(err)
	}

	now := s.clock.Now()
	outcome, err := s.appRepo.ConfirmWithCapacity(ctx, app.ID, app.ProjectID, app.UserID, project.SlotsTotal, now)
	if err != nil {
		return nil, err
	}
	switch outcome {
	case repository.ConfirmCapacityFull:
		return nil, ErrCapacityExceeded
	case repository.ConfirmNotAccepted:
		return nil, s.transitionConflict(ctx, app.ID)
	}
	app.Status = domain.ApplicationStatusConfirmed
	app.DecidedAt = &now

	s.notifyOrg(ctx, project, app.UserID, func(orgEmail, studentName string) error {
		return s.emailSvc.SendConfirmationReceived(ctx, orgEmail, studentName, project.Title)
	})

	return app, nil
}

// Withdraw lets the applicant back out of a pending or accepted
// application. An existing membership row is never removed here.
func (s *applicationService) Withdraw(ctx context.Context, applicationID, actingUserID int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFound(err)
	}
	if app.UserID != actingUserID {
		return nil, ErrForbidden
	}

	now := s.clock.Now()
	ok, err := s.appRepo.UpdateStatusFrom(ctx, app.ID,
		[]domain.ApplicationStatus{domain.ApplicationStatusPending, domain.ApplicationStatusAccepted},
		domain.ApplicationStatusWithdrawn, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.transitionConflict(ctx, app.ID)
	}
	app.Status = domain.ApplicationStatusWithdrawn
	app.DecidedAt = &now

	if project, err := s.projRepo.GetByID(ctx, app.ProjectID); err == nil {
		s.notifyOrg(ctx, project, app.UserID, func(orgEmail, studentName string) error {
			return s.emailSvc.SendWithdrawalNotice(ctx, orgEmail, studentName, project.Title)
		})
	}

	return app, nil
}

func (s *applicationService) GetApplication(ctx context.Context, applicationID, actingUserID int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFound(err)
	}
	if app.UserID != actingUserID {
		return nil, ErrForbidden
	}
	return app, nil
}

func (s *applicationService) ListByProject(ctx context.Context, projectID, actingOrgID int32) ([]domain.Application, error) {
	project, err := s.projRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFound(err)
	}
	if project.OrgID != actingOrgID {
		return nil, ErrForbidden
	}
	return s.appRepo.ListByProject(ctx, projectID)
}

func (s *applicationService) ListByUser(ctx context.Context, userID int32) ([]domain.Application, error) {
	return s.appRepo.ListByUser(ctx, userID)
}

// transitionConflict decorates a lost status-guard race with the status
// that won it, when that status is terminal.
func (s *applicationService) transitionConflict(ctx context.Context, id int32) error {
	fresh, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return ErrInvalidTransition
	}
	if fresh.Status.Terminal() {
		return fmt.Errorf("%w: application is already %s", ErrInvalidTransition, strings.ToLower(string(fresh.Status)))
	}
	return ErrInvalidTransition
}

// notifyStudent writes an in-app notification and sends an email, both
// best effort: a delivery failure never rolls back the transition.
func (s *applicationService) notifyStudent(ctx context.Context, userID int32, project *domain.Project, title, message string, send func(email string) error) {
	note := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"project_id": fmt.Sprintf("%d", project.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("failed to create notification", "user_id", userID, "error", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("failed to load user for email", "user_id", userID, "error", err)
		return
	}
	if err := send(user.Email); err != nil {
		logger.Warn("failed to send email", "user_id", userID, "error", err)
	}
}

func (s *applicationService) notifyOrg(ctx context.Context, project *domain.Project, studentID int32, send func(orgEmail, studentName string) error) {
	org, err := s.orgRepo.GetByID(ctx, project.OrgID)
	if err != nil {
		logger.Warn("failed to load organization for email", "org_id", project.OrgID, "error", err)
		return
	}
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		logger.Warn("failed to load student for email", "user_id", studentID, "error", err)
		return
	}
	if err := send(org.ContactEmail, student.Name); err != nil {
		logger.Warn("failed to send email", "org_id", org.ID, "error", err)
	}
}

func statusWord(s domain.ApplicationStatus) string {
	if s == domain.ApplicationStatusAccepted {
		return "accepted"
	}
	return "rejected"
}
