package service

import (
	"context"
	"database/sql"
	"errors"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/repository"
	"communityserve-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, orgRepo: orgRepo, tokens: tokens}
}

func (s *authService) SignupStudent(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	return s.signup(ctx, name, email, password, domain.RoleStudent, nil)
}

// SignupOrganization creates the organization record and its account user
// in one go; the account's org id carries the accept/reject right over the
// organization's projects.
func (s *authService) SignupOrganization(ctx context.Context, orgName, orgDescription, name, email, password string) (*domain.User, string, error) {
	org := &domain.Organization{
		Name:         orgName,
		Description:  orgDescription,
		ContactEmail: email,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, "", err
	}
	return s.signup(ctx, name, email, password, domain.RoleOrganization, &org.ID)
}

func (s *authService) signup(ctx context.Context, name, email, password string, role domain.Role, orgID *int32) (*domain.User, string, error) {
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		OrgID:        orgID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role), user.OrgID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role), user.OrgID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
