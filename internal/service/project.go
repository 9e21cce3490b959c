package service

import (
	"context"
	"fmt"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/repository"
	"communityserve-backend/internal/schedule"
)

type projectService struct {
	projRepo   repository.ProjectRepository
	memberRepo repository.MembershipRepository
}

func NewProjectService(projRepo repository.ProjectRepository, memberRepo repository.MembershipRepository) ProjectService {
	return &projectService{projRepo: projRepo, memberRepo: memberRepo}
}

// CreateProject validates the recurrence rule and publishes the project.
// The recurrence shape is immutable after publication.
func (s *projectService) CreateProject(ctx context.Context, actingOrgID int32, p *domain.Project) error {
	if p.SlotsTotal < 0 {
		return fmt.Errorf("%w: slots total must not be negative", ErrValidation)
	}
	if p.RequiredHours < 0 {
		return fmt.Errorf("%w: required hours must not be negative", ErrValidation)
	}
	if err := schedule.FromProject(p).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	p.OrgID = actingOrgID
	if p.RepeatUnit == "" {
		p.RepeatUnit = domain.RepeatUnitWeek
	}
	return s.projRepo.Create(ctx, p)
}

func (s *projectService) GetProject(ctx context.Context, id int32) (*domain.Project, domain.Capacity, error) {
	p, err := s.projRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Capacity{}, notFound(err)
	}
	confirmed, err := s.memberRepo.CountForProject(ctx, id)
	if err != nil {
		return nil, domain.Capacity{}, err
	}
	return p, domain.Capacity{SlotsTotal: p.SlotsTotal, Confirmed: confirmed}, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projRepo.List(ctx)
}

func (s *projectService) ListByOrg(ctx context.Context, orgID int32) ([]domain.Project, error) {
	return s.projRepo.ListByOrg(ctx, orgID)
}
