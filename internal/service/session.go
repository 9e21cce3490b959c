package service

import (
	"context"
	"sort"

	"communityserve-backend/internal/repository"
	"communityserve-backend/internal/schedule"
)

type sessionService struct {
	projRepo   repository.ProjectRepository
	memberRepo repository.MembershipRepository
	clock      schedule.Clock
}

func NewSessionService(projRepo repository.ProjectRepository, memberRepo repository.MembershipRepository, clock schedule.Clock) SessionService {
	return &sessionService{projRepo: projRepo, memberRepo: memberRepo, clock: clock}
}

func (s *sessionService) ProjectSessions(ctx context.Context, projectID int32, lookaheadDays int) ([]schedule.Occurrence, error) {
	p, err := s.projRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFound(err)
	}
	return schedule.FromProject(p).Occurrences(p.ID, s.clock.Now(), lookaheadDays)
}

// UpcomingSessions merges the projected occurrences of every project the
// student holds a confirmed seat in, sorted by date then start time.
func (s *sessionService) UpcomingSessions(ctx context.Context, userID int32, lookaheadDays int) ([]schedule.Occurrence, error) {
	memberships, err := s.memberRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []schedule.Occurrence
	for _, m := range memberships {
		p, err := s.projRepo.GetByID(ctx, m.ProjectID)
		if err != nil {
			return nil, notFound(err)
		}
		occ, err := schedule.FromProject(p).Occurrences(p.ID, s.clock.Now(), lookaheadDays)
		if err != nil {
			return nil, err
		}
		out = append(out, occ...)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ProjectID < out[j].ProjectID
	})
	return out, nil
}
