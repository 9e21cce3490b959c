package jobs

import (
	"context"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/logger"
	"communityserve-backend/internal/schedule"
)

// SendSessionReminders emails every confirmed occupant whose project has a
// session tomorrow. Projection runs against the job's clock, so a frozen
// clock in tests exercises the same path.
func (jr *JobRunner) SendSessionReminders() {
	jr.runWithRecovery("SendSessionReminders", func() {
		ctx := context.Background()

		projects, err := jr.store.ProjectRepository.List(ctx)
		if err != nil {
			logger.Error("failed to list projects", "error", err)
			return
		}

		now := jr.clock.Now()
		tomorrow := now.AddDate(0, 0, 1).Format(schedule.DateLayout)

		for _, p := range projects {
			occurrences, err := schedule.FromProject(&p).Occurrences(p.ID, now, 2)
			if err != nil {
				logger.Error("failed to project sessions", "project_id", p.ID, "error", err)
				continue
			}

			var next *schedule.Occurrence
			for i := range occurrences {
				if occurrences[i].Date == tomorrow {
					next = &occurrences[i]
					break
				}
			}
			if next == nil {
				continue
			}

			members, err := jr.store.MembershipRepository.ListByProject(ctx, p.ID)
			if err != nil {
				logger.Error("failed to list members", "project_id", p.ID, "error", err)
				continue
			}

			for _, m := range members {
				user, err := jr.store.UserRepository.GetByID(ctx, m.UserID)
				if err != nil {
					logger.Error("failed to load member", "user_id", m.UserID, "error", err)
					continue
				}
				if err := jr.emailSvc.SendSessionReminder(ctx, user.Email, p.Title, next.Date, next.StartTime, next.EndTime); err != nil {
					logger.Error("failed to send session reminder", "user_id", m.UserID, "error", err)
				}
			}
		}
	})
}

// SendPendingApplicationDigest mails each organisation a count of
// applications still awaiting a decision.
func (jr *JobRunner) SendPendingApplicationDigest() {
	jr.runWithRecovery("SendPendingApplicationDigest", func() {
		ctx := context.Background()

		orgs, err := jr.store.OrganizationRepository.List(ctx)
		if err != nil {
			logger.Error("failed to list organizations", "error", err)
			return
		}

		for _, org := range orgs {
			projects, err := jr.store.ProjectRepository.ListByOrg(ctx, org.ID)
			if err != nil {
				logger.Error("failed to list projects", "org_id", org.ID, "error", err)
				continue
			}

			pending := 0
			for _, p := range projects {
				apps, err := jr.store.ApplicationRepository.ListByProject(ctx, p.ID)
				if err != nil {
					logger.Error("failed to list applications", "project_id", p.ID, "error", err)
					continue
				}
				for _, a := range apps {
					if a.Status == domain.ApplicationStatusPending {
						pending++
					}
				}
			}

			if pending == 0 {
				continue
			}
			if err := jr.emailSvc.SendPendingDigest(ctx, org.ContactEmail, org.Name, pending); err != nil {
				logger.Error("failed to send pending digest", "org_id", org.ID, "error", err)
			}
		}
	})
}
