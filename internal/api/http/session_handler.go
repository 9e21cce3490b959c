package http

import (
	"net/http"
	"strconv"

	"communityserve-backend/internal/config"
	"communityserve-backend/internal/service"
)

type SessionHandler struct {
	sessionSvc service.SessionService
	cfg        config.SessionConfig
}

func NewSessionHandler(sessionSvc service.SessionService, cfg config.SessionConfig) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc, cfg: cfg}
}

// ProjectSessions lists the upcoming occurrences of one project.
func (h *SessionHandler) ProjectSessions(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}

	occurrences, err := h.sessionSvc.ProjectSessions(r.Context(), projectID, h.lookahead(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, occurrences)
}

// UpcomingSessions lists the acting student's sessions across all projects
// they hold a confirmed seat in.
func (h *SessionHandler) UpcomingSessions(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())

	occurrences, err := h.sessionSvc.UpcomingSessions(r.Context(), claims.UserID, h.lookahead(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, occurrences)
}

func (h *SessionHandler) lookahead(r *http.Request) int {
	days := h.cfg.DefaultLookaheadDays
	if raw := r.URL.Query().Get("lookahead_days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}
	if days > h.cfg.MaxLookaheadDays {
		days = h.cfg.MaxLookaheadDays
	}
	return days
}
