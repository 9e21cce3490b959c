package http

import (
	"net/http"
	"strconv"
	"time"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/service"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	projectSvc service.ProjectService
	appSvc     service.ApplicationService
}

func NewProjectHandler(projectSvc service.ProjectService, appSvc service.ApplicationService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc, appSvc: appSvc}
}

type createProjectRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	SlotsTotal     int32    `json:"slots_total" validate:"gte=0"`
	RequiredHours  int32    `json:"required_hours" validate:"gte=0"`
	ApplyBy        string   `json:"apply_by" validate:"required"`
	RepeatInterval int32    `json:"repeat_interval" validate:"gte=0"`
	DaysOfWeek     []string `json:"days_of_week" validate:"required,min=1"`
	TimeStart      string   `json:"time_start" validate:"required"`
	TimeEnd        string   `json:"time_end" validate:"required"`
	StartDate      string   `json:"start_date" validate:"required"`
	EndDate        string   `json:"end_date" validate:"required"`
}

type projectResponse struct {
	Project  *domain.Project `json:"project"`
	Capacity domain.Capacity `json:"capacity"`
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())
	if claims.OrgID == nil {
		writeErrorMessage(w, http.StatusForbidden, "account is not linked to an organization")
		return
	}

	var req createProjectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	applyBy, err := time.Parse(time.RFC3339, req.ApplyBy)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "apply_by must be an RFC 3339 timestamp")
		return
	}

	project := &domain.Project{
		Title:          req.Title,
		Description:    req.Description,
		SlotsTotal:     req.SlotsTotal,
		RequiredHours:  req.RequiredHours,
		ApplyBy:        applyBy,
		RepeatInterval: req.RepeatInterval,
		RepeatUnit:     domain.RepeatUnitWeek,
		DaysOfWeek:     req.DaysOfWeek,
		TimeStart:      req.TimeStart,
		TimeEnd:        req.TimeEnd,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}

	if err := h.projectSvc.CreateProject(r.Context(), *claims.OrgID, project); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, capacity, err := h.projectSvc.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectResponse{Project: project, Capacity: capacity})
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectSvc.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())
	if claims.OrgID == nil {
		writeErrorMessage(w, http.StatusForbidden, "account is not linked to an organization")
		return
	}

	projects, err := h.projectSvc.ListByOrg(r.Context(), *claims.OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// ListApplications is the organisation's review view of a project.
func (h *ProjectHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())
	if claims.OrgID == nil {
		writeErrorMessage(w, http.StatusForbidden, "account is not linked to an organization")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}

	apps, err := h.appSvc.ListByProject(r.Context(), id, *claims.OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
