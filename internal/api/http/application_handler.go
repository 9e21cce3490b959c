package http

import (
	"net/http"

	"communityserve-backend/internal/service"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

type submitRequest struct {
	Motivation string `json:"motivation" validate:"required"`
	Experience string `json:"experience"`
}

type decisionRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())

	projectID, err := pathID(r, "id")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req submitRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.appSvc.Submit(r.Context(), projectID, claims.UserID, req.Motivation, req.Experience)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())
	if claims.OrgID == nil {
		writeErrorMessage(w, http.StatusForbidden, "account is not linked to an organization")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid application id")
		return
	}

	var req decisionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.appSvc.Decide(r.Context(), id, *claims.OrgID, service.DecisionAction(req.Action))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.appSvc.Confirm(r.Context(), id, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.appSvc.Withdraw(r.Context(), id, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r.Context())

	apps, err := h.appSvc.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}
