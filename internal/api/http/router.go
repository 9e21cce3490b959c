package http

import (
	"net/http"

	"communityserve-backend/internal/domain"
	"communityserve-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth         *AuthHandler
	Project      *ProjectHandler
	Application  *ApplicationHandler
	Session      *SessionHandler
	Notification *NotificationHandler
}

// NewRouter builds the full API surface. Everything under /api/v1 except
// the auth endpoints requires a valid Bearer token.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public endpoints
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup-organization", h.Auth.SignupOrganization).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	// Authenticated endpoints
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/projects", h.Project.List).Methods(http.MethodGet)
	authed.HandleFunc("/projects", requireRole(domain.RoleOrganization, h.Project.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/projects/{id:[0-9]+}", h.Project.Get).Methods(http.MethodGet)
	authed.HandleFunc("/projects/{id:[0-9]+}/sessions", h.Session.ProjectSessions).Methods(http.MethodGet)
	authed.HandleFunc("/projects/{id:[0-9]+}/applications", requireRole(domain.RoleOrganization, h.Project.ListApplications)).Methods(http.MethodGet)
	authed.HandleFunc("/projects/{id:[0-9]+}/applications", requireRole(domain.RoleStudent, h.Application.Submit)).Methods(http.MethodPost)

	authed.HandleFunc("/applications/{id:[0-9]+}/decision", requireRole(domain.RoleOrganization, h.Application.Decide)).Methods(http.MethodPost)
	authed.HandleFunc("/applications/{id:[0-9]+}/confirm", requireRole(domain.RoleStudent, h.Application.Confirm)).Methods(http.MethodPost)
	authed.HandleFunc("/applications/{id:[0-9]+}/withdraw", requireRole(domain.RoleStudent, h.Application.Withdraw)).Methods(http.MethodPost)

	authed.HandleFunc("/me/projects", requireRole(domain.RoleOrganization, h.Project.ListMine)).Methods(http.MethodGet)
	authed.HandleFunc("/me/applications", requireRole(domain.RoleStudent, h.Application.ListMine)).Methods(http.MethodGet)
	authed.HandleFunc("/me/sessions", requireRole(domain.RoleStudent, h.Session.UpcomingSessions)).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", h.Notification.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notification.MarkAsRead).Methods(http.MethodPost)

	return r
}
