package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "communityserve-backend/internal/api/http"
	"communityserve-backend/internal/config"
	"communityserve-backend/internal/logger"
	"communityserve-backend/internal/repository/postgres"
	"communityserve-backend/internal/schedule"
	"communityserve-backend/internal/security"
	"communityserve-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CommunityServe Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	clock := schedule.System()

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	authSvc := service.NewAuthService(
		store.UserRepository,
		store.OrganizationRepository,
		tokenManager,
	)
	projectSvc := service.NewProjectService(
		store.ProjectRepository,
		store.MembershipRepository,
	)
	appSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.ProjectRepository,
		store.MembershipRepository,
		store.UserRepository,
		store.OrganizationRepository,
		store.NotificationRepository,
		emailSvc,
		clock,
	)
	sessionSvc := service.NewSessionService(
		store.ProjectRepository,
		store.MembershipRepository,
		clock,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP Handlers
	handlers := httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Project:      httpapi.NewProjectHandler(projectSvc, appSvc),
		Application:  httpapi.NewApplicationHandler(appSvc),
		Session:      httpapi.NewSessionHandler(sessionSvc, cfg.Sessions),
		Notification: httpapi.NewNotificationHandler(noteSvc),
	}

	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
