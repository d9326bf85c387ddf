// Package wire provides dependency injection for the cadence application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/cadence/internal/adapters/notify"
	"github.com/example/cadence/internal/adapters/sqlite"
	"github.com/example/cadence/internal/adapters/templates"
	"github.com/example/cadence/internal/app"
	"github.com/example/cadence/internal/config"
	"github.com/example/cadence/internal/db"
	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/ports/secondary"
)

var (
	clientService     primary.ClientService
	projectService    primary.ProjectService
	milestoneService  primary.MilestoneService
	escalationService primary.EscalationService
	templateService   primary.TemplateService
	notifier          secondary.Notifier
	cfg               *config.Config
	once              sync.Once
)

// ClientService returns the singleton ClientService instance.
func ClientService() primary.ClientService {
	once.Do(initServices)
	return clientService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// MilestoneService returns the singleton MilestoneService instance.
func MilestoneService() primary.MilestoneService {
	once.Do(initServices)
	return milestoneService
}

// EscalationService returns the singleton EscalationService instance.
func EscalationService() primary.EscalationService {
	once.Do(initServices)
	return escalationService
}

// TemplateService returns the singleton TemplateService instance.
func TemplateService() primary.TemplateService {
	once.Do(initServices)
	return templateService
}

// Notifier returns the singleton escalation Notifier instance.
func Notifier() secondary.Notifier {
	once.Do(initServices)
	return notifier
}

// Config returns the loaded application configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	loaded, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	cfg = loaded

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) with the injected DB
	clientRepo := sqlite.NewClientRepository(database)
	projectRepo := sqlite.NewProjectRepository(database)
	milestoneRepo := sqlite.NewMilestoneRepository(database)
	infraRepo := sqlite.NewInfraTaskRepository(database)
	activityRepo := sqlite.NewActivityLogRepository(database)
	catalog := templates.NewCatalog(cfg.TemplatesDir)

	notifier = notify.NewLogNotifier(logrus.StandardLogger())

	// Create services (primary ports implementation)
	clientService = app.NewClientService(clientRepo)
	projectService = app.NewProjectService(clientRepo, projectRepo, infraRepo, activityRepo, catalog)
	milestoneService = app.NewMilestoneService(milestoneRepo, projectRepo, activityRepo, time.Now)
	escalationService = app.NewEscalationService(milestoneRepo, projectRepo, clientRepo, time.Now)
	templateService = app.NewTemplateService(catalog)
}
