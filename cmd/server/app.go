package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/josebarbozaDUOC/API-TASK/internal/api"
	apimiddleware "github.com/josebarbozaDUOC/API-TASK/internal/api/middleware"
	"github.com/josebarbozaDUOC/API-TASK/internal/api/shared"
	"github.com/josebarbozaDUOC/API-TASK/internal/config"
	"github.com/josebarbozaDUOC/API-TASK/internal/platform/logger"
	"github.com/josebarbozaDUOC/API-TASK/internal/service"
	"github.com/josebarbozaDUOC/API-TASK/internal/store"
	"github.com/josebarbozaDUOC/API-TASK/internal/store/factory"
)

// application holds the process-wide dependencies. They are constructed once
// at startup and injected downward; no component reaches for globals.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	taskStore   store.TaskStore
	taskService *service.TaskService
}

// newApplication loads configuration, sets up logging, selects the storage
// backend through the factory and wires the service layer. Any failure here
// (bad config, unknown repository type, unreachable database) is fatal.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment,
		"repository_type", cfg.Repository.Type)

	taskStore, err := factory.New(cfg, "", appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      appLogger,
		taskStore:   taskStore,
		taskService: service.NewTaskService(taskStore, appLogger),
	}, nil
}

// setupRouter creates the application router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.RequestLogger(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	taskHandler.RegisterRoutes(r)

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports liveness plus the configured backend, useful when
// checking which repository a deployment actually selected.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"status":     "ok",
		"repository": app.config.Repository.Type,
	})
}

// cleanup releases resources owned by the application.
func (app *application) cleanup() {
	if closer, ok := app.taskStore.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error("failed to close task store", "error", err)
		}
	}
}
