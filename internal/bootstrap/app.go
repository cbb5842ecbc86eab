package bootstrap

import (
	"errors"

	"github.com/gin-gonic/gin"

	"status-backend/internal/employees"
	"status-backend/internal/shared/config"
	"status-backend/internal/shared/server"
	"status-backend/internal/shared/storage/db"
	"status-backend/internal/shared/telemetry"
	"status-backend/internal/status"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Connector     db.Connector
	EmployeesRepo employees.Repo
	StatusService *status.Service
	StatusHandler *status.Handler
}

// Option customizes Build, mostly for tests.
type Option func(*App)

// WithEmployeesRepo replaces the Postgres-backed repository.
func WithEmployeesRepo(repo employees.Repo) Option {
	return func(a *App) { a.EmployeesRepo = repo }
}

// Build prepares dependencies and wires routes. It never touches the
// database; connection problems surface on the first db-status request.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	telemetry.SetLevel(cfg.LogLevel)

	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}

	if app.EmployeesRepo == nil {
		app.Connector = db.NewPerRequest(cfg.Database)
		app.EmployeesRepo = &employees.PGRepo{Connector: app.Connector}
	}
	app.StatusService = status.NewService(app.EmployeesRepo)
	app.StatusHandler = status.NewHandler(app.StatusService)
	if app.StatusHandler == nil {
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   app.Config,
		Handlers: []server.RouteRegistrar{app.StatusHandler},
	})
	return app, nil
}
