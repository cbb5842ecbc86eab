package status

import (
	"context"
	"errors"
	"time"

	"status-backend/internal/employees"
	"status-backend/internal/shared/metrics"
	"status-backend/internal/shared/telemetry"
)

// Values of the "database" field in a db-status envelope.
const (
	DatabaseConnected = "connected"
	DatabaseError     = "error"
)

// DatabaseReport is the outcome of one db-status probe: either the full
// employee list or the error that prevented reading it.
type DatabaseReport struct {
	Employees []employees.Employee
	Err       error
}

// OK reports whether the probe read the table.
func (r DatabaseReport) OK() bool {
	return r.Err == nil
}

// Service answers the liveness, health and db-status checks.
type Service struct {
	Repo employees.Repo
}

func NewService(repo employees.Repo) *Service {
	return &Service{Repo: repo}
}

// Home returns the liveness message.
func (s *Service) Home() HomeResponse {
	return HomeResponse{Message: "Backend is running"}
}

// Health returns the fixed health payload.
func (s *Service) Health() HealthResponse {
	return HealthResponse{Status: "ok"}
}

// CheckDatabase reads the whole employees table once.
func (s *Service) CheckDatabase(ctx context.Context) DatabaseReport {
	if s == nil || s.Repo == nil {
		return DatabaseReport{Err: errors.New("employees repository not configured")}
	}

	start := time.Now()
	list, err := s.Repo.ListAll(ctx)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		metrics.ObserveDBStatus(metrics.ResultError, 0, elapsed)
		telemetry.Error("db_status.failed", map[string]any{
			"error":       err,
			"duration_ms": elapsed * 1000,
		})
		return DatabaseReport{Err: err}
	}
	if list == nil {
		list = []employees.Employee{}
	}
	metrics.ObserveDBStatus(metrics.ResultConnected, len(list), elapsed)
	return DatabaseReport{Employees: list}
}
