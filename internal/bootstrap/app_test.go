package bootstrap_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"status-backend/internal/bootstrap"
	"status-backend/internal/employees"
	"status-backend/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "5000",
		Env:      "dev",
		LogLevel: "error",
		CORSMode: config.CORSAllowAll,
	}
}

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestBuildServesAllRoutes(t *testing.T) {
	repo := employees.NewMemoryRepo(
		employees.Employee{ID: 1, Name: "Alice", Domain: "Eng"},
		employees.Employee{ID: 2, Name: "Bob", Domain: "Sales"},
	)
	app, err := bootstrap.Build(testConfig(), bootstrap.WithEmployeesRepo(repo))
	require.NoError(t, err)

	home := serve(t, app.Router, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, home.Code)
	assert.JSONEq(t, `{"message": "Backend is running"}`, home.Body.String())
	assert.Equal(t, "*", home.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, home.Header().Get("X-Request-Id"))

	health := serve(t, app.Router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status": "ok"}`, health.Body.String())

	dbStatus := serve(t, app.Router, http.MethodGet, "/db-status")
	require.Equal(t, http.StatusOK, dbStatus.Code)
	assert.JSONEq(t,
		`{"database":"connected","count":2,"employees":[{"id":1,"name":"Alice","domain":"Eng"},{"id":2,"name":"Bob","domain":"Sales"}]}`,
		dbStatus.Body.String())

	metrics := serve(t, app.Router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "db_status_checks_total")
}

func TestBuildWithoutCORS(t *testing.T) {
	cfg := testConfig()
	cfg.CORSMode = config.CORSNone
	app, err := bootstrap.Build(cfg, bootstrap.WithEmployeesRepo(employees.NewMemoryRepo()))
	require.NoError(t, err)

	resp := serve(t, app.Router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRouteAndMethod(t *testing.T) {
	app, err := bootstrap.Build(testConfig(), bootstrap.WithEmployeesRepo(employees.NewMemoryRepo()))
	require.NoError(t, err)

	missing := serve(t, app.Router, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), `"not_found"`)

	wrongMethod := serve(t, app.Router, http.MethodPost, "/db-status")
	assert.Equal(t, http.StatusMethodNotAllowed, wrongMethod.Code)
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.CORSMode = "sometimes"
	_, err := bootstrap.Build(cfg)
	assert.Error(t, err)
}

func TestDBStatusUnreachableDatabase(t *testing.T) {
	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{
		Host:           "127.0.0.1",
		Port:           "1",
		Name:           "company",
		User:           "reader",
		Password:       "wrong",
		SSLMode:        "disable",
		ConnectTimeout: 2 * time.Second,
	}
	app, err := bootstrap.Build(cfg)
	require.NoError(t, err)

	resp := serve(t, app.Router, http.MethodGet, "/db-status")
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "error", body["database"])
	msg, _ := body["message"].(string)
	assert.NotEmpty(t, strings.TrimSpace(msg))
}

func TestDBStatusWithoutDatabaseSettingsReportsConnectionFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{Port: "5432", SSLMode: "disable", ConnectTimeout: 2 * time.Second}
	app, err := bootstrap.Build(cfg)
	require.NoError(t, err)

	resp := serve(t, app.Router, http.MethodGet, "/db-status")

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	assert.NotContains(t, msg, "cannot parse")
}
