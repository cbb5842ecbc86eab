package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDBStatusCountsByResult(t *testing.T) {
	beforeOK := testutil.ToFloat64(dbStatusChecksTotal.WithLabelValues(ResultConnected))
	beforeErr := testutil.ToFloat64(dbStatusChecksTotal.WithLabelValues(ResultError))

	ObserveDBStatus(ResultConnected, 2, 0.01)
	ObserveDBStatus(ResultError, 0, -1)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(dbStatusChecksTotal.WithLabelValues(ResultConnected)))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(dbStatusChecksTotal.WithLabelValues(ResultError)))
	assert.Equal(t, float64(2), testutil.ToFloat64(employeesReturned))
}

func TestHandlerExposesRegisteredSeries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ObserveRequest("/health", http.MethodGet, http.StatusOK, 0.001)
	ObserveDBStatus(ResultConnected, 1, 0.002)

	router := gin.New()
	router.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	for _, name := range []string{"http_requests_total", "db_status_checks_total", "db_status_duration_seconds"} {
		assert.True(t, strings.Contains(body, name), "missing %s", name)
	}
}
