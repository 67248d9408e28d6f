package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"launch-dashboard-service/internal/dashboard"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
)

func setupRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()

	ds, err := domain.NewDataset([]domain.LaunchRecord{
		{Site: "KSC LC-39A", PayloadMassKg: 2490, Outcome: domain.OutcomeSuccess, BoosterCategory: "FT"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 9600, Outcome: domain.OutcomeFailure, BoosterCategory: "B4"},
	})
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)
	metrics := obs.NewMetrics()

	router, err := NewRouter(dashboard.New(ds, logger, metrics), logger, metrics)
	require.NoError(t, err)
	return router, logs
}

func TestRouterRoutes(t *testing.T) {
	router, _ := setupRouter(t)

	cases := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/update", http.StatusOK},
		{"/api/charts/success-pie", http.StatusOK},
		{"/api/charts/payload-scatter?min=0&max=5000", http.StatusOK},
		{"/charts/success-pie.svg?site=KSC+LC-39A", http.StatusOK},
		{"/charts/payload-scatter.svg", http.StatusOK},
		{"/api/summary", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())
		})
	}
}

func TestRequestIDIsEchoedAndLogged(t *testing.T) {
	router, logs := setupRouter(t)

	t.Run("should mint an id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Len(t, rr.Header().Get(requestIDHeader), 36)
	})

	t.Run("should keep the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))

		entries := logs.FilterMessage("request").FilterField(zap.String("req_id", "abc-123")).All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "/health", fields["path"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
	})
}

func TestLoggingMiddlewareRecordsRouteMetrics(t *testing.T) {
	metrics := obs.NewMetrics()
	mux := http.NewServeMux()
	mux.HandleFunc("/thing/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := loggingMiddleware(zap.NewNop(), metrics, mux)

	for _, path := range []string{"/thing/1", "/thing/2", "/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()

	assert.Contains(t, body, `launch_dashboard_http_requests_total{route="/thing/{id}",status="418"} 2`)
	assert.Contains(t, body, `launch_dashboard_http_requests_total{route="unmatched",status="404"} 1`)
}
