package api

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"launch-dashboard-service/internal/api/handlers"
	"launch-dashboard-service/internal/dashboard"
	"launch-dashboard-service/internal/platform/obs"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete sources).
func NewRouter(d *dashboard.Dashboard, logger *zap.Logger, metrics *obs.Metrics) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	pageHandler, err := handlers.NewPageHandler(d.Dataset(), logger)
	if err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}
	chartHandler := &handlers.ChartHandler{Dashboard: d, Logger: logger}
	summaryHandler := &handlers.SummaryHandler{Dataset: d.Dataset(), Logger: logger}
	healthHandler := &handlers.HealthHandler{Logger: logger}

	mux.HandleFunc("/{$}", pageHandler.Index)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", metrics.Handler())

	mux.HandleFunc("/api/update", chartHandler.Update)
	mux.HandleFunc("/api/charts/success-pie", chartHandler.PieJSON)
	mux.HandleFunc("/api/charts/payload-scatter", chartHandler.ScatterJSON)
	mux.HandleFunc(handlers.PieSVGPath, chartHandler.PieSVG)
	mux.HandleFunc(handlers.ScatterSVGPath, chartHandler.ScatterSVG)
	mux.HandleFunc("/api/summary", summaryHandler.Summary)

	// The mux sets r.Pattern in place, so logging must sit directly outside it.
	return requestIDMiddleware(loggingMiddleware(logger, metrics, mux)), nil
}
