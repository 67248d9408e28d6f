package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// HealthHandler provides a minimal liveness check endpoint.
type HealthHandler struct {
	Logger *zap.Logger
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Logger) {
		return
	}

	res := map[string]string{"status": "ok"}
	writeJSON(w, r, h.Logger, http.StatusOK, res)
}
