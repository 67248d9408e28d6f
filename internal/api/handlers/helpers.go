package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
)

// writeJSON encodes v before writing the status, so an encode failure
// still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"internal server error"}` + "\n")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("write failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, msg string) {
	writeJSON(w, r, logger, status, map[string]string{"error": msg})
}

// writeFailure maps a dashboard error to a response: invalid selections are
// the client's fault, anything else is logged and hidden.
func writeFailure(w http.ResponseWriter, r *http.Request, logger *zap.Logger, op string, err error) {
	if errors.Is(err, domain.ErrInvalidSelection) {
		writeError(w, r, logger, http.StatusBadRequest, err.Error())
		return
	}

	logger.Error(op+" failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
	writeError(w, r, logger, http.StatusInternalServerError, "internal server error")
}

// allowGet rejects anything but GET (and HEAD) with 405.
func allowGet(w http.ResponseWriter, r *http.Request, logger *zap.Logger) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, logger, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// parseSelection reads site, min and max query parameters. Missing values fall
// back to the default selection; the result is not yet validated against ds.
func parseSelection(q url.Values, ds *domain.Dataset) (domain.Selection, error) {
	sel := domain.DefaultSelection(ds)

	if site := strings.TrimSpace(q.Get("site")); site != "" {
		sel.Site = site
	}

	var err error
	if sel.Payload.Lower, err = parseFloatParam(q, "min", sel.Payload.Lower); err != nil {
		return domain.Selection{}, err
	}
	if sel.Payload.Upper, err = parseFloatParam(q, "max", sel.Payload.Upper); err != nil {
		return domain.Selection{}, err
	}

	return sel, nil
}

func parseFloatParam(q url.Values, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a number: %w", key, raw, domain.ErrInvalidSelection)
	}
	return v, nil
}

func selectionQuery(sel domain.Selection) url.Values {
	q := url.Values{}
	q.Set("site", sel.Site)
	q.Set("min", strconv.FormatFloat(sel.Payload.Lower, 'f', -1, 64))
	q.Set("max", strconv.FormatFloat(sel.Payload.Upper, 'f', -1, 64))
	return q
}
