package handlers

import (
	"bytes"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"launch-dashboard-service/internal/api/dto"
	"launch-dashboard-service/internal/charts"
	"launch-dashboard-service/internal/dashboard"
	"launch-dashboard-service/internal/domain"
)

// SVG endpoints for each view; the page swaps image sources to these URLs.
const (
	PieSVGPath     = "/charts/success-pie.svg"
	ScatterSVGPath = "/charts/payload-scatter.svg"
)

// ChartHandler serves dashboard views as figure JSON and as SVG images.
type ChartHandler struct {
	Dashboard *dashboard.Dashboard
	Logger    *zap.Logger
}

// Update recomputes the views affected by the inputs listed in "changed"
// (all views when empty) for the selection in the query string.
func (h *ChartHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Logger) {
		return
	}

	q := r.URL.Query()
	sel, err := parseSelection(q, h.Dashboard.Dataset())
	if err != nil {
		writeFailure(w, r, h.Logger, "update", err)
		return
	}
	changed, err := dashboard.ParseInputs(q.Get("changed"))
	if err != nil {
		writeFailure(w, r, h.Logger, "update", err)
		return
	}

	views, err := h.Dashboard.Render(r.Context(), sel, changed...)
	if err != nil {
		writeFailure(w, r, h.Logger, "update", err)
		return
	}

	res := dto.UpdateResponse{
		Selection: selectionResponse(sel),
		Figures:   make([]dto.FigureResponse, 0, len(views)),
	}
	for _, v := range views {
		res.Figures = append(res.Figures, dto.FigureResponse{
			ID:     string(v.ID),
			SVGURL: svgURL(v.ID, sel),
			Figure: v.Figure,
		})
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func (h *ChartHandler) PieJSON(w http.ResponseWriter, r *http.Request) {
	fig, ok := h.pie(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, h.Logger, http.StatusOK, fig)
}

func (h *ChartHandler) ScatterJSON(w http.ResponseWriter, r *http.Request) {
	fig, ok := h.scatter(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, h.Logger, http.StatusOK, fig)
}

func (h *ChartHandler) PieSVG(w http.ResponseWriter, r *http.Request) {
	fig, ok := h.pie(w, r)
	if !ok {
		return
	}
	h.writeSVG(w, r, fig)
}

func (h *ChartHandler) ScatterSVG(w http.ResponseWriter, r *http.Request) {
	fig, ok := h.scatter(w, r)
	if !ok {
		return
	}
	h.writeSVG(w, r, fig)
}

func (h *ChartHandler) pie(w http.ResponseWriter, r *http.Request) (charts.Figure, bool) {
	if !allowGet(w, r, h.Logger) {
		return charts.Figure{}, false
	}

	site := r.URL.Query().Get("site")
	if site == "" {
		site = domain.AllSites
	}

	fig, err := h.Dashboard.Pie(r.Context(), site)
	if err != nil {
		writeFailure(w, r, h.Logger, "pie", err)
		return charts.Figure{}, false
	}
	return fig, true
}

func (h *ChartHandler) scatter(w http.ResponseWriter, r *http.Request) (charts.Figure, bool) {
	if !allowGet(w, r, h.Logger) {
		return charts.Figure{}, false
	}

	sel, err := parseSelection(r.URL.Query(), h.Dashboard.Dataset())
	if err != nil {
		writeFailure(w, r, h.Logger, "scatter", err)
		return charts.Figure{}, false
	}

	fig, err := h.Dashboard.Scatter(r.Context(), sel)
	if err != nil {
		writeFailure(w, r, h.Logger, "scatter", err)
		return charts.Figure{}, false
	}
	return fig, true
}

// writeSVG renders into a buffer first so a render failure can still become a 500.
func (h *ChartHandler) writeSVG(w http.ResponseWriter, r *http.Request, fig charts.Figure) {
	var buf bytes.Buffer
	if err := charts.RenderSVG(&buf, fig, charts.DefaultWidth, charts.DefaultHeight); err != nil {
		writeFailure(w, r, h.Logger, "render svg", err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Logger.Warn("write svg failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func svgURL(id dashboard.ViewID, sel domain.Selection) string {
	switch id {
	case dashboard.ViewSuccessPie:
		q := url.Values{}
		q.Set("site", sel.Site)
		return PieSVGPath + "?" + q.Encode()
	case dashboard.ViewPayloadScatter:
		return ScatterSVGPath + "?" + selectionQuery(sel).Encode()
	}
	return ""
}

func selectionResponse(sel domain.Selection) dto.SelectionResponse {
	return dto.SelectionResponse{
		Site:         sel.Site,
		MinPayloadKg: sel.Payload.Lower,
		MaxPayloadKg: sel.Payload.Upper,
	}
}
