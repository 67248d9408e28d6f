package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"net/http"

	"go.uber.org/zap"

	"launch-dashboard-service/internal/api/web"
	"launch-dashboard-service/internal/dashboard"
	"launch-dashboard-service/internal/domain"
)

const (
	PageTitle  = "SpaceX Launch Records Dashboard"
	sliderMin  = 0
	sliderMax  = 10000
	sliderStep = 1000
)

var sliderMarks = []int{0, 2500, 5000, 7500, 10000}

type pageData struct {
	Title      string
	Sites      []string
	Selection  domain.Selection
	SliderMin  int
	SliderMax  int
	SliderStep int
	Marks      []int
	PieURL     string
	ScatterURL string
}

// PageHandler serves the dashboard page with the default selection.
type PageHandler struct {
	Dataset *domain.Dataset
	Logger  *zap.Logger
	tmpl    *template.Template
}

func NewPageHandler(ds *domain.Dataset, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("page handler: parse templates: %w", err)
	}
	return &PageHandler{Dataset: ds, Logger: logger, tmpl: tmpl}, nil
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Logger) {
		return
	}

	sel := domain.DefaultSelection(h.Dataset)
	sel.Payload = snapToSlider(sel.Payload)
	data := pageData{
		Title:      PageTitle,
		Sites:      domain.SiteOptions,
		Selection:  sel,
		SliderMin:  sliderMin,
		SliderMax:  sliderMax,
		SliderStep: sliderStep,
		Marks:      sliderMarks,
		PieURL:     svgURL(dashboard.ViewSuccessPie, sel),
		ScatterURL: svgURL(dashboard.ViewPayloadScatter, sel),
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		writeFailure(w, r, h.Logger, "render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Logger.Warn("write page failed", zap.Error(err))
	}
}

// snapToSlider widens r outward to slider steps so the handles, the label and
// the charts start from the same bounds. Widening keeps every record of r;
// an upper bound beyond the slider is left as is.
func snapToSlider(r domain.PayloadRange) domain.PayloadRange {
	lower := max(math.Floor(r.Lower/sliderStep)*sliderStep, sliderMin)
	upper := math.Ceil(r.Upper/sliderStep) * sliderStep
	if upper > sliderMax {
		upper = max(sliderMax, r.Upper)
	}
	return domain.PayloadRange{Lower: lower, Upper: upper}
}
