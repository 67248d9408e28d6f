package handlers

import (
	"fmt"
	"math"
	"net/http"

	"go.uber.org/zap"

	"launch-dashboard-service/internal/api/dto"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/services"
)

// DefaultBandWidthKg is the payload band width used when band_kg is omitted.
const DefaultBandWidthKg = 1000

// SummaryHandler reports dataset statistics and success rates.
type SummaryHandler struct {
	Dataset *domain.Dataset
	Logger  *zap.Logger
}

func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Logger) {
		return
	}

	q := r.URL.Query()
	sel, err := parseSelection(q, h.Dataset)
	if err != nil {
		writeFailure(w, r, h.Logger, "summary", err)
		return
	}
	width, err := parseFloatParam(q, "band_kg", DefaultBandWidthKg)
	if err != nil {
		writeFailure(w, r, h.Logger, "summary", err)
		return
	}
	if !(width > 0) || math.IsInf(width, 0) {
		writeFailure(w, r, h.Logger, "summary",
			fmt.Errorf("band_kg=%v must be a positive finite number: %w", width, domain.ErrInvalidSelection))
		return
	}

	bySite, err := services.SuccessRates(h.Dataset, services.GroupBySite)
	if err != nil {
		writeFailure(w, r, h.Logger, "summary", err)
		return
	}
	byBooster, err := services.SuccessRates(h.Dataset, services.GroupByBooster)
	if err != nil {
		writeFailure(w, r, h.Logger, "summary", err)
		return
	}
	bands, err := services.PayloadBands(h.Dataset, sel, width)
	if err != nil {
		writeFailure(w, r, h.Logger, "summary", err)
		return
	}

	res := dto.SummaryResponse{
		Records:           h.Dataset.Len(),
		MinPayloadKg:      h.Dataset.MinPayload(),
		MaxPayloadKg:      h.Dataset.MaxPayload(),
		Sites:             h.Dataset.Sites(),
		BoosterCategories: h.Dataset.BoosterCategories(),
		SuccessBySite:     toRateResponses(bySite),
		SuccessByBooster:  toRateResponses(byBooster),
		Selection:         selectionResponse(sel),
		BandWidthKg:       width,
		PayloadBands:      make([]dto.PayloadBandResponse, 0, len(bands)),
	}
	for _, b := range bands {
		res.PayloadBands = append(res.PayloadBands, dto.PayloadBandResponse{
			LowerKg:   b.Lower,
			UpperKg:   b.Upper,
			Successes: b.Successes,
			Total:     b.Total,
			Rate:      b.Rate,
		})
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func toRateResponses(rates []services.SuccessRate) []dto.SuccessRateResponse {
	out := make([]dto.SuccessRateResponse, 0, len(rates))
	for _, sr := range rates {
		out = append(out, dto.SuccessRateResponse{
			Key:       sr.Key,
			Successes: sr.Successes,
			Total:     sr.Total,
			Rate:      sr.Rate,
		})
	}
	return out
}
