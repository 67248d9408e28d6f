package services

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"launch-dashboard-service/internal/domain"
)

// Dimension a success rate is grouped by.
type GroupBy string

const (
	GroupBySite    GroupBy = "site"
	GroupByBooster GroupBy = "booster"
)

// Success tally for one group.
type SuccessRate struct {
	Key       string
	Successes int
	Total     int
	Rate      float64
}

// SuccessRates tallies successes per site or per booster category, in
// first-occurrence order.
func SuccessRates(ds *domain.Dataset, by GroupBy) ([]SuccessRate, error) {
	var key func(domain.LaunchRecord) string
	switch by {
	case GroupBySite:
		key = func(r domain.LaunchRecord) string { return r.Site }
	case GroupByBooster:
		key = func(r domain.LaunchRecord) string { return r.BoosterCategory }
	default:
		return nil, fmt.Errorf("success rates: unknown grouping %q", by)
	}

	out := []SuccessRate{}
	pos := make(map[string]int)
	ds.Each(func(r domain.LaunchRecord) {
		k := key(r)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, SuccessRate{Key: k})
		}
		out[i].Total++
		if r.Succeeded() {
			out[i].Successes++
		}
	})

	for i := range out {
		out[i].Rate = float64(out[i].Successes) / float64(out[i].Total)
	}
	return out, nil
}

// Success tally for the half-open payload band [Lower, Upper).
type PayloadBand struct {
	Lower     float64
	Upper     float64
	Successes int
	Total     int
	Rate      float64
}

// PayloadBands buckets the scatter subset for sel into fixed-width payload
// bands and reports the success rate of each non-empty band, ordered by payload.
// Cost is linear in the matching records regardless of width.
func PayloadBands(ds *domain.Dataset, sel domain.Selection, width float64) ([]PayloadBand, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("payload bands: width %v must be a positive finite number: %w", width, domain.ErrInvalidSelection)
	}

	records, err := PayloadOutcome(ds, sel)
	if err != nil {
		return nil, fmt.Errorf("payload bands: %w", err)
	}

	// Band indexes stay float64: payload/width can exceed the int range for tiny widths.
	byBand := make(map[float64]*PayloadBand)
	for _, r := range records {
		b := math.Floor(r.PayloadMassKg / width)
		band, ok := byBand[b]
		if !ok {
			band = &PayloadBand{Lower: b * width, Upper: (b + 1) * width}
			if math.IsInf(b, 0) || math.IsInf(band.Upper, 0) {
				return nil, fmt.Errorf("payload bands: width %v too small for payload %v: %w",
					width, r.PayloadMassKg, domain.ErrInvalidSelection)
			}
			byBand[b] = band
		}
		band.Total++
		if r.Succeeded() {
			band.Successes++
		}
	}

	out := make([]PayloadBand, 0, len(byBand))
	for _, b := range slices.Sorted(maps.Keys(byBand)) {
		band := byBand[b]
		band.Rate = float64(band.Successes) / float64(band.Total)
		out = append(out, *band)
	}
	return out, nil
}
