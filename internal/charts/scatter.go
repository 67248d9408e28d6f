package charts

import (
	"math"

	"launch-dashboard-service/internal/domain"
)

const (
	ScatterXLabel = "Payload Mass (kg)"
	ScatterYLabel = "class"
)

// ScatterTitle returns the scatter chart title for a site filter.
func ScatterTitle(site string) string {
	if site == domain.AllSites {
		return "Payload and Launch outcome for all Sites"
	}
	return "Payload and Launch outcome for " + site
}

// ScatterFigure maps the payload/outcome subset to a scatter chart: x is payload,
// y is outcome, one series per booster category.
//
// categories fixes the color of each booster category so colors stay stable
// as the selection changes; categories missing from it are appended in
// first-occurrence order.
func ScatterFigure(sel domain.Selection, records []domain.LaunchRecord, categories []string) Figure {
	order := make(map[string]int, len(categories))
	for _, c := range categories {
		if _, ok := order[c]; !ok {
			order[c] = len(order)
		}
	}

	byCategory := make(map[string]int)
	series := []Series{}
	for _, r := range records {
		i, ok := byCategory[r.BoosterCategory]
		if !ok {
			ci, known := order[r.BoosterCategory]
			if !known {
				ci = len(order)
				order[r.BoosterCategory] = ci
			}
			i = len(series)
			byCategory[r.BoosterCategory] = i
			series = append(series, Series{
				Name:  r.BoosterCategory,
				Color: qualitativePalette[ci%len(qualitativePalette)],
			})
		}
		series[i].Points = append(series[i].Points, Point{X: r.PayloadMassKg, Y: float64(r.Outcome)})
	}

	return Figure{
		Kind:   KindScatter,
		Title:  ScatterTitle(sel.Site),
		Series: series,
		XLabel: ScatterXLabel,
		YLabel: ScatterYLabel,
		XRange: paddedRange(sel.Payload),
	}
}

// paddedRange widens the payload bounds by 5% on each side (at least 100 kg)
// so boundary points are not drawn on the axis.
func paddedRange(p domain.PayloadRange) []float64 {
	pad := math.Max((p.Upper-p.Lower)*0.05, 100)
	return []float64{math.Max(p.Lower-pad, 0), p.Upper + pad}
}
