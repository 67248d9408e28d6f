package charts

import (
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/services"
)

// Slice colors used when every site is shown.
var sitePalette = []string{"#00FFFF", "#008000", "#0000FF", "#FFFF00"}

// Default qualitative palette for outcome slices and booster categories.
var qualitativePalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// PieTitle returns the pie chart title for a site filter.
func PieTitle(site string) string {
	if site == domain.AllSites {
		return "Total Success Launches By Site"
	}
	return "Total Success Launches by " + site
}

// PieFigure maps success counts to a pie chart: one slice per key, sized by count.
func PieFigure(site string, counts services.SiteCounts) Figure {
	palette := qualitativePalette
	if site == domain.AllSites {
		palette = sitePalette
	}

	slices := make([]Slice, 0, len(counts))
	for i, c := range counts {
		slices = append(slices, Slice{
			Label: c.Key,
			Value: float64(c.Count),
			Color: palette[i%len(palette)],
		})
	}

	return Figure{
		Kind:   KindPie,
		Title:  PieTitle(site),
		Slices: slices,
	}
}
