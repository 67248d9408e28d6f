package charts

import (
	"fmt"
	"html"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 450
)

// RenderSVG draws fig as an SVG document. Width or height <= 0 use the defaults.
// Empty figures still render: a titled placeholder for pies, bare axes for scatters.
func RenderSVG(w io.Writer, fig Figure, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	switch fig.Kind {
	case KindPie:
		return renderPie(w, fig, width, height)
	case KindScatter:
		return renderScatter(w, fig, width, height)
	}
	return fmt.Errorf("render svg: unknown figure kind %q", fig.Kind)
}

func renderPie(w io.Writer, fig Figure, width, height int) error {
	if fig.Empty() {
		return renderPlaceholder(w, fig.Title, width, height)
	}

	values := make([]chart.Value, 0, len(fig.Slices))
	for _, s := range fig.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%g)", s.Label, s.Value),
			Value: s.Value,
			Style: chart.Style{
				FillColor:   hexColor(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}

	pie := chart.PieChart{
		Title:  fig.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pie.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render pie %q: %w", fig.Title, err)
	}
	return nil
}

func renderScatter(w io.Writer, fig Figure, width, height int) error {
	xMin, xMax := 0.0, 10000.0
	if len(fig.XRange) == 2 && fig.XRange[1] > fig.XRange[0] {
		xMin, xMax = fig.XRange[0], fig.XRange[1]
	}

	series := make([]chart.Series, 0, len(fig.Series))
	for _, s := range fig.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    hexColor(s.Color),
			},
		})
	}

	empty := len(series) == 0
	if empty {
		// go-chart refuses to draw without a series; keep the axes with an invisible one.
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xMin, xMax},
			YValues: []float64{0, 0},
			Style:   chart.Hidden(),
		})
	}

	ch := chart.Chart{
		Title:      fig.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  fig.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  fig.YLabel,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	if !empty {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render scatter %q: %w", fig.Title, err)
	}
	return nil
}

func renderPlaceholder(w io.Writer, title string, width, height int) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="32" text-anchor="middle" font-family="sans-serif" font-size="18">%s</text>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#888888">No launches match the current selection</text>`+
			`</svg>`,
		width, height, html.EscapeString(title),
	)
	if err != nil {
		return fmt.Errorf("render placeholder %q: %w", title, err)
	}
	return nil
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}
