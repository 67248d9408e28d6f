package charts

// Kind of chart a Figure describes.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// One pie slice.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// One scatter point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Scatter points sharing a color (one booster category).
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Figure is a renderer-independent chart specification.
// Pie figures carry Slices; scatter figures carry Series and axis metadata.
type Figure struct {
	Kind   Kind      `json:"kind"`
	Title  string    `json:"title"`
	Slices []Slice   `json:"slices,omitempty"`
	Series []Series  `json:"series,omitempty"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	XRange []float64 `json:"x_range,omitempty"`
}

// Empty reports whether the figure has nothing to draw.
func (f Figure) Empty() bool {
	switch f.Kind {
	case KindPie:
		return len(f.Slices) == 0
	case KindScatter:
		for _, s := range f.Series {
			if len(s.Points) > 0 {
				return false
			}
		}
	}
	return true
}
