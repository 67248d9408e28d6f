package dashboard

import (
	"fmt"
	"strings"

	"launch-dashboard-service/internal/domain"
)

// Input is a dashboard control whose change triggers recomputation.
type Input string

const (
	InputSite    Input = "site"
	InputPayload Input = "payload"
)

// ViewID names a derived view; it doubles as the chart element id on the page.
type ViewID string

const (
	ViewSuccessPie     ViewID = "success-pie-chart"
	ViewPayloadScatter ViewID = "success-payload-scatter-chart"
)

// Graph maps each derived view to the inputs it depends on.
type Graph struct {
	order []ViewID
	deps  map[ViewID]map[Input]struct{}
}

func NewGraph() *Graph {
	return &Graph{deps: make(map[ViewID]map[Input]struct{})}
}

// DefaultGraph wires the two dashboard views: the pie depends on the site only,
// the scatter on both site and payload range.
func DefaultGraph() *Graph {
	g := NewGraph()
	g.Add(ViewSuccessPie, InputSite)
	g.Add(ViewPayloadScatter, InputSite, InputPayload)
	return g
}

// Add registers view with its input dependencies. Re-adding a view extends its set.
func (g *Graph) Add(view ViewID, inputs ...Input) {
	set, ok := g.deps[view]
	if !ok {
		set = make(map[Input]struct{}, len(inputs))
		g.deps[view] = set
		g.order = append(g.order, view)
	}
	for _, in := range inputs {
		set[in] = struct{}{}
	}
}

// Views returns every registered view in registration order.
func (g *Graph) Views() []ViewID { return append([]ViewID(nil), g.order...) }

// Affected returns the views depending on any changed input, in registration
// order. With no changed inputs (the initial render) every view is affected.
func (g *Graph) Affected(changed ...Input) []ViewID {
	if len(changed) == 0 {
		return g.Views()
	}

	out := []ViewID{}
	for _, v := range g.order {
		for _, in := range changed {
			if _, ok := g.deps[v][in]; ok {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// ParseInputs parses a comma-separated list of input names; blank means none.
func ParseInputs(s string) ([]Input, error) {
	var out []Input
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch in := Input(part); in {
		case InputSite, InputPayload:
			out = append(out, in)
		default:
			return nil, fmt.Errorf("unknown input %q: %w", part, domain.ErrInvalidSelection)
		}
	}
	return out, nil
}
