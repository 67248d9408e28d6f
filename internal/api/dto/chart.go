package dto

import "launch-dashboard-service/internal/charts"

type SelectionResponse struct {
	Site         string  `json:"site"`
	MinPayloadKg float64 `json:"min_payload_kg"`
	MaxPayloadKg float64 `json:"max_payload_kg"`
}

type FigureResponse struct {
	ID     string        `json:"id"`
	SVGURL string        `json:"svg_url"`
	Figure charts.Figure `json:"figure"`
}

// UpdateResponse carries only the figures whose inputs changed.
type UpdateResponse struct {
	Selection SelectionResponse `json:"selection"`
	Figures   []FigureResponse  `json:"figures"`
}
