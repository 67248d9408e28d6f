package dto

type SuccessRateResponse struct {
	Key       string  `json:"key"`
	Successes int     `json:"successes"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

type PayloadBandResponse struct {
	LowerKg   float64 `json:"lower_kg"`
	UpperKg   float64 `json:"upper_kg"`
	Successes int     `json:"successes"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

type SummaryResponse struct {
	Records           int                   `json:"records"`
	MinPayloadKg      float64               `json:"min_payload_kg"`
	MaxPayloadKg      float64               `json:"max_payload_kg"`
	Sites             []string              `json:"sites"`
	BoosterCategories []string              `json:"booster_categories"`
	SuccessBySite     []SuccessRateResponse `json:"success_by_site"`
	SuccessByBooster  []SuccessRateResponse `json:"success_by_booster"`
	Selection         SelectionResponse     `json:"selection"`
	BandWidthKg       float64               `json:"band_width_kg"`
	PayloadBands      []PayloadBandResponse `json:"payload_bands"`
}
