package services

import (
	"fmt"

	"launch-dashboard-service/internal/domain"
)

// PayloadOutcome returns the records behind the scatter view: payload within
// the inclusive range and, unless the selection spans every site, launched
// from the selected site. Dataset order is preserved.
//
// The payload bound applies to specific sites too; the range slider is
// never silently ignored.
func PayloadOutcome(ds *domain.Dataset, sel domain.Selection) ([]domain.LaunchRecord, error) {
	if err := sel.Validate(ds); err != nil {
		return nil, fmt.Errorf("payload outcome: %w", err)
	}

	out := []domain.LaunchRecord{}
	ds.Each(func(r domain.LaunchRecord) {
		if !sel.Payload.Contains(r.PayloadMassKg) {
			return
		}
		if !sel.AllSites() && r.Site != sel.Site {
			return
		}
		out = append(out, r)
	})

	return out, nil
}
