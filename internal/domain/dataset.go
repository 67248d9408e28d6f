package domain

import (
	"fmt"
	"math"
)

// Dataset is the immutable, ordered collection of launch records loaded at startup.
// It is safe for concurrent readers because nothing mutates it after NewDataset returns.
type Dataset struct {
	records    []LaunchRecord
	minPayload float64
	maxPayload float64
	sites      []string
	siteSet    map[string]struct{}
	categories []string
}

// NewDataset copies records into an immutable Dataset and precomputes payload bounds
// and the site / booster category sets (in first-occurrence order).
func NewDataset(records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		records:    make([]LaunchRecord, len(records)),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
		siteSet:    make(map[string]struct{}),
	}
	copy(ds.records, records)

	seenCategory := make(map[string]struct{})
	for i, r := range ds.records {
		if r.PayloadMassKg < 0 || !finite(r.PayloadMassKg) {
			return nil, fmt.Errorf("new dataset: record %d payload %v: %w", i+1, r.PayloadMassKg, ErrMalformedRecord)
		}
		if r.Outcome != OutcomeSuccess && r.Outcome != OutcomeFailure {
			return nil, fmt.Errorf("new dataset: record %d outcome %d: %w", i+1, r.Outcome, ErrMalformedRecord)
		}

		ds.minPayload = math.Min(ds.minPayload, r.PayloadMassKg)
		ds.maxPayload = math.Max(ds.maxPayload, r.PayloadMassKg)

		if _, ok := ds.siteSet[r.Site]; !ok {
			ds.siteSet[r.Site] = struct{}{}
			ds.sites = append(ds.sites, r.Site)
		}
		if _, ok := seenCategory[r.BoosterCategory]; !ok {
			seenCategory[r.BoosterCategory] = struct{}{}
			ds.categories = append(ds.categories, r.BoosterCategory)
		}
	}

	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Each calls fn for every record in dataset order.
func (d *Dataset) Each(fn func(r LaunchRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Records returns a copy of all records in dataset order.
func (d *Dataset) Records() []LaunchRecord {
	out := make([]LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Dataset) MinPayload() float64 { return d.minPayload }
func (d *Dataset) MaxPayload() float64 { return d.maxPayload }

// Sites returns the launch sites discovered in the data, in first-occurrence order.
func (d *Dataset) Sites() []string { return append([]string(nil), d.sites...) }

// BoosterCategories returns the booster categories discovered in the data, in first-occurrence order.
func (d *Dataset) BoosterCategories() []string { return append([]string(nil), d.categories...) }

func (d *Dataset) HasSite(site string) bool {
	_, ok := d.siteSet[site]
	return ok
}
