package services

import (
	"fmt"

	"launch-dashboard-service/internal/domain"
)

// One row of a grouped count: the group key and the number of records in it.
type GroupCount struct {
	Key   string
	Count int
}

// Ordered mapping of group key to count. Order is the first occurrence of
// each key in the dataset, not sorted.
type SiteCounts []GroupCount

// Total returns the sum of all group counts.
func (c SiteCounts) Total() int {
	total := 0
	for _, g := range c {
		total += g.Count
	}
	return total
}

// Get returns the count for key and whether the key is present.
func (c SiteCounts) Get(key string) (int, bool) {
	for _, g := range c {
		if g.Key == key {
			return g.Count, true
		}
	}
	return 0, false
}

// SuccessCountBySite counts launches for the pie view.
//
// With AllSites it counts successful launches per site. With a specific site
// it counts that site's launches per outcome ("1" and "0"). A site absent from
// the dataset is rejected with domain.ErrInvalidSelection.
func SuccessCountBySite(ds *domain.Dataset, site string) (SiteCounts, error) {
	if err := domain.ValidateSite(ds, site); err != nil {
		return nil, fmt.Errorf("success count by site: %w", err)
	}

	var (
		keep  func(domain.LaunchRecord) bool
		group func(domain.LaunchRecord) string
	)
	if site == domain.AllSites {
		keep = domain.LaunchRecord.Succeeded
		group = func(r domain.LaunchRecord) string { return r.Site }
	} else {
		keep = func(r domain.LaunchRecord) bool { return r.Site == site }
		group = func(r domain.LaunchRecord) string { return r.Outcome.String() }
	}

	return countBy(ds, keep, group), nil
}

// countBy groups the records accepted by keep and counts rows per group,
// preserving first-occurrence order of the keys.
func countBy(ds *domain.Dataset, keep func(domain.LaunchRecord) bool, group func(domain.LaunchRecord) string) SiteCounts {
	out := SiteCounts{}
	pos := make(map[string]int)

	ds.Each(func(r domain.LaunchRecord) {
		if !keep(r) {
			return
		}
		k := group(r)
		i, ok := pos[k]
		if !ok {
			pos[k] = len(out)
			out = append(out, GroupCount{Key: k, Count: 1})
			return
		}
		out[i].Count++
	})

	return out
}
