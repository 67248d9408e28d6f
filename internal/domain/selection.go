package domain

import (
	"fmt"
	"math"
)

// AllSites is the site filter value that disables per-site filtering.
const AllSites = "All sites"

// SiteOptions is the fixed option set offered by the site dropdown.
var SiteOptions = []string{AllSites, "CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}

// Inclusive payload mass bounds in kilograms.
type PayloadRange struct {
	Lower float64
	Upper float64
}

// Contains reports whether kg lies within the inclusive bounds.
func (p PayloadRange) Contains(kg float64) bool { return kg >= p.Lower && kg <= p.Upper }

// Represents the dashboard controls for one interaction.
// A Selection is a value: it is built per request and never stored.
type Selection struct {
	Site    string
	Payload PayloadRange
}

// DefaultSelection returns the initial control state: every site and the
// dataset's full payload span.
func DefaultSelection(ds *Dataset) Selection {
	return Selection{
		Site:    AllSites,
		Payload: PayloadRange{Lower: ds.MinPayload(), Upper: ds.MaxPayload()},
	}
}

// AllSites reports whether the selection spans every site.
func (s Selection) AllSites() bool { return s.Site == AllSites }

// ValidateSite checks the site filter against the dataset.
func ValidateSite(ds *Dataset, site string) error {
	if site == AllSites || ds.HasSite(site) {
		return nil
	}
	return fmt.Errorf("site %q is not present in the dataset: %w", site, ErrInvalidSelection)
}

// Validate checks the site filter and payload bounds against the dataset.
func (s Selection) Validate(ds *Dataset) error {
	if err := ValidateSite(ds, s.Site); err != nil {
		return err
	}
	if !finite(s.Payload.Lower) || !finite(s.Payload.Upper) {
		return fmt.Errorf(
			"payload range lower=%v upper=%v must be finite: %w",
			s.Payload.Lower, s.Payload.Upper, ErrInvalidSelection,
		)
	}
	if s.Payload.Lower > s.Payload.Upper {
		return fmt.Errorf(
			"payload range lower=%v exceeds upper=%v: %w",
			s.Payload.Lower, s.Payload.Upper, ErrInvalidSelection,
		)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
