package domain

import "strconv"

// Binary launch outcome as recorded in the dataset's class column.
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Return the outcome as its class column label ("0" or "1").
func (o Outcome) String() string { return strconv.Itoa(int(o)) }

// Represents a single rocket launch attempt and its outcome.
// A LaunchRecord is immutable for the process lifetime.
type LaunchRecord struct {
	Site            string
	PayloadMassKg   float64
	Outcome         Outcome
	BoosterCategory string
}

// Succeeded reports whether the launch landed in the success class.
func (r LaunchRecord) Succeeded() bool { return r.Outcome == OutcomeSuccess }
