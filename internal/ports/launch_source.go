package ports

import (
	"context"
	"launch-dashboard-service/internal/domain"
)

// Port: a boundary for reading launch records from a backing store.
// Implementations are read-only; they never mutate the source.
type LaunchSource interface {
	// Return every launch record in source order.
	LoadLaunches(ctx context.Context) ([]domain.LaunchRecord, error)
}
