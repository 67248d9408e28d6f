package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/ports"
)

var _ ports.LaunchSource = (*SQLLaunchRepository)(nil)

// SQL-backed implementation of the LaunchSource port (SQLite or Postgres).
type SQLLaunchRepository struct{ DB *sqlx.DB }

func NewSQLLaunchRepository(conn *sqlx.DB) *SQLLaunchRepository {
	return &SQLLaunchRepository{DB: conn}
}

type launchRow struct {
	Site            string  `db:"launch_site"`
	PayloadMassKg   float64 `db:"payload_mass_kg"`
	Class           int     `db:"class"`
	BoosterCategory string  `db:"booster_version_category"`
}

// Return all launches stored in the database, in import order.
func (s *SQLLaunchRepository) LoadLaunches(ctx context.Context) ([]domain.LaunchRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sql launch repository: DB is nil")
	}

	query := `
	SELECT
		launch_site,
		payload_mass_kg,
		class,
		booster_version_category
	FROM launches
	ORDER BY id;
	`
	var rows []launchRow
	if err := s.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load launches: query launches table: %w", err)
	}

	records := make([]domain.LaunchRecord, 0, len(rows))
	for i, row := range rows {
		if row.Class != int(domain.OutcomeSuccess) && row.Class != int(domain.OutcomeFailure) {
			return nil, fmt.Errorf("load launches: row %d class %d: %w", i+1, row.Class, domain.ErrMalformedRecord)
		}
		records = append(records, domain.LaunchRecord{
			Site:            row.Site,
			PayloadMassKg:   row.PayloadMassKg,
			Outcome:         domain.Outcome(row.Class),
			BoosterCategory: row.BoosterCategory,
		})
	}

	return records, nil
}
