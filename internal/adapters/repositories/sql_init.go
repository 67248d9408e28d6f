package repositories

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/db"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// InitSchema applies all pending migrations for the launches table.
func InitSchema(conn *sqlx.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	dialect, err := gooseDialect(conn.DriverName())
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("init schema: set dialect %s: %w", dialect, err)
	}
	if err := goose.Up(conn.DB, "migrations"); err != nil {
		return fmt.Errorf("init schema: apply migrations: %w", err)
	}

	return nil
}

func gooseDialect(driver string) (goose.Dialect, error) {
	switch driver {
	case db.DriverSQLite:
		return goose.DialectSQLite3, nil
	case db.DriverPostgres:
		return goose.DialectPostgres, nil
	}
	return "", fmt.Errorf("no migration dialect for driver %q", driver)
}

// ReplaceLaunches writes records into the launches table in one transaction,
// replacing whatever rows a previous import left behind.
func ReplaceLaunches(ctx context.Context, conn *sqlx.DB, records []domain.LaunchRecord) error {
	if conn == nil {
		return errors.New("replace launches: DB is nil")
	}
	if len(records) == 0 {
		return fmt.Errorf("replace launches: %w", domain.ErrEmptyDataset)
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace launches: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM launches;`); err != nil {
		return fmt.Errorf("replace launches: clear table: %w", err)
	}

	query := tx.Rebind(`
	INSERT INTO launches (
		id,
		launch_site,
		payload_mass_kg,
		class,
		booster_version_category
	)
	VALUES (?, ?, ?, ?, ?);
	`)
	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("replace launches: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, i+1, r.Site, r.PayloadMassKg, int(r.Outcome), r.BoosterCategory); err != nil {
			return fmt.Errorf("replace launches: insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace launches: commit tx: %w", err)
	}

	return nil
}
