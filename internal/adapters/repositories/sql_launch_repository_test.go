package repositories

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/db"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(conn))
	return conn
}

func sampleLaunches() []domain.LaunchRecord {
	return []domain.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 0, Outcome: domain.OutcomeFailure, BoosterCategory: "v1.0"},
		{Site: "KSC LC-39A", PayloadMassKg: 2490, Outcome: domain.OutcomeSuccess, BoosterCategory: "FT"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 9600, Outcome: domain.OutcomeSuccess, BoosterCategory: "B4"},
	}
}

func TestSQLLaunchRepository(t *testing.T) {
	t.Run("should return no rows before an import", func(t *testing.T) {
		conn := setupTestDB(t)

		got, err := NewSQLLaunchRepository(conn).LoadLaunches(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("should round trip imported launches in order", func(t *testing.T) {
		conn := setupTestDB(t)
		require.NoError(t, ReplaceLaunches(context.Background(), conn, sampleLaunches()))

		got, err := NewSQLLaunchRepository(conn).LoadLaunches(context.Background())
		require.NoError(t, err)

		if diff := cmp.Diff(sampleLaunches(), got); diff != "" {
			t.Fatalf("LoadLaunches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should replace rows from a previous import", func(t *testing.T) {
		conn := setupTestDB(t)
		ctx := context.Background()
		require.NoError(t, ReplaceLaunches(ctx, conn, sampleLaunches()))
		require.NoError(t, ReplaceLaunches(ctx, conn, sampleLaunches()[:1]))

		got, err := NewSQLLaunchRepository(conn).LoadLaunches(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("should reject an empty import", func(t *testing.T) {
		conn := setupTestDB(t)

		err := ReplaceLaunches(context.Background(), conn, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})

	t.Run("should apply migrations idempotently", func(t *testing.T) {
		conn := setupTestDB(t)
		assert.NoError(t, InitSchema(conn))
	})
}

func TestGooseDialect(t *testing.T) {
	_, err := gooseDialect("mysql")
	assert.Error(t, err)

	d, err := gooseDialect(db.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", string(d))
}
