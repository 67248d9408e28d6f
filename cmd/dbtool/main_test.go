package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-dashboard-service/internal/adapters/repositories"
	"launch-dashboard-service/internal/platform/db"
)

const sampleCSV = `Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
1,CCAFS LC-40,0,0,F9 v1.0  B0003,v1.0
2,KSC LC-39A,1,2490,F9 FT B1031.1,FT
3,VAFB SLC-4E,0,9600,F9 B4 B1041.1,B4
`

func TestImportThenLoad(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "launches.csv")
	dbPath := filepath.Join(dir, "launches.db")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o600))

	run := func(args ...string) {
		t.Helper()
		cmd := newRootCmd()
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
	}

	run("migrate", "--target", "sqlite", "--dsn", dbPath)
	run("import", "--target", "sqlite", "--dsn", dbPath, "--csv", csvPath)
	// A second import replaces rows instead of appending.
	run("import", "--target", "sqlite", "--dsn", dbPath, "--csv", csvPath)

	conn, err := db.Open(db.DriverSQLite, dbPath)
	require.NoError(t, err)
	defer conn.Close()

	records, err := repositories.NewSQLLaunchRepository(conn).LoadLaunches(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "KSC LC-39A", records[1].Site)
	assert.Equal(t, 2490.0, records[1].PayloadMassKg)
}

func TestUnknownTarget(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--target", "oracle"})
	cmd.SetErr(new(discard))
	assert.Error(t, cmd.Execute())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
