package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestOpenSQLite(t *testing.T) {
	conn, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var one int
	require.NoError(t, conn.Get(&one, "SELECT 1"))
	assert.Equal(t, 1, one)
	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("nope", "whatever")
	assert.Error(t, err)
}
