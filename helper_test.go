package duckext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testError(t *testing.T, actual error, contains ...string) {
	require.Error(t, actual)
	for _, msg := range contains {
		require.Contains(t, actual.Error(), msg)
	}
	levels := strings.Count(actual.Error(), duckextErrMsg+":")
	require.Equal(t, 1, levels)
}

func openTestConn(t *testing.T) (*Database, *Connection, func()) {
	db, err := Open("", nil)
	require.NoError(t, err)
	conn, err := db.Connect()
	require.NoError(t, err)
	return db, conn, func() {
		require.NoError(t, conn.Close())
		require.NoError(t, db.Close())
	}
}

func newTestType(t *testing.T, typ Type) *LogicalType {
	lt, err := NewLogicalType(typ)
	require.NoError(t, err)
	return lt
}
