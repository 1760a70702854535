package duckext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcboeker/duckext/mapping"
)

func TestReplacementScan(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	db, conn, closeDB := openTestConn(t)
	defer closeDB()

	db.AddReplacementScan(func(tableName string) (string, []any, error) {
		switch tableName {
		case "any_table":
			return "range", []any{int64(100)}, nil
		case "numbers_csv":
			return "read_csv", []any{"missing.csv"}, nil
		case "bad_param":
			return "range", []any{1.5}, nil
		case "failing":
			return "", nil, errors.New("scan failed")
		}
		return "", nil, nil
	})

	count, err := conn.QueryInt64(`SELECT count(*) FROM any_table`)
	require.NoError(t, err)
	require.Equal(t, int64(100), count)

	sum, err := conn.QueryInt64(`SELECT sum(range) FROM any_table`)
	require.NoError(t, err)
	require.Equal(t, int64(4950), sum)

	err = conn.Exec(`SELECT * FROM numbers_csv`)
	testError(t, err, errQuery.Error(), "missing.csv")

	err = conn.Exec(`SELECT * FROM bad_param`)
	testError(t, err, errQuery.Error(), errReplacementScanParam.Error())

	err = conn.Exec(`SELECT * FROM failing`)
	testError(t, err, errQuery.Error(), "scan failed")

	err = conn.Exec(`SELECT * FROM unknown_table`)
	testError(t, err, errQuery.Error(), "unknown_table")
}
