package duckext

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/marcboeker/duckext/mapping"
)

func TestValue(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	t.Run("varchar", func(t *testing.T) {
		v := NewVarcharValue("hello")
		defer v.Close()
		require.Equal(t, "hello", v.Varchar())
	})

	t.Run("int64", func(t *testing.T) {
		v := NewInt64Value(-42)
		defer v.Close()
		require.Equal(t, int64(-42), v.Int64())
		require.Equal(t, "-42", v.Varchar())
	})

	t.Run("uuid", func(t *testing.T) {
		id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		v := NewUUIDValue(id)
		defer v.Close()
		require.Equal(t, id.String(), v.Varchar())
	})

	t.Run("close twice", func(t *testing.T) {
		v := NewInt64Value(1)
		v.Close()
		v.Close()
	})
}
