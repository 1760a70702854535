package duckext

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/marcboeker/duckext/mapping"
)

// Value is a single DuckDB value. The caller must close it.
type Value struct {
	v mapping.Value
}

// NewVarcharValue returns a new VARCHAR value.
func NewVarcharValue(s string) *Value {
	return &Value{v: mapping.CreateVarchar(s)}
}

// NewInt64Value returns a new BIGINT value.
func NewInt64Value(i int64) *Value {
	return &Value{v: mapping.CreateInt64(i)}
}

// NewUUIDValue returns a new UUID value.
func NewUUIDValue(id uuid.UUID) *Value {
	upper := binary.BigEndian.Uint64(id[:8])
	lower := binary.BigEndian.Uint64(id[8:])
	return &Value{v: mapping.CreateUUID(mapping.NewUHugeInt(lower, upper))}
}

// Varchar returns the string representation of the value.
func (v *Value) Varchar() string {
	return mapping.GetVarchar(v.v)
}

// Int64 returns the value cast to BIGINT, or 0 if the cast fails.
func (v *Value) Int64() int64 {
	return mapping.GetInt64(v.v)
}

// Close releases the value. Closing a value twice is a no-op.
func (v *Value) Close() {
	if v == nil || v.v.Ptr == nil {
		return
	}
	mapping.DestroyValue(&v.v)
	v.v.Ptr = nil
}
