package duckext

import (
	"strings"
	"unsafe"

	"github.com/marcboeker/duckext/mapping"
)

// Vector is a borrowed view of one column of a DataChunk.
type Vector struct {
	vec mapping.Vector
}

// ColumnType returns the vector's type. The caller must close it.
func (v Vector) ColumnType() *LogicalType {
	return &LogicalType{lt: mapping.VectorGetColumnType(v.vec)}
}

// Data returns a pointer to the vector's data.
func (v Vector) Data() unsafe.Pointer {
	return mapping.VectorGetData(v.vec)
}

// AssignString writes s to a VARCHAR or BLOB vector at row.
func (v Vector) AssignString(row int, s string) {
	mapping.VectorAssignStringElement(v.vec, mapping.IdxT(row), s)
}

// Validity returns the vector's validity mask.
// The mask is empty if all rows are valid and EnsureValidityWritable has not been called.
func (v Vector) Validity() ValidityMask {
	return ValidityMask{mask: mapping.VectorGetValidity(v.vec)}
}

// EnsureValidityWritable allocates the validity mask, if necessary, and returns it.
func (v Vector) EnsureValidityWritable() ValidityMask {
	mapping.VectorEnsureValidityWritable(v.vec)
	return v.Validity()
}

// VectorData returns the first n rows of a primitive vector as a slice backed by DuckDB's memory.
func VectorData[T any](v Vector, n int) []T {
	data := v.Data()
	if data == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(data), n)
}

// ValidityMask marks NULL rows of a Vector.
type ValidityMask struct {
	mask unsafe.Pointer
}

// IsEmpty returns true if no mask is allocated, i.e., if all rows are valid.
func (m ValidityMask) IsEmpty() bool {
	return m.mask == nil
}

// RowIsValid returns false if the row is NULL.
func (m ValidityMask) RowIsValid(row int) bool {
	if m.IsEmpty() {
		return true
	}
	return mapping.ValidityRowIsValid(m.mask, mapping.IdxT(row))
}

// SetRowValidity sets the validity of row. The mask must be writable.
func (m ValidityMask) SetRowValidity(row int, valid bool) {
	mapping.ValiditySetRowValidity(m.mask, mapping.IdxT(row), valid)
}

// SetRowValid marks row as valid. The mask must be writable.
func (m ValidityMask) SetRowValid(row int) {
	mapping.ValiditySetRowValid(m.mask, mapping.IdxT(row))
}

// SetRowInvalid marks row as NULL. The mask must be writable.
func (m ValidityMask) SetRowInvalid(row int) {
	mapping.ValiditySetRowInvalid(m.mask, mapping.IdxT(row))
}

// Rows renders the first n rows, "." for a valid row and "X" for a NULL row.
func (m ValidityMask) Rows(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if m.RowIsValid(i) {
			b.WriteByte('.')
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}

// String renders one vector's worth of rows, see Rows.
func (m ValidityMask) String() string {
	return m.Rows(GetDataChunkCapacity())
}
