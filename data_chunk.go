package duckext

import (
	"github.com/marcboeker/duckext/mapping"
)

// DataChunk is a horizontal slice of a table: one Vector per column, all of the same size.
// Chunks passed to callbacks are borrowed from DuckDB, and Close does nothing on them.
type DataChunk struct {
	chunk mapping.DataChunk
	owned bool
}

// NewDataChunk returns a new chunk with one column per type. The caller must close it.
// The types are not consumed.
func NewDataChunk(types []*LogicalType) (*DataChunk, error) {
	if len(types) == 0 {
		return nil, getError(errAPI, errNoMembers)
	}
	lts := make([]mapping.LogicalType, len(types))
	for i, t := range types {
		if t.isNil() {
			return nil, getError(errAPI, addIndexToError(errLogicalTypeIsNil, i))
		}
		lts[i] = t.lt
	}
	return &DataChunk{
		chunk: mapping.CreateDataChunk(lts),
		owned: true,
	}, nil
}

// GetDataChunkCapacity returns the capacity of a data chunk.
func GetDataChunkCapacity() int {
	return int(mapping.VectorSize())
}

// ColumnCount returns the number of columns.
func (chunk *DataChunk) ColumnCount() int {
	return int(mapping.DataChunkGetColumnCount(chunk.chunk))
}

// Size returns the current number of rows.
func (chunk *DataChunk) Size() int {
	return int(mapping.DataChunkGetSize(chunk.chunk))
}

// SetSize sets the number of rows. It cannot exceed GetDataChunkCapacity.
func (chunk *DataChunk) SetSize(size int) error {
	if size < 0 || size > GetDataChunkCapacity() {
		return getError(errAPI, errVectorSize)
	}
	mapping.DataChunkSetSize(chunk.chunk, mapping.IdxT(size))
	return nil
}

// Reset sets the size to zero and makes the validity masks writable again.
func (chunk *DataChunk) Reset() {
	mapping.DataChunkReset(chunk.chunk)
}

// Vector returns the column vector at index i.
func (chunk *DataChunk) Vector(i int) (Vector, error) {
	if i < 0 || i >= chunk.ColumnCount() {
		return Vector{}, getError(errAPI, addIndexToError(errColumnIndex, i))
	}
	return Vector{vec: mapping.DataChunkGetVector(chunk.chunk, mapping.IdxT(i))}, nil
}

// Close releases an owned chunk.
func (chunk *DataChunk) Close() {
	if !chunk.owned || chunk.chunk.Ptr == nil {
		return
	}
	mapping.DestroyDataChunk(&chunk.chunk)
	chunk.chunk.Ptr = nil
}
