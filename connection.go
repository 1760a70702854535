package duckext

import (
	"github.com/marcboeker/duckext/mapping"
)

// Connection is a connection to a Database.
type Connection struct {
	conn mapping.Connection
}

// RegisterScalarFunction adds f to the catalog. The catalog keeps its own reference to f's
// evaluation routine, so the caller may close f afterwards.
func (c *Connection) RegisterScalarFunction(f *ScalarFunction) error {
	if f.closed() {
		return getError(errAPI, errScalarFunctionClosed)
	}
	if mapping.RegisterScalarFunction(c.conn, f.function) == mapping.StateError {
		return getError(errAPI, errScalarFunctionRegister)
	}
	return nil
}

// RegisterTableFunction adds f to the catalog. The caller may close f afterwards.
func (c *Connection) RegisterTableFunction(f *TableFunction) error {
	if f.closed() {
		return getError(errAPI, errTableFunctionClosed)
	}
	if err := f.complete(); err != nil {
		return getError(errAPI, err)
	}
	if mapping.RegisterTableFunction(c.conn, f.function) == mapping.StateError {
		return getError(errAPI, errTableFunctionRegister)
	}
	return nil
}

// Exec runs query and discards its result.
func (c *Connection) Exec(query string) error {
	var res mapping.Result
	defer mapping.DestroyResult(&res)
	if mapping.Query(c.conn, query, &res) == mapping.StateError {
		return getError(errQuery, duckdbError(mapping.ResultError(&res)))
	}
	return nil
}

// QueryInt64 runs query and returns the first column of its first row as an int64.
func (c *Connection) QueryInt64(query string) (int64, error) {
	var v int64
	err := c.queryFirstRow(query, func(res *mapping.Result, _ DataChunk) {
		v = mapping.ValueInt64(res, 0, 0)
	})
	return v, err
}

// QueryString runs query and returns the first column of its first row, which must be a VARCHAR.
// A NULL value returns an empty string.
func (c *Connection) QueryString(query string) (string, error) {
	var v string
	err := c.queryFirstRow(query, func(_ *mapping.Result, chunk DataChunk) {
		vec := Vector{vec: mapping.DataChunkGetVector(chunk.chunk, 0)}
		if !vec.Validity().RowIsValid(0) {
			return
		}
		str := VectorData[mapping.StringT](vec, 1)[0]
		v = mapping.StringTData(&str)
	})
	return v, err
}

// LibraryVersion returns the version of the DuckDB library behind the connection.
func (c *Connection) LibraryVersion() (string, error) {
	return c.QueryString(`SELECT library_version FROM pragma_version()`)
}

// queryFirstRow runs query and calls read with the result and its first chunk,
// if the result has at least one row.
func (c *Connection) queryFirstRow(query string, read func(res *mapping.Result, chunk DataChunk)) error {
	var res mapping.Result
	defer mapping.DestroyResult(&res)
	if mapping.Query(c.conn, query, &res) == mapping.StateError {
		return getError(errQuery, duckdbError(mapping.ResultError(&res)))
	}
	if mapping.ResultChunkCount(res) == 0 {
		return getError(errQuery, errEmptyResult)
	}

	chunk := mapping.ResultGetChunk(res, 0)
	defer mapping.DestroyDataChunk(&chunk)
	if mapping.DataChunkGetSize(chunk) == 0 {
		return getError(errQuery, errEmptyResult)
	}
	read(&res, DataChunk{chunk: chunk})
	return nil
}

// Close closes the connection. Closing a connection twice is a no-op.
func (c *Connection) Close() error {
	if c == nil || c.conn.Ptr == nil {
		return nil
	}
	mapping.Disconnect(&c.conn)
	c.conn.Ptr = nil
	return nil
}
