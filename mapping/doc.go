// Package mapping re-exports the parts of the DuckDB C API bindings that duckext calls.
// The platform files pick the pre-built bindings module for GOOS/GOARCH.
// The duckdb_use_lib and duckdb_use_static_lib tags link against a local DuckDB library instead.
package mapping
