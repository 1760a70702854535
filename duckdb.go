// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package duckext provides helpers for building DuckDB extensions in Go.
// It constructs nested logical types, such as STRUCT and UNION, assembles scalar and
// table function registration records, and registers them with a database.
package duckext

import (
	"github.com/marcboeker/duckext/mapping"
)

// Database is an open DuckDB database.
type Database struct {
	db mapping.Database
}

// Open opens the database file at path. An empty path or ":memory:" opens an in-memory database.
// config may be nil. Open does not take ownership of config.
func Open(path string, config *Config) (*Database, error) {
	if config == nil {
		var err error
		if config, err = NewConfig(); err != nil {
			return nil, err
		}
		defer config.Close()
	}

	var db mapping.Database
	var errMsg string
	if mapping.OpenExt(path, &db, config.config, &errMsg) == mapping.StateError {
		return nil, getError(errOpen, duckdbError(errMsg))
	}
	return &Database{db: db}, nil
}

// Connect opens a new connection. The caller must close it.
func (db *Database) Connect() (*Connection, error) {
	var conn mapping.Connection
	if mapping.Connect(db.db, &conn) == mapping.StateError {
		return nil, getError(errConnect, nil)
	}
	return &Connection{conn: conn}, nil
}

// Close closes the database. Closing a database twice is a no-op.
func (db *Database) Close() error {
	if db == nil || db.db.Ptr == nil {
		return nil
	}
	mapping.Close(&db.db)
	db.db.Ptr = nil
	return nil
}
