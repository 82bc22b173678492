// Package sqlite implements the store interfaces on an embedded SQLite
// database through github.com/mattn/go-sqlite3. It backs single-node
// deployments and the unit tests of the packages above it.
//
// Timestamps are stored as fixed-width UTC text so that ordering by the
// column is chronological.
package sqlite
