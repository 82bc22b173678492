// Package testdb provides utilities specifically for database testing.
//
// NewSQLiteDB hands out an isolated, migrated in-memory SQLite database and
// needs no external services. The PostgreSQL helpers are compiled only with
// the integration build tag and read the connection string from DATABASE_URL
// or TODO_TEST_DB_URL:
//
//	DATABASE_URL=postgres://... go test -tags=integration ./...
//
// WithTx runs a test body inside a transaction that is always rolled back,
// so integration tests can share one database without seeing each other's rows.
package testdb
