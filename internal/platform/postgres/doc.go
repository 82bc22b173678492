// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, mapping between domain entities and database records, and the
// translation of PostgreSQL error codes into store sentinels.
//
// The schema lives in the embedded migrations directory and is applied with
// goose through the internal/platform/migrate package.
package postgres
