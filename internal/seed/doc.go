// Package seed populates a fresh database with the default category catalog
// and a handful of sample tasks. Running it repeatedly is safe.
package seed
