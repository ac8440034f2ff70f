// Package postgres provides the PostgreSQL implementation of the storage
// interfaces defined in internal/store, the mapping of PostgreSQL errors to
// store errors, and the embedded schema migrations applied with goose.
package postgres
