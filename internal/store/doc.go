// Package store defines interfaces for data persistence operations.
// These interfaces keep the task service independent of the database
// technology behind them; internal/platform/postgres provides the
// PostgreSQL implementation.
package store
