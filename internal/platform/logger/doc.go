// Package logger provides structured logging for the service.
//
// It builds on log/slog with a JSON handler and carries request-scoped
// loggers through context.Context so that every log line written while
// handling a request shares the same trace_id.
package logger
