// Package middleware contains the HTTP middleware shared by every route:
// per-request trace IDs with a context-carried logger, and CORS.
package middleware
