// Package shared holds the HTTP plumbing used by handlers and middleware:
// JSON request decoding and validation, JSON and error responses, and the
// per-request trace ID.
package shared
