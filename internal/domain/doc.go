// Package domain contains the task entity and the rules for its lifecycle:
// how a task is created, how a partial update is applied to it and which
// field values are acceptable. It has no knowledge of HTTP or storage.
package domain
