package domain

import (
	"bytes"
	"encoding/json"
)

// Optional holds a value that may or may not have been supplied by a caller.
// When used as a struct field decoded from JSON it separates three cases:
// the key was absent (Set is false), the key was null (Set and Null are true)
// and the key carried a value.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was supplied with a non-null value.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && !o.Null
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys
// present in the document, which is what marks the field as set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}
