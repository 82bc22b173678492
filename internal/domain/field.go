package domain

import (
	"bytes"
	"encoding/json"
)

// Field is an optional value that distinguishes "absent" from "explicitly
// null". A zero Field is absent. Present with a nil Value is an explicit null.
type Field[T any] struct {
	Present bool
	Value   *T
}

// Set returns a present Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: &v}
}

// Null returns a present Field holding no value.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

// FromPtr returns a present Field holding *v, or an explicit null for nil.
func FromPtr[T any](v *T) Field[T] {
	if v == nil {
		return Null[T]()
	}
	return Set(*v)
}

// IsNull reports whether the field was supplied as an explicit null.
func (f Field[T]) IsNull() bool {
	return f.Present && f.Value == nil
}

// Get returns the held value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	if f.Value == nil {
		var zero T
		return zero, false
	}
	return *f.Value, true
}

// MarshalJSON renders the held value, or null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// UnmarshalJSON marks the field present. encoding/json only calls it for keys
// that appear in the document, so omitted keys stay absent.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}
