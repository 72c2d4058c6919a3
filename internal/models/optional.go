package models

import "encoding/json"

// Optional is a JSON field that distinguishes absent, explicit null, and a
// value. Plain pointers collapse absent and null into nil, which is not
// enough for partial updates where null clears a nullable column.
type Optional[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

// UnmarshalJSON is only invoked for keys present in the payload, so Present
// is true whenever it runs; Valid stays false for an explicit null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil for null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
