// Package patch distinguishes "absent from the payload" from "present with
// null" in partial-update request bodies, which encoding/json alone cannot
// express with plain pointers.
package patch

import "encoding/json"

// Optional is a presence-tracked field. Set is true when the key appeared in
// the JSON payload at all; Value is nil when the key was present with null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Of builds a set Optional, mainly for tests.
func Of[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null builds a present-but-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
