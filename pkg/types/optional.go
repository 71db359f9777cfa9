package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Optional marks whether a JSON field was present in a partial update.
// Absent: Set=false. Present as null: Set=true, Value=nil.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a set Optional holding no value.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked when the key is present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
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

// Amount is a tri-state money input. Forms send amounts either as JSON numbers
// or as strings; an empty or non-numeric string means "no value" (null), never zero.
type Amount struct {
	Set   bool
	Value *float64
}

// UnmarshalJSON accepts null, numbers and strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Set = true
	a.Value = nil

	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		a.Value = ParseAmount(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		// booleans, objects and the like are treated as "no value"
		return nil
	}
	a.Value = &f
	return nil
}

// ParseAmount converts user input into an amount; empty or non-numeric input yields nil.
func ParseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
