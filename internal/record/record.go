// Package record reads loosely shaped backend JSON objects.
//
// Backend payloads name the same logical field differently across versions, so
// every accessor takes an ordered alias list and returns the first usable value.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedRecord marks input that is not a JSON object (or list of objects).
var ErrMalformedRecord = errors.New("malformed record")

// Record is one decoded JSON object.
type Record map[string]any

// Decode parses data as a single JSON object.
func Decode(data []byte) (Record, error) {
	v, err := decodeAny(data)
	if err != nil {
		return nil, err
	}
	rec, ok := FromAny(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrMalformedRecord, kindOf(v))
	}
	return rec, nil
}

// DecodeList parses data as a JSON array. Elements that are not objects
// degrade to empty records so a single bad row never drops the whole list.
func DecodeList(data []byte) ([]Record, error) {
	v, err := decodeAny(data)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrMalformedRecord, kindOf(v))
	}
	return ListFromAny(items), nil
}

// DecodePayload parses data as either a JSON object or a JSON array, the two
// shapes analytics endpoints answer with.
func DecodePayload(data []byte) (any, error) {
	v, err := decodeAny(data)
	if err != nil {
		return nil, err
	}
	switch v.(type) {
	case map[string]any, []any:
		return v, nil
	}
	return nil, fmt.Errorf("%w: expected object or array, got %s", ErrMalformedRecord, kindOf(v))
}

// FromAny converts a decoded JSON value into a Record when it is an object.
func FromAny(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]any:
		return Record(m), m != nil
	}
	return nil, false
}

// ListFromAny converts decoded JSON array items into records.
func ListFromAny(items []any) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec, ok := FromAny(item)
		if !ok {
			rec = Record{}
		}
		out = append(out, rec)
	}
	return out
}

// Value returns the raw value under key when present and not null.
func (r Record) Value(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the first alias holding a non-blank string.
func (r Record) String(aliases ...string) (string, bool) {
	for _, key := range aliases {
		v, ok := r.Value(key)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

// ID returns the first alias holding a scalar identifier, rendered as a string.
// Numeric ids and string ids compare equal once rendered ("7" == 7).
func (r Record) ID(aliases ...string) (string, bool) {
	for _, key := range aliases {
		v, ok := r.Value(key)
		if !ok {
			continue
		}
		if s, ok := Scalar(v); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Int returns the first alias holding a finite number or numeric string.
func (r Record) Int(aliases ...string) (int, bool) {
	for _, key := range aliases {
		v, ok := r.Value(key)
		if !ok {
			continue
		}
		if f, ok := Number(v); ok {
			return int(math.Round(f)), true
		}
	}
	return 0, false
}

// Map returns the first alias holding a nested object.
func (r Record) Map(aliases ...string) (Record, bool) {
	for _, key := range aliases {
		v, ok := r.Value(key)
		if !ok {
			continue
		}
		if m, ok := FromAny(v); ok {
			return m, true
		}
	}
	return nil, false
}

// List returns the array under key, or nil.
func (r Record) List(key string) []any {
	v, ok := r.Value(key)
	if !ok {
		return nil
	}
	items, _ := v.([]any)
	return items
}

// Number coerces a JSON scalar into a finite float64.
func Number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Scalar renders strings, numbers and booleans as trimmed strings.
// Objects, arrays and null are not scalars.
func Scalar(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case bool:
		return strconv.FormatBool(s), true
	case json.Number:
		return s.String(), true
	case nil, map[string]any, Record, []any:
		return "", false
	}
	if f, ok := Number(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return v, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
