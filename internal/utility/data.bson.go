package utility

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToMap converts a struct (or map) to a bson map through a BSON round trip.
// Fields tagged omitempty and left nil are absent from the result.
func ToMap(s any) (map[string]any, error) {
	if s == nil {
		return map[string]any{}, nil
	}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	var out map[string]any
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// FromMap decodes a bson map into T
func FromMap[T any](m map[string]any) (T, error) {
	var out T
	raw, err := bson.Marshal(m)
	if err != nil {
		return out, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return out, nil
}

// NormalizeJSONNumbers replaces json.Number values (from a UseNumber decoder) with int64 or
// float64, recursively through maps and slices, so they are stored as BSON numbers.
func NormalizeJSONNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, val := range t {
			t[k] = NormalizeJSONNumbers(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = NormalizeJSONNumbers(val)
		}
		return t
	default:
		return v
	}
}

// PlainValue converts decoded BSON containers to plain maps and slices, recursively.
// Free-form fields decode nested documents as primitive.D, which JSON renders as a key/value list.
func PlainValue(v any) any {
	switch t := v.(type) {
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = PlainValue(e.Value)
		}
		return out
	case primitive.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = PlainValue(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = PlainValue(val)
		}
		return out
	case primitive.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = PlainValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = PlainValue(val)
		}
		return out
	default:
		return v
	}
}
