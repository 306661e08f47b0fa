// Package jsonutil converts between typed values and their JSON text.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// Encode returns compact JSON text of v. Map keys are sorted, so equal values
// always produce identical text.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to encode %T: %w", v, err)
	}
	return string(data), nil
}

// EncodeIndent is like Encode but produces human readable multiline text.
func EncodeIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("unable to encode %T: %w", v, err)
	}
	return string(data), nil
}

// Decode parses text into new value of type T, so parsed data gets behavior
// of T. Comments and trailing commas are allowed, unknown fields are not.
// Types with custom UnmarshalJSON must reject unknown fields themselves.
func Decode[T any](text string) (*T, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON([]byte(text))))
	dec.DisallowUnknownFields()

	v := new(T)
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("unable to decode %T: %w", *v, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("unable to decode %T: unexpected data after value", *v)
	}
	return v, nil
}
