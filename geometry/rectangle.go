// Package geometry contains small value types.
package geometry

import (
	"bytes"
	"encoding/json"
)

// Rectangle is an immutable width by height value.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle returns rectangle with given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{width: width, height: height}
}

func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }

// Area is computed on every call.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

type rectangleJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MarshalJSON implements json.Marshaler.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectangleJSON{Width: r.width, Height: r.height})
}

// UnmarshalJSON implements json.Unmarshaler. Unknown fields are rejected.
func (r *Rectangle) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var v rectangleJSON
	if err := dec.Decode(&v); err != nil {
		return err
	}
	r.width, r.height = v.Width, v.Height
	return nil
}
