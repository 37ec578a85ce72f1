package render

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes reports as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the reports as a JSON array. Undefined indices are null.
func (r *JSONRenderer) Render(reports []Report) error {
	if reports == nil {
		reports = []Report{}
	}
	return json.NewEncoder(r.W).Encode(reports)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
