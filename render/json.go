package render

import (
	"encoding/json"
	"io"

	"babiprep/story"
)

// JSONRenderer writes parsed examples as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the examples as a JSON array.
func (r *JSONRenderer) Render(examples []story.FlatExample) error {
	return json.NewEncoder(r.W).Encode(examples)
}
