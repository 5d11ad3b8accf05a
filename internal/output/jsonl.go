package output

import (
	"encoding/json"
	"io"
)

// PrintJSONL writes each element of a decoded JSON array on its own line
// (JSON Lines). Any other value is written as a single line.
func PrintJSONL(w io.Writer, data any) error {
	jw := NewJSONLWriter(w)
	items, ok := data.([]any)
	if !ok {
		return jw.Write(data)
	}
	for _, item := range items {
		if err := jw.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// JSONLWriter streams individual JSON objects one per line.
type JSONLWriter struct {
	enc *json.Encoder
}

// NewJSONLWriter creates a JSONLWriter that writes to w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{enc: enc}
}

// Write encodes a single value as one JSON line.
func (jw *JSONLWriter) Write(v any) error {
	return jw.enc.Encode(v)
}
