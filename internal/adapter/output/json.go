package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/chime/internal/audio"
)

// JSONFormatter formats sound info as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes info as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, info *audio.Info) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newRecord(info))
}
