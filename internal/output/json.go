package output

import (
	"encoding/json"
	"io"

	"github.com/aryankumar/appwatch/internal/render"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// FormatSnapshot outputs one refresh pass as indented JSON
func (f *JSONFormatter) FormatSnapshot(w io.Writer, snap render.Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}
