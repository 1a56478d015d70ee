package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aryankumar/appwatch/internal/render"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// FormatSnapshot outputs one refresh pass as YAML
func (f *YAMLFormatter) FormatSnapshot(w io.Writer, snap render.Snapshot) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(snap)
}
