package output

import (
	"fmt"
	"io"

	"github.com/aryankumar/appwatch/internal/render"
	"github.com/aryankumar/appwatch/internal/util"
)

// Format represents the output format type
type Format string

const (
	// FormatTable outputs a kubectl-style summary table
	FormatTable Format = "table"
	// FormatJSON outputs the pass snapshot as JSON
	FormatJSON Format = "json"
	// FormatYAML outputs the pass snapshot as YAML
	FormatYAML Format = "yaml"
)

// ParseFormat validates an operator-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", util.ErrInvalidOutput, s)
	}
}

// Formatter writes the structured product of one refresh pass.
type Formatter interface {
	// FormatSnapshot outputs one whole pass to the writer
	FormatSnapshot(w io.Writer, snap render.Snapshot) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}
