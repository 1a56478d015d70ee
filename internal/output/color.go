package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/aryankumar/appwatch/internal/status"
)

// ColorScheme provides color functions for the dashboard's output elements.
// It satisfies render.Painter.
type ColorScheme struct {
	healthy func(format string, a ...interface{}) string
	pending func(format string, a ...interface{}) string
	failed  func(format string, a ...interface{}) string
	header  func(format string, a ...interface{}) string
	app     func(format string, a ...interface{}) string
	notice  func(format string, a ...interface{}) string
	title   func(format string, a ...interface{}) string

	// Disabled indicates if colors are disabled.
	Disabled bool
}

// NewColorScheme creates a new color scheme.
// Colors are automatically disabled for non-TTY outputs or when noColor is true.
func NewColorScheme(w io.Writer, noColor bool) *ColorScheme {
	useColor := !noColor && isTTY(w)

	if !useColor {
		plain := color.New().Sprintf
		return &ColorScheme{
			healthy:  plain,
			pending:  plain,
			failed:   plain,
			header:   plain,
			app:      plain,
			notice:   plain,
			title:    plain,
			Disabled: true,
		}
	}

	return &ColorScheme{
		healthy:  color.New(color.FgGreen).Sprintf,
		pending:  color.New(color.FgYellow).Sprintf,
		failed:   color.New(color.FgRed, color.Bold).Sprintf,
		header:   color.New(color.FgWhite, color.Bold).Sprintf,
		app:      color.New(color.FgCyan).Sprintf,
		notice:   color.New(color.FgYellow).Sprintf,
		title:    color.New(color.FgWhite, color.Bold, color.Underline).Sprintf,
		Disabled: false,
	}
}

// Paint colors a value according to its status category. Unknown renders
// neutrally.
func (cs *ColorScheme) Paint(cat status.Category, s string) string {
	switch cat {
	case status.Healthy:
		return cs.healthy("%s", s)
	case status.Pending:
		return cs.pending("%s", s)
	case status.Failed:
		return cs.failed("%s", s)
	default:
		return s
	}
}

// Header colors a table header cell.
func (cs *ColorScheme) Header(s string) string {
	return cs.header("%s", s)
}

// App colors an application provenance cell.
func (cs *ColorScheme) App(s string) string {
	return cs.app("%s", s)
}

// Notice colors an informational line.
func (cs *ColorScheme) Notice(s string) string {
	return cs.notice("%s", s)
}

// Title colors a section title.
func (cs *ColorScheme) Title(s string) string {
	return cs.title("%s", s)
}

// isTTY checks if the writer is a TTY
func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}
