package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/aryankumar/appwatch/internal/render"
)

// TableFormatter summarizes a pass as a kubectl-style table: one row per
// section with its row count and the apps that had matches. The detailed
// per-section tables are the live display's job; this is the machine-free
// footer for single-pass runs.
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// FormatSnapshot outputs a summary table for one refresh pass
func (f *TableFormatter) FormatSnapshot(w io.Writer, snap render.Snapshot) error {
	colors := NewColorScheme(w, f.options.NoColor)

	table := f.createTable(w)

	headers := []string{"SECTION", "ROWS", "APPS"}
	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for _, sec := range snap.Sections {
		apps := strings.Join(sec.FoundApps, ",")
		if apps == "" {
			apps = "<none>"
		}
		table.Append([]string{
			sec.Title,
			fmt.Sprintf("%d", len(sec.Rows)),
			colors.App(apps),
		})
	}

	table.Render()

	if len(snap.Missing) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, colors.Notice(fmt.Sprintf("nothing found for apps: %s",
			strings.Join(snap.Missing, ", "))))
	}

	return nil
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	// kubectl-style configuration
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t") // Tab-separated like kubectl
	table.SetNoWhiteSpace(true)

	return table
}
