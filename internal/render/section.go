// Package render turns resolved cluster objects into formatted, color-coded
// dashboard sections. Renderers never resolve anything themselves; they
// consume resolve.Result values handed to them by the refresh controller.
package render

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aryankumar/appwatch/internal/kube"
	"github.com/aryankumar/appwatch/internal/resolve"
	"github.com/aryankumar/appwatch/internal/status"
)

// Painter colors text for the terminal. The output package provides the
// real implementation; tests use a plain one.
type Painter interface {
	// Paint colors a value according to its status category.
	Paint(cat status.Category, s string) string

	// Header colors a table header cell.
	Header(s string) string

	// App colors an application provenance cell.
	App(s string) string

	// Notice colors an informational line (empty sections, degraded data).
	Notice(s string) string

	// Title colors a section title.
	Title(s string) string
}

// Cell is one formatted table cell plus its color classification.
type Cell struct {
	Text     string          `json:"text" yaml:"text"`
	Category status.Category `json:"-" yaml:"-"`
}

// Row is one structured output row: resource name, kind-specific cells, and
// the owning application.
type Row struct {
	Name  string `json:"name" yaml:"name"`
	Cells []Cell `json:"cells" yaml:"cells"`
	App   string `json:"app" yaml:"app"`
}

// SectionResult is what one section produced during a pass: the structured
// rows (also used for snapshot output) and which requested apps had
// anything at all.
type SectionResult struct {
	Title     string   `json:"title" yaml:"title"`
	Columns   []string `json:"columns" yaml:"columns"`
	Rows      []Row    `json:"rows,omitempty" yaml:"rows,omitempty"`
	FoundApps []string `json:"foundApps,omitempty" yaml:"foundApps,omitempty"`
}

// Section renders one dashboard block. Render writes human output to w and
// returns the structured result for aggregation and snapshots.
type Section interface {
	Title() string

	// Kind is the resource kind this section needs resolved.
	Kind() kube.Kind

	Render(ctx context.Context, w io.Writer, p Painter, results []resolve.Result) SectionResult
}

// unavailable marks a cell whose secondary query failed.
const unavailable = "<unavailable>"

// classifyCell builds a cell for a value according to its column class.
func classifyCell(class kube.ColumnClass, value string) Cell {
	switch class {
	case kube.ColumnStatus:
		return Cell{Text: value, Category: status.Classify(value)}
	case kube.ColumnRestarts:
		n, err := strconv.Atoi(value)
		if err != nil {
			return Cell{Text: value, Category: status.Unknown}
		}
		return Cell{Text: value, Category: status.ClassifyRestarts(n)}
	default:
		return Cell{Text: value, Category: status.Unknown}
	}
}

// writeTable prints rows kubectl-style through a tabwriter, with a NAME
// column first and a trailing APP provenance column.
func writeTable(w io.Writer, p Painter, columns []kube.Column, rows []Row) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	header := make([]string, 0, len(columns)+2)
	header = append(header, p.Header("NAME"))
	for _, col := range columns {
		header = append(header, p.Header(col.Name))
	}
	header = append(header, p.Header("APP"))
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		cells := make([]string, 0, len(row.Cells)+2)
		cells = append(cells, row.Name)
		for _, cell := range row.Cells {
			cells = append(cells, p.Paint(cell.Category, cell.Text))
		}
		cells = append(cells, p.App(row.App))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	tw.Flush()
}

// writeEmptyNotice emits the single consolidated line for a section where
// nothing was found for any requested application.
func writeEmptyNotice(w io.Writer, p Painter, title string, results []resolve.Result) {
	apps := make([]string, 0, len(results))
	for _, res := range results {
		apps = append(apps, res.App)
	}
	fmt.Fprintln(w, p.Notice(fmt.Sprintf("  no %s found for apps: %s",
		strings.ToLower(title), strings.Join(apps, ", "))))
}

// foundApps lists the apps that resolved at least one object, in input order.
func foundApps(results []resolve.Result) []string {
	var apps []string
	for _, res := range results {
		if res.Found() {
			apps = append(apps, res.App)
		}
	}
	return apps
}

// MissingApps returns, in input order, the requested apps for which no
// section found anything during a whole pass. The controller prints these
// once per pass instead of repeating a not-found line per section.
func MissingApps(requested []string, sections []SectionResult) []string {
	found := make(map[string]bool)
	for _, sec := range sections {
		for _, app := range sec.FoundApps {
			found[app] = true
		}
	}

	var missing []string
	for _, app := range requested {
		if !found[app] {
			missing = append(missing, app)
		}
	}
	return missing
}
