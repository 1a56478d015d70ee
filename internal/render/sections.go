package render

import (
	"context"
	"io"

	"github.com/aryankumar/appwatch/internal/kube"
	"github.com/aryankumar/appwatch/internal/resolve"
)

// TableSection renders one resource kind as a plain table. Deployments,
// replica sets, pods, services, events, configmaps, and secrets all share
// this shape; only the column schema differs.
type TableSection struct {
	title string
	kind  kube.Kind
}

// NewTableSection creates a tabular section for a kind.
func NewTableSection(title string, kind kube.Kind) *TableSection {
	return &TableSection{title: title, kind: kind}
}

func (s *TableSection) Title() string   { return s.title }
func (s *TableSection) Kind() kube.Kind { return s.kind }

// Render writes the section table, or the consolidated not-found notice
// when no requested app resolved anything.
func (s *TableSection) Render(_ context.Context, w io.Writer, p Painter, results []resolve.Result) SectionResult {
	columns := kube.Columns(s.kind)
	result := SectionResult{
		Title:     s.title,
		Columns:   columnNames(columns),
		FoundApps: foundApps(results),
	}

	for _, res := range results {
		for _, obj := range res.Objects {
			row := Row{Name: obj.Name, App: res.App}
			for i, col := range columns {
				value := ""
				if i < len(obj.Columns) {
					value = obj.Columns[i]
				}
				row.Cells = append(row.Cells, classifyCell(col.Class, value))
			}
			result.Rows = append(result.Rows, row)
		}
	}

	if len(result.Rows) == 0 {
		writeEmptyNotice(w, p, s.title, results)
		return result
	}

	writeTable(w, p, columns, result.Rows)
	return result
}

func columnNames(columns []kube.Column) []string {
	names := make([]string, 0, len(columns)+2)
	names = append(names, "NAME")
	for _, col := range columns {
		names = append(names, col.Name)
	}
	return append(names, "APP")
}
