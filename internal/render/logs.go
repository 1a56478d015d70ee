package render

import (
	"context"
	"fmt"
	"io"

	"github.com/aryankumar/appwatch/internal/kube"
	"github.com/aryankumar/appwatch/internal/resolve"
	"github.com/aryankumar/appwatch/internal/status"
)

// LogTailer is the secondary per-pod query the logs section performs.
type LogTailer interface {
	TailLogs(ctx context.Context, podName string, lines int64) ([]string, error)
}

// LogsSection tails a bounded number of log lines per resolved pod. Output
// is block-shaped rather than tabular: one header line per pod, then its
// log lines indented. A tail failure for one pod renders <unavailable> for
// that pod only.
type LogsSection struct {
	tailer LogTailer
	lines  int64
}

// NewLogsSection creates the logs section tailing the given number of lines
// per pod per pass.
func NewLogsSection(tailer LogTailer, lines int64) *LogsSection {
	if lines <= 0 {
		lines = 5
	}
	return &LogsSection{tailer: tailer, lines: lines}
}

func (s *LogsSection) Title() string   { return "Logs" }
func (s *LogsSection) Kind() kube.Kind { return kube.KindPod }

func (s *LogsSection) Render(ctx context.Context, w io.Writer, p Painter, results []resolve.Result) SectionResult {
	result := SectionResult{
		Title:     s.Title(),
		Columns:   []string{"NAME", "LINE", "APP"},
		FoundApps: foundApps(results),
	}

	for _, res := range results {
		for _, obj := range res.Objects {
			lines, err := s.tailer.TailLogs(ctx, obj.Name, s.lines)

			fmt.Fprintf(w, "%s %s\n", p.Header(obj.Name), p.App("("+res.App+")"))
			if err != nil {
				fmt.Fprintf(w, "  %s\n", p.Notice(unavailable))
				result.Rows = append(result.Rows, Row{
					Name:  obj.Name,
					App:   res.App,
					Cells: []Cell{{Text: unavailable, Category: status.Unknown}},
				})
				continue
			}
			if len(lines) == 0 {
				fmt.Fprintf(w, "  %s\n", p.Notice("<no output>"))
				continue
			}

			for _, line := range lines {
				fmt.Fprintf(w, "  %s\n", line)
				result.Rows = append(result.Rows, Row{
					Name:  obj.Name,
					App:   res.App,
					Cells: []Cell{{Text: line, Category: status.Unknown}},
				})
			}
		}
	}

	if len(result.Rows) == 0 && !anyFound(results) {
		writeEmptyNotice(w, p, "pods", results)
	}
	return result
}

func anyFound(results []resolve.Result) bool {
	for _, res := range results {
		if res.Found() {
			return true
		}
	}
	return false
}
