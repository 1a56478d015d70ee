package render

import (
	"context"
	"fmt"
	"io"

	"github.com/aryankumar/appwatch/internal/kube"
	"github.com/aryankumar/appwatch/internal/resolve"
	"github.com/aryankumar/appwatch/internal/status"
)

// HealthFetcher is the secondary per-pod query the health section performs
// after the resolver has located candidate pods.
type HealthFetcher interface {
	PodHealth(ctx context.Context, name string) (kube.PodHealth, error)
}

// PodHealthSection re-queries each resolved pod for its phase, ready count,
// and restart count. A failed query for one pod degrades that pod's row to
// <unavailable>; the remaining pods still render.
type PodHealthSection struct {
	fetcher HealthFetcher
}

// NewPodHealthSection creates the pod health section.
func NewPodHealthSection(fetcher HealthFetcher) *PodHealthSection {
	return &PodHealthSection{fetcher: fetcher}
}

func (s *PodHealthSection) Title() string   { return "Pod Health" }
func (s *PodHealthSection) Kind() kube.Kind { return kube.KindPod }

var podHealthColumns = []kube.Column{
	{Name: "PHASE", Class: kube.ColumnStatus},
	{Name: "READY"},
	{Name: "RESTARTS", Class: kube.ColumnRestarts},
}

func (s *PodHealthSection) Render(ctx context.Context, w io.Writer, p Painter, results []resolve.Result) SectionResult {
	result := SectionResult{
		Title:     s.Title(),
		Columns:   columnNames(podHealthColumns),
		FoundApps: foundApps(results),
	}

	for _, res := range results {
		for _, obj := range res.Objects {
			row := Row{Name: obj.Name, App: res.App}

			health, err := s.fetcher.PodHealth(ctx, obj.Name)
			if err != nil {
				row.Cells = []Cell{
					{Text: unavailable, Category: status.Unknown},
					{Text: unavailable, Category: status.Unknown},
					{Text: unavailable, Category: status.Unknown},
				}
			} else {
				row.Cells = []Cell{
					{Text: health.Phase, Category: status.Classify(health.Phase)},
					{Text: health.Ready, Category: status.Unknown},
					{Text: fmt.Sprintf("%d", health.Restarts), Category: status.ClassifyRestarts(health.Restarts)},
				}
			}
			result.Rows = append(result.Rows, row)
		}
	}

	if len(result.Rows) == 0 {
		writeEmptyNotice(w, p, "pods", results)
		return result
	}

	writeTable(w, p, podHealthColumns, result.Rows)
	return result
}
