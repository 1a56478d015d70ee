package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aryankumar/appwatch/internal/kube"
	"github.com/aryankumar/appwatch/internal/resolve"
	"github.com/aryankumar/appwatch/internal/status"
)

// plainPainter renders without escape sequences so tests can match text.
type plainPainter struct{}

func (plainPainter) Paint(_ status.Category, s string) string { return s }
func (plainPainter) Header(s string) string                   { return s }
func (plainPainter) App(s string) string                      { return s }
func (plainPainter) Notice(s string) string                   { return s }
func (plainPainter) Title(s string) string                    { return s }

func podObject(name string, phase string, restarts int) kube.Object {
	return kube.Object{
		Kind: kube.KindPod,
		Name: name,
		Columns: []string{
			"1/1", phase, fmt.Sprintf("%d", restarts), "5m", "10.0.0.1", "node-1",
		},
	}
}

func resultFor(app string, objects ...kube.Object) resolve.Result {
	return resolve.Result{App: app, Kind: kube.KindPod, Objects: objects}
}

func TestTableSection_Render(t *testing.T) {
	section := NewTableSection("Pods", kube.KindPod)
	var buf bytes.Buffer

	results := []resolve.Result{
		resultFor("app1", podObject("app1-web-abc12", "Running", 0)),
		resultFor("app2", podObject("app2-worker-def34", "CrashLoopBackOff", 7)),
	}

	secResult := section.Render(context.Background(), &buf, plainPainter{}, results)

	out := buf.String()
	for _, want := range []string{"NAME", "STATUS", "APP", "app1-web-abc12", "app2-worker-def34", "CrashLoopBackOff"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if len(secResult.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(secResult.Rows))
	}
	if got := secResult.Rows[1].Cells[1]; got.Category != status.Failed {
		t.Errorf("crash-looping pod classified %v, want Failed", got.Category)
	}
	if got := secResult.Rows[1].Cells[2]; got.Category != status.Pending {
		t.Errorf("restart count 7 classified %v, want Pending", got.Category)
	}
	if got := secResult.Rows[0].Cells[2]; got.Category != status.Healthy {
		t.Errorf("restart count 0 classified %v, want Healthy", got.Category)
	}

	wantFound := []string{"app1", "app2"}
	if len(secResult.FoundApps) != 2 || secResult.FoundApps[0] != wantFound[0] || secResult.FoundApps[1] != wantFound[1] {
		t.Errorf("FoundApps = %v, want %v", secResult.FoundApps, wantFound)
	}
}

func TestTableSection_EmptyEmitsSingleNotice(t *testing.T) {
	section := NewTableSection("Deployments", kube.KindDeployment)
	var buf bytes.Buffer

	results := []resolve.Result{
		resultFor("app1"),
		resultFor("app2"),
	}

	secResult := section.Render(context.Background(), &buf, plainPainter{}, results)

	out := strings.TrimRight(buf.String(), "\n")
	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("empty section wrote %d lines, want exactly 1:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "no deployments found for apps: app1, app2") {
		t.Errorf("notice = %q, want consolidated not-found line", lines[0])
	}
	if len(secResult.FoundApps) != 0 {
		t.Errorf("FoundApps = %v, want none", secResult.FoundApps)
	}
}

func TestTableSection_PartialMatchHasNoNotice(t *testing.T) {
	section := NewTableSection("Pods", kube.KindPod)
	var buf bytes.Buffer

	results := []resolve.Result{
		resultFor("app1", podObject("app1-web-abc12", "Running", 0)),
		resultFor("app2"),
	}

	section.Render(context.Background(), &buf, plainPainter{}, results)

	if strings.Contains(buf.String(), "no pods found") {
		t.Errorf("partially matched section should not carry a not-found notice:\n%s", buf.String())
	}
}

type stubFetcher struct {
	failFor map[string]bool
}

func (s *stubFetcher) PodHealth(_ context.Context, name string) (kube.PodHealth, error) {
	if s.failFor[name] {
		return kube.PodHealth{}, errors.New("connection reset")
	}
	return kube.PodHealth{Phase: "Running", Ready: "1/1", Restarts: 0}, nil
}

func TestPodHealthSection_OneFailureDegradesOneRow(t *testing.T) {
	fetcher := &stubFetcher{failFor: map[string]bool{"app1-web-bbb22": true}}
	section := NewPodHealthSection(fetcher)
	var buf bytes.Buffer

	results := []resolve.Result{
		resultFor("app1",
			podObject("app1-web-aaa11", "Running", 0),
			podObject("app1-web-bbb22", "Running", 0),
			podObject("app1-web-ccc33", "Running", 0),
		),
	}

	secResult := section.Render(context.Background(), &buf, plainPainter{}, results)

	if len(secResult.Rows) != 3 {
		t.Fatalf("got %d rows, want 3 (pass must not abort)", len(secResult.Rows))
	}

	var unavailableRows, healthyRows int
	for _, row := range secResult.Rows {
		if row.Cells[0].Text == unavailable {
			unavailableRows++
		} else if row.Cells[0].Text == "Running" {
			healthyRows++
		}
	}
	if unavailableRows != 1 || healthyRows != 2 {
		t.Errorf("got %d unavailable and %d healthy rows, want 1 and 2", unavailableRows, healthyRows)
	}
}

type stubTailer struct {
	lines []string
	err   error
	got   int64
}

func (s *stubTailer) TailLogs(_ context.Context, _ string, lines int64) ([]string, error) {
	s.got = lines
	return s.lines, s.err
}

func TestLogsSection_TailIsBounded(t *testing.T) {
	tailer := &stubTailer{lines: []string{"line one", "line two"}}
	section := NewLogsSection(tailer, 5)
	var buf bytes.Buffer

	results := []resolve.Result{
		resultFor("app1", podObject("app1-web-abc12", "Running", 0)),
	}

	secResult := section.Render(context.Background(), &buf, plainPainter{}, results)

	if tailer.got != 5 {
		t.Errorf("tailed %d lines, want the configured bound 5", tailer.got)
	}
	if len(secResult.Rows) != 2 {
		t.Errorf("got %d log rows, want 2", len(secResult.Rows))
	}
	if !strings.Contains(buf.String(), "line one") {
		t.Errorf("output missing log line:\n%s", buf.String())
	}
}

func TestLogsSection_FailureIsPerPod(t *testing.T) {
	tailer := &stubTailer{err: errors.New("container not running")}
	section := NewLogsSection(tailer, 5)
	var buf bytes.Buffer

	results := []resolve.Result{
		resultFor("app1", podObject("app1-web-abc12", "Running", 0)),
	}

	section.Render(context.Background(), &buf, plainPainter{}, results)

	if !strings.Contains(buf.String(), unavailable) {
		t.Errorf("failed tail should render %s:\n%s", unavailable, buf.String())
	}
}

func TestMissingApps(t *testing.T) {
	sections := []SectionResult{
		{Title: "Deployments", FoundApps: []string{"app1"}},
		{Title: "Pods", FoundApps: []string{"app1"}},
		{Title: "Services"},
	}

	missing := MissingApps([]string{"app1", "app2"}, sections)

	if len(missing) != 1 || missing[0] != "app2" {
		t.Errorf("MissingApps() = %v, want [app2]", missing)
	}
}

func TestMissingApps_AllFound(t *testing.T) {
	sections := []SectionResult{
		{Title: "Pods", FoundApps: []string{"app1", "app2"}},
	}

	if missing := MissingApps([]string{"app1", "app2"}, sections); len(missing) != 0 {
		t.Errorf("MissingApps() = %v, want none", missing)
	}
}
