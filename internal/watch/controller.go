// Package watch drives the dashboard's refresh loop: resolve everything,
// render every section, sleep, repeat until cancelled.
//
// The loop is single-threaded and synchronous. One pass re-resolves all
// applications from scratch, renders all sections in a fixed order, and only
// then sleeps; cancellation is checked at pass boundaries and during the
// sleep, never mid-render.
package watch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aryankumar/appwatch/internal/kube"
	"github.com/aryankumar/appwatch/internal/render"
	"github.com/aryankumar/appwatch/internal/resolve"
)

// State is the controller's position in its lifecycle.
type State int

const (
	// StateInitializing is the controller before its first pass
	StateInitializing State = iota

	// StateRendering is an in-progress refresh pass
	StateRendering

	// StateSleeping is the pause between passes
	StateSleeping

	// StateTerminated is the final state after cancellation
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRendering:
		return "rendering"
	case StateSleeping:
		return "sleeping"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// clearScreen moves the cursor home and wipes the display.
const clearScreen = "\033[H\033[2J"

// Resolver locates the objects belonging to an application.
type Resolver interface {
	Resolve(ctx context.Context, app string, kind kube.Kind) resolve.Result
}

// Options configures a controller.
type Options struct {
	// Namespace is displayed in the pass header
	Namespace string

	// Apps are the watched applications, in display order
	Apps []string

	// Interval is the sleep between passes
	Interval time.Duration

	// ClearScreen wipes the terminal before each pass. Single-pass runs
	// leave it off so output survives in scrollback.
	ClearScreen bool

	// Clock supplies pass timestamps; nil means time.Now
	Clock func() time.Time

	Logger *slog.Logger
}

// Controller orchestrates refresh passes over a fixed section order.
type Controller struct {
	resolver Resolver
	sections []render.Section
	painter  render.Painter
	out      io.Writer
	opts     Options

	state State
}

// New creates a controller. Sections render in the order given.
func New(resolver Resolver, sections []render.Section, painter render.Painter, out io.Writer, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Second
	}

	return &Controller{
		resolver: resolver,
		sections: sections,
		painter:  painter,
		out:      out,
		opts:     opts,
		state:    StateInitializing,
	}
}

// State returns the controller's current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Run drives the refresh loop until the context is cancelled, then prints a
// final message and returns nil. Cancellation is cooperative: an in-flight
// pass always completes before the loop notices.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.Pass(ctx)

		if ctx.Err() != nil {
			return c.terminate()
		}

		c.state = StateSleeping
		c.opts.Logger.Debug("pass complete, sleeping", "interval", c.opts.Interval)

		timer := time.NewTimer(c.opts.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return c.terminate()
		case <-timer.C:
		}
	}
}

// Pass runs one full refresh pass: resolve every (app, kind) pair, render
// every section, and write the whole display in a single Write so the
// terminal never shows a half-rendered pass. The returned snapshot backs
// machine-readable single-pass output.
func (c *Controller) Pass(ctx context.Context) render.Snapshot {
	c.state = StateRendering

	now := c.opts.Clock()
	snap := render.Snapshot{
		Timestamp: now.Format(time.RFC3339),
		Namespace: c.opts.Namespace,
		Apps:      c.opts.Apps,
	}

	var buf bytes.Buffer
	if c.opts.ClearScreen {
		buf.WriteString(clearScreen)
	}
	c.writeHeader(&buf, now)

	for _, section := range c.sections {
		result := c.renderSection(ctx, &buf, section)
		snap.Sections = append(snap.Sections, result)
	}

	snap.Missing = render.MissingApps(c.opts.Apps, snap.Sections)
	if len(snap.Missing) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, c.painter.Notice(fmt.Sprintf("nothing found for apps: %s",
			strings.Join(snap.Missing, ", "))))
	}

	c.out.Write(buf.Bytes())
	return snap
}

// renderSection resolves and renders one section. A panic anywhere in the
// section's data path is contained here: the section's partial output is
// discarded and replaced with a degraded notice, and later sections still
// render.
func (c *Controller) renderSection(ctx context.Context, w io.Writer, section render.Section) (result render.SectionResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.painter.Title(section.Title()))

	var sectionBuf bytes.Buffer

	defer func() {
		if r := recover(); r != nil {
			c.opts.Logger.Debug("section failed, rendering degraded",
				"section", section.Title(), "panic", r)
			result = render.SectionResult{Title: section.Title()}
			fmt.Fprintln(w, c.painter.Notice("  <section unavailable>"))
			return
		}
		w.Write(sectionBuf.Bytes())
	}()

	results := make([]resolve.Result, 0, len(c.opts.Apps))
	for _, app := range c.opts.Apps {
		results = append(results, c.resolver.Resolve(ctx, app, section.Kind()))
	}

	result = section.Render(ctx, &sectionBuf, c.painter, results)
	return result
}

func (c *Controller) writeHeader(w io.Writer, now time.Time) {
	fmt.Fprintln(w, c.painter.Title(fmt.Sprintf("appwatch  %s", now.Format("2006-01-02 15:04:05"))))
	fmt.Fprintf(w, "namespace: %s   interval: %s   apps: %s\n",
		c.opts.Namespace, c.opts.Interval, strings.Join(c.opts.Apps, ", "))
}

func (c *Controller) terminate() error {
	c.state = StateTerminated
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.painter.Notice("appwatch terminated"))
	return nil
}
