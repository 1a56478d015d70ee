// Package resolve locates the cluster objects belonging to an application.
//
// Label metadata in real clusters is inconsistent, so resolution runs in two
// tiers: a label-selector match first, then a name-prefix fallback. Query
// failures in either tier degrade to "nothing found" rather than
// propagating; the next refresh pass retries implicitly.
package resolve

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aryankumar/appwatch/internal/kube"
)

// Lister is the slice of the cluster client the resolver needs.
type Lister interface {
	ListByLabel(ctx context.Context, kind kube.Kind, app string) ([]kube.Object, error)
	ListAll(ctx context.Context, kind kube.Kind) ([]kube.Object, error)
}

// Result is the outcome of resolving one (application, kind) pair.
type Result struct {
	App     string        `json:"app" yaml:"app"`
	Kind    kube.Kind     `json:"kind" yaml:"kind"`
	Objects []kube.Object `json:"objects,omitempty" yaml:"objects,omitempty"`
}

// Found reports whether any object was resolved.
func (r Result) Found() bool {
	return len(r.Objects) > 0
}

// Resolver applies the two-tier lookup strategy.
type Resolver struct {
	lister Lister
	logger *slog.Logger
}

// New creates a resolver over the given lister.
func New(lister Lister, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{lister: lister, logger: logger}
}

// Resolve returns the objects of a kind that belong to an application.
// Tier 1 queries by the app label; tier 2 falls back to name-prefix
// matching and only runs when tier 1 yields nothing. Errors from either
// tier are swallowed: a failed query is indistinguishable from an empty
// one, so a transient API hiccup degrades a section instead of killing
// the pass.
func (r *Resolver) Resolve(ctx context.Context, app string, kind kube.Kind) Result {
	result := Result{App: app, Kind: kind}

	objects, err := r.lister.ListByLabel(ctx, kind, app)
	if err != nil {
		r.logger.Debug("label lookup failed, falling back to prefix match",
			"app", app, "kind", kind, "error", err)
		objects = nil
	}
	if len(objects) > 0 {
		result.Objects = objects
		return result
	}

	all, err := r.lister.ListAll(ctx, kind)
	if err != nil {
		r.logger.Debug("prefix fallback listing failed",
			"app", app, "kind", kind, "error", err)
		return result
	}

	for _, obj := range all {
		if MatchesApp(obj.Name, app) {
			result.Objects = append(result.Objects, obj)
		}
	}
	return result
}

// MatchesApp reports whether an object name plausibly belongs to an
// application, by exact match or by "<app>-" prefix. Prefix matches that
// end in two generated-looking segments are excluded: one trailing hash is
// the object's own generation level, a second marks a child resource (a
// ReplicaSet's pod showing up in a ReplicaSet listing, say).
//
// This is a deliberate heuristic. Application names that collide on a
// shared first segment, or that themselves end in hash-like tokens, can
// over- or under-match; that is an accepted limitation.
func MatchesApp(name, app string) bool {
	if name == app {
		return true
	}

	prefix := app + "-"
	if !strings.HasPrefix(name, prefix) {
		return false
	}

	return !hasChildSuffix(strings.TrimPrefix(name, prefix))
}

// hasChildSuffix reports whether the part of a name after the application
// prefix ends in two consecutive generated-looking segments.
func hasChildSuffix(rest string) bool {
	segments := strings.Split(rest, "-")
	if len(segments) < 2 {
		return false
	}
	return looksGenerated(segments[len(segments)-1]) &&
		looksGenerated(segments[len(segments)-2])
}

// looksGenerated reports whether a dash-separated segment resembles a
// cluster-generated suffix: all lowercase alphanumerics with at least one
// digit.
func looksGenerated(segment string) bool {
	if segment == "" {
		return false
	}

	hasDigit := false
	for _, r := range segment {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return hasDigit
}
