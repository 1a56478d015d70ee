// Package status classifies raw Kubernetes status tokens into semantic
// categories used for color rendering.
//
// Classification is a pure, total function: any token, including empty or
// malformed input, maps to a category. Unmapped tokens degrade to Unknown
// rather than erroring, so a renderer can never fail on an unexpected
// status string coming back from the cluster.
package status

// Category is the semantic classification of a status token.
type Category int

const (
	// Unknown is the neutral category for unmapped or empty tokens.
	Unknown Category = iota

	// Healthy indicates the resource is running or available.
	Healthy

	// Pending indicates the resource is starting or in transition.
	Pending

	// Failed indicates the resource is in an error state.
	Failed
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Healthy:
		return "healthy"
	case Pending:
		return "pending"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// healthyTokens are states that indicate a resource is working as intended.
var healthyTokens = map[string]struct{}{
	"Running":   {},
	"Ready":     {},
	"True":      {},
	"Available": {},
}

// pendingTokens are transitional states.
var pendingTokens = map[string]struct{}{
	"Pending":           {},
	"ContainerCreating": {},
}

// failedTokens are error states.
var failedTokens = map[string]struct{}{
	"Failed":           {},
	"Error":            {},
	"CrashLoopBackOff": {},
	"ImagePullBackOff": {},
	"False":            {},
}

// Classify maps a raw status token to its semantic category.
// It never fails: tokens outside the known sets return Unknown.
func Classify(token string) Category {
	if _, ok := healthyTokens[token]; ok {
		return Healthy
	}
	if _, ok := pendingTokens[token]; ok {
		return Pending
	}
	if _, ok := failedTokens[token]; ok {
		return Failed
	}
	return Unknown
}

// ClassifyRestarts classifies a container restart count. Zero restarts is
// Healthy, any positive count is Pending (worth a look, not necessarily
// broken). Other values render neutrally.
func ClassifyRestarts(restarts int) Category {
	switch {
	case restarts == 0:
		return Healthy
	case restarts > 0:
		return Pending
	default:
		return Unknown
	}
}
