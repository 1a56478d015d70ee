package render

// Snapshot is the structured product of one full refresh pass. It backs the
// machine-readable output of single-pass mode; nothing in it survives into
// the next pass.
type Snapshot struct {
	Timestamp string          `json:"timestamp" yaml:"timestamp"`
	Namespace string          `json:"namespace" yaml:"namespace"`
	Apps      []string        `json:"apps" yaml:"apps"`
	Sections  []SectionResult `json:"sections" yaml:"sections"`
	Missing   []string        `json:"missingApps,omitempty" yaml:"missingApps,omitempty"`
}
