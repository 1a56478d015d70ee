package status

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Category
	}{
		{name: "running pod", token: "Running", want: Healthy},
		{name: "ready condition", token: "Ready", want: Healthy},
		{name: "true condition", token: "True", want: Healthy},
		{name: "available deployment", token: "Available", want: Healthy},
		{name: "pending pod", token: "Pending", want: Pending},
		{name: "container creating", token: "ContainerCreating", want: Pending},
		{name: "failed pod", token: "Failed", want: Failed},
		{name: "error state", token: "Error", want: Failed},
		{name: "crash loop", token: "CrashLoopBackOff", want: Failed},
		{name: "image pull backoff", token: "ImagePullBackOff", want: Failed},
		{name: "false condition", token: "False", want: Failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.token); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

// TestClassify_Totality verifies that anything outside the known token sets
// degrades to Unknown instead of erroring.
func TestClassify_Totality(t *testing.T) {
	tokens := []string{
		"",
		"running",   // case-sensitive, lower case is not a known token
		"Completed",
		"Terminating",
		"Evicted",
		"0/1",
		"garbage-token-!@#$",
		"CrashLoopBackOff ", // trailing space
		"\n",
	}

	for _, token := range tokens {
		if got := Classify(token); got != Unknown {
			t.Errorf("Classify(%q) = %v, want Unknown", token, got)
		}
	}
}

func TestClassifyRestarts(t *testing.T) {
	tests := []struct {
		name     string
		restarts int
		want     Category
	}{
		{name: "zero restarts", restarts: 0, want: Healthy},
		{name: "single restart", restarts: 1, want: Pending},
		{name: "many restarts", restarts: 47, want: Pending},
		{name: "negative is neutral", restarts: -1, want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRestarts(tt.restarts); got != tt.want {
				t.Errorf("ClassifyRestarts(%d) = %v, want %v", tt.restarts, got, tt.want)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{Healthy, "healthy"},
		{Pending, "pending"},
		{Failed, "failed"},
		{Unknown, "unknown"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
