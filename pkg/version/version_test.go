package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("expected non-empty version")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected go version %s, got %s", runtime.Version(), info.GoVersion)
	}
	wantPlatform := runtime.GOOS + "/" + runtime.GOARCH
	if info.Platform != wantPlatform {
		t.Errorf("expected platform %s, got %s", wantPlatform, info.Platform)
	}
}

func TestString(t *testing.T) {
	info := Get()
	s := info.String()

	expectedStrings := []string{
		"appwatch",
		"Version:",
		"Commit:",
		"Build Time:",
		"Go Version:",
		"Platform:",
	}

	for _, want := range expectedStrings {
		if !strings.Contains(s, want) {
			t.Errorf("expected version string to contain %q, got %q", want, s)
		}
	}
}

func TestJSON(t *testing.T) {
	info := Get()

	out, err := info.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Info
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Version != info.Version {
		t.Errorf("expected version %q, got %q", info.Version, decoded.Version)
	}
	if decoded.Platform != info.Platform {
		t.Errorf("expected platform %q, got %q", info.Platform, decoded.Platform)
	}
}
