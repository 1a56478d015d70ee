package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aryankumar/appwatch/internal/util"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a file that doesn't exist so only defaults apply
	manager := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := manager.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Namespace != DefaultNamespace {
		t.Errorf("expected namespace %q, got %q", DefaultNamespace, cfg.Namespace)
	}
	if cfg.Interval != DefaultInterval {
		t.Errorf("expected interval %d, got %d", DefaultInterval, cfg.Interval)
	}
	if len(cfg.Apps) != 1 || cfg.Apps[0] != DefaultApp {
		t.Errorf("expected apps [%s], got %v", DefaultApp, cfg.Apps)
	}
	if cfg.Tail != DefaultTail {
		t.Errorf("expected tail %d, got %d", DefaultTail, cfg.Tail)
	}
	if cfg.Output != "table" {
		t.Errorf("expected output table, got %q", cfg.Output)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `namespace: production
interval: 30
apps:
  - frontend
  - backend
tail: 20
output: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	manager := NewManager(path)
	cfg, err := manager.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Namespace != "production" {
		t.Errorf("expected namespace production, got %q", cfg.Namespace)
	}
	if cfg.Interval != 30 {
		t.Errorf("expected interval 30, got %d", cfg.Interval)
	}
	if len(cfg.Apps) != 2 || cfg.Apps[0] != "frontend" || cfg.Apps[1] != "backend" {
		t.Errorf("expected apps [frontend backend], got %v", cfg.Apps)
	}
	if cfg.Tail != 20 {
		t.Errorf("expected tail 20, got %d", cfg.Tail)
	}
	if cfg.Output != "json" {
		t.Errorf("expected output json, got %q", cfg.Output)
	}
}

func TestLoadPartialFile(t *testing.T) {
	// Unset fields still get defaults
	content := `namespace: staging
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	manager := NewManager(path)
	cfg, err := manager.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Namespace != "staging" {
		t.Errorf("expected namespace staging, got %q", cfg.Namespace)
	}
	if cfg.Interval != DefaultInterval {
		t.Errorf("expected default interval, got %d", cfg.Interval)
	}
	if len(cfg.Apps) != 1 || cfg.Apps[0] != DefaultApp {
		t.Errorf("expected default apps, got %v", cfg.Apps)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("interval: [not a number\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	manager := NewManager(path)
	_, err := manager.Load()
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !errors.Is(err, util.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Namespace: "default",
		Interval:  10,
		Apps:      []string{"myapp"},
		Tail:      5,
		Output:    "table",
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: nil,
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Interval = 0 },
			wantErr: util.ErrInvalidInterval,
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Interval = -3 },
			wantErr: util.ErrInvalidInterval,
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output = "xml" },
			wantErr: util.ErrInvalidOutput,
		},
		{
			name:   "zero tail",
			mutate: func(c *Config) { c.Tail = 0 },
		},
		{
			name:   "no apps",
			mutate: func(c *Config) { c.Apps = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.name == "valid" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !util.IsUserError(err) {
				t.Errorf("expected a user error, got %v", err)
			}
		})
	}
}
