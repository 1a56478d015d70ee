package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/aryankumar/appwatch/internal/util"
)

const (
	defaultConfigName = ".appwatch"
	defaultConfigDir  = ".appwatch"

	// DefaultNamespace is the namespace watched when none is configured
	DefaultNamespace = "default"

	// DefaultInterval is the refresh interval in seconds
	DefaultInterval = 10

	// DefaultApp is the application watched when none is given
	DefaultApp = "myapp"

	// DefaultTail is the number of log lines tailed per pod per pass
	DefaultTail = 5
)

// Manager handles appwatch configuration
type Manager struct {
	configPath string
	config     *Config
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &Config{},
	}
}

// Load loads the configuration from file, falling back to defaults when no
// file exists.
func (m *Manager) Load() (*Config, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		// Try multiple locations
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Check ~/.appwatch/config.yaml
		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		// Check ~/.appwatch.yaml
		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	// Set environment variable support
	m.viper.SetEnvPrefix("APPWATCH")
	m.viper.AutomaticEnv()

	m.config = &Config{}

	if err := m.viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", util.ErrInvalidConfig, err)
		}
		m.applyDefaults()
		return m.config, nil
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidConfig, err)
	}

	m.applyDefaults()

	return m.config, nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *Config {
	return m.config
}

// ConfigFileUsed returns the path of the loaded config file, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Namespace == "" {
		m.config.Namespace = DefaultNamespace
	}

	if m.config.Interval == 0 {
		m.config.Interval = DefaultInterval
	}

	if len(m.config.Apps) == 0 {
		m.config.Apps = []string{DefaultApp}
	}

	if m.config.Tail == 0 {
		m.config.Tail = DefaultTail
	}

	if m.config.Output == "" {
		m.config.Output = "table"
	}
}

// Validate rejects configuration the refresh loop cannot run with. It is
// called before any cluster query so a bad interval never reaches the API.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %d", util.ErrInvalidInterval, c.Interval)
	}

	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", util.ErrInvalidOutput, c.Output)
	}

	if c.Tail <= 0 {
		return util.NewValidationError("tail", c.Tail, "must be a positive line count")
	}

	if len(c.Apps) == 0 {
		return util.NewValidationError("apps", nil, "at least one application name required")
	}

	return nil
}
