package config

// Config represents the appwatch configuration file structure. Every field
// can also be set by flag or APPWATCH_* environment variable; the file only
// supplies defaults.
type Config struct {
	// Namespace is the namespace to watch
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty" mapstructure:"namespace"`

	// Interval is the refresh interval in seconds (must be positive)
	Interval int `yaml:"interval,omitempty" json:"interval,omitempty" mapstructure:"interval"`

	// Apps are the application names watched when none are given on the
	// command line
	Apps []string `yaml:"apps,omitempty" json:"apps,omitempty" mapstructure:"apps"`

	// Tail is the number of log lines fetched per pod per pass
	Tail int `yaml:"tail,omitempty" json:"tail,omitempty" mapstructure:"tail"`

	// Output is the snapshot output format (table, json, yaml)
	Output string `yaml:"output,omitempty" json:"output,omitempty" mapstructure:"output"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty" mapstructure:"noColor"`
}
