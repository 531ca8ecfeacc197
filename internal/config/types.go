package config

// Config represents the optional obsidian-kit.yaml configuration file.
// Every field has a default; a missing file means defaults throughout.
type Config struct {
	Version int `yaml:"version"`

	// Extensions are the file extensions the sync scanner considers
	// markdown. Each entry must start with a dot.
	Extensions []string `yaml:"extensions,omitempty"`

	// MTimeToleranceSeconds is the change-detection mtime tolerance.
	// The default of 1.0 absorbs filesystem timestamp granularity.
	MTimeToleranceSeconds float64 `yaml:"mtime_tolerance_seconds,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:               1,
		Extensions:            []string{".md"},
		MTimeToleranceSeconds: 1.0,
	}
}
