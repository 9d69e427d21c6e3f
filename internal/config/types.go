// Package config loads loom's optional YAML settings file.
package config

// Config is the settings file. Every field is optional and command-line
// flags take precedence over it.
type Config struct {
	// Theme is a theme document path; empty selects the built-in theme.
	Theme      string `yaml:"theme,omitempty" validate:"omitempty,theme_path"`
	Mode       string `yaml:"mode,omitempty" validate:"omitempty,oneof=auto light dark"`
	Watch      bool   `yaml:"watch,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFile    string `yaml:"log_file,omitempty"`
	PrefsFile  string `yaml:"prefs_file,omitempty"`
	StartStory string `yaml:"start_story,omitempty" validate:"omitempty,story_id"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Mode:     "auto",
		LogLevel: "info",
	}
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Mode == "" {
		c.Mode = defaults.Mode
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}
