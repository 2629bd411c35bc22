// Package config provides configuration types and defaults for devpulse.
package config

// Config holds all configuration for devpulse.
type Config struct {
	App         AppConfig         `yaml:"app" mapstructure:"app"`
	Feeds       FeedsConfig       `yaml:"feeds" mapstructure:"feeds"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// AppConfig describes the development server whose builds are observed.
type AppConfig struct {
	URL string `yaml:"url" mapstructure:"url"` // Shown next to the build status once the server is up
}

// FeedsConfig holds the JSONL feed file paths written by the bundler.
type FeedsConfig struct {
	Client     string `yaml:"client" mapstructure:"client"`
	Server     string `yaml:"server" mapstructure:"server"`
	Validation string `yaml:"validation" mapstructure:"validation"`
}

// PathsConfig holds file paths for logs.
type PathsConfig struct {
	Log string `yaml:"log" mapstructure:"log"`
}

// LogRotationConfig holds settings for log file rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		App: AppConfig{
			URL: "http://localhost:3000",
		},
		Feeds: FeedsConfig{
			Client:     ".devpulse/client.jsonl",
			Server:     ".devpulse/server.jsonl",
			Validation: ".devpulse/validation.jsonl",
		},
		Paths: PathsConfig{
			Log: ".devpulse/devpulse.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
