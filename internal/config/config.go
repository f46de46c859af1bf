// Package config loads SportCal configuration from a YAML file with
// environment overrides. A .env file, when present, is loaded first without
// overwriting existing process environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
)

// Config is the full service configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Locale   string         `yaml:"locale" env:"SPORTCAL_LOCALE"`
	NATS     NATSConfig     `yaml:"nats"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// HTTPConfig holds listener ports.
type HTTPConfig struct {
	Port      int `yaml:"port" env:"SPORTCAL_HTTP_PORT"`
	AdminPort int `yaml:"admin_port" env:"SPORTCAL_ADMIN_PORT"`
}

// DatabaseConfig holds the SQLite location. ":memory:" runs ephemeral.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"SPORTCAL_DB_PATH"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"SPORTCAL_LOG_LEVEL"`   // debug|info|warn|error
	Format string `yaml:"format" env:"SPORTCAL_LOG_FORMAT"` // text|json
}

// NATSConfig enables event publishing when URL is non-empty.
type NATSConfig struct {
	URL string `yaml:"url" env:"SPORTCAL_NATS_URL"`
}

// SnapshotConfig schedules the daily summary log job. Empty At disables it.
type SnapshotConfig struct {
	At string `yaml:"at" env:"SPORTCAL_SNAPSHOT_AT"` // "HH:MM", local time
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080, AdminPort: 9090},
		Database: DatabaseConfig{Path: "sportcal.db"},
		Log:      LogConfig{Level: "info", Format: "text"},
		Locale:   "ru",
	}
}

// Load reads configuration: defaults, then the YAML file (if it exists), then
// environment overrides. A missing config file is not an error; a malformed
// one is.
func Load(path string) (*Config, error) {
	loadEnvFile()

	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, ferrors.ConfigError("failed to parse config file").
				WithContext("path", path).
				WithContext("cause", err.Error()).
				Build()
		}
	case os.IsNotExist(err):
		// Defaults plus environment are a complete configuration.
	default:
		return nil, ferrors.ConfigError("failed to read config file").
			WithContext("path", path).
			WithContext("cause", err.Error()).
			Build()
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, ferrors.ConfigError("failed to apply environment overrides").
			WithContext("cause", err.Error()).
			Build()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return ferrors.ConfigError("http.port out of range").WithContext("port", c.HTTP.Port).Build()
	}
	if c.HTTP.AdminPort <= 0 || c.HTTP.AdminPort > 65535 {
		return ferrors.ConfigError("http.admin_port out of range").WithContext("port", c.HTTP.AdminPort).Build()
	}
	if c.HTTP.Port == c.HTTP.AdminPort {
		return ferrors.ConfigError("http.port and http.admin_port must differ").Build()
	}
	if c.Database.Path == "" {
		return ferrors.ConfigError("database.path must not be empty").Build()
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return ferrors.ConfigError("log.level must be one of debug|info|warn|error").
			WithContext("level", c.Log.Level).
			Build()
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return ferrors.ConfigError("log.format must be text or json").
			WithContext("format", c.Log.Format).
			Build()
	}
	if c.Snapshot.At != "" {
		if _, _, err := ParseClock(c.Snapshot.At); err != nil {
			return err
		}
	}
	return nil
}

// ParseClock parses "HH:MM" into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	t, perr := time.Parse("15:04", s)
	if perr != nil || len(s) != len("15:04") {
		return 0, 0, ferrors.ConfigError("snapshot.at must use format HH:MM").
			WithContext("value", s).
			Build()
	}
	return t.Hour(), t.Minute(), nil
}

// loadEnvFile loads .env/.env.local, first hit wins. Existing process
// environment is never overwritten.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			return
		}
	}
}
