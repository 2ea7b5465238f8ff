// Package daemon manages the IdeaForge daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ideaforge/forge/internal/domain"
)

// Config holds all daemon configuration.
type Config struct {
	API           APIConfig           `toml:"api"`
	Progression   ProgressionConfig   `toml:"progression"`
	Notifications NotificationsConfig `toml:"notifications"`
	Telemetry     TelemetryConfig     `toml:"telemetry"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ProgressionConfig controls the progression engine.
type ProgressionConfig struct {
	// MasterEnabled allows master-tier completions. The master tier is
	// locked until the user explicitly opts in.
	MasterEnabled bool `toml:"master_enabled"`
}

// NotificationsConfig rate-limits unlock announcements.
type NotificationsConfig struct {
	MaxPerDay  int    `toml:"max_per_day"`
	QuietStart string `toml:"quiet_start"`
	QuietEnd   string `toml:"quiet_end"`
}

// TelemetryConfig controls observability.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	policy := domain.DefaultNotificationPolicy()
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 7433,
		},
		Progression: ProgressionConfig{
			MasterEnabled: false,
		},
		Notifications: NotificationsConfig{
			MaxPerDay:  policy.MaxPerDay,
			QuietStart: policy.QuietStart,
			QuietEnd:   policy.QuietEnd,
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
	}
}

// NotificationPolicy converts the config section to a domain policy.
func (c Config) NotificationPolicy() domain.NotificationPolicy {
	return domain.NotificationPolicy{
		MaxPerDay:  c.Notifications.MaxPerDay,
		QuietStart: c.Notifications.QuietStart,
		QuietEnd:   c.Notifications.QuietEnd,
	}
}

// LoadConfig reads config from ~/.forge/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(forgeHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.forge/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(forgeHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// forgeHome returns the IdeaForge data directory.
func forgeHome() string {
	if env := os.Getenv("FORGE_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".forge")
}

// ForgeHome is exported for use by other packages.
func ForgeHome() string {
	return forgeHome()
}
