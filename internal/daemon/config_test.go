package daemon

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" || cfg.API.Port != 7433 {
		t.Errorf("default API address = %s:%d", cfg.API.Host, cfg.API.Port)
	}
	if cfg.Progression.MasterEnabled {
		t.Errorf("master tier must be locked by default")
	}
	if cfg.Notifications.MaxPerDay != 3 {
		t.Errorf("MaxPerDay = %d, want 3", cfg.Notifications.MaxPerDay)
	}
	if cfg.Notifications.QuietStart != "22:00" || cfg.Notifications.QuietEnd != "08:00" {
		t.Errorf("quiet hours = %s–%s", cfg.Notifications.QuietStart, cfg.Notifications.QuietEnd)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("FORGE_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 7433 {
		t.Errorf("missing file should yield defaults, got port %d", cfg.API.Port)
	}
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("FORGE_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 9999
	cfg.Progression.MasterEnabled = true
	cfg.Telemetry.Prometheus = false

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.API.Port != 9999 {
		t.Errorf("port = %d, want 9999", got.API.Port)
	}
	if !got.Progression.MasterEnabled {
		t.Errorf("MasterEnabled not round-tripped")
	}
	if got.Telemetry.Prometheus {
		t.Errorf("Prometheus flag not round-tripped")
	}
}

func TestNotificationPolicyConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Notifications.MaxPerDay = 7

	policy := cfg.NotificationPolicy()
	if policy.MaxPerDay != 7 {
		t.Errorf("MaxPerDay = %d, want 7", policy.MaxPerDay)
	}
	if policy.QuietStart != "22:00" {
		t.Errorf("QuietStart = %s", policy.QuietStart)
	}
}
