package config

import (
	"testing"
)

func TestGetTablePrefix(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		set      bool
		expected string
	}{
		{name: "prod has no prefix", env: "prod", expected: ""},
		{name: "test environment", env: "test", expected: "test_"},
		{name: "dev environment", env: "dev", expected: "dev_"},
		{name: "unknown falls back to dev", env: "staging", expected: "dev_"},
		{name: "override wins", env: "prod", override: "custom_", set: true, expected: "custom_"},
		{name: "empty override is honoured", env: "dev", override: "", set: true, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TABLE_PREFIX", tt.override)
			}
			if got := getTablePrefix(tt.env); got != tt.expected {
				t.Errorf("getTablePrefix(%q) = %q, want %q", tt.env, got, tt.expected)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("AUTO_MIGRATE", "")
	t.Setenv("AUTH_JWKS_URL", "")
	t.Setenv("LOG_MAX_FILES", "not-a-number")

	cfg := Load()

	if cfg.StoreDriver != DriverPostgres {
		t.Errorf("expected default driver %q, got %q", DriverPostgres, cfg.StoreDriver)
	}
	if cfg.AutoMigrate {
		t.Error("expected auto-migrate to be off in prod")
	}
	if cfg.AuthEnabled() {
		t.Error("expected auth to be disabled without a JWKS URL")
	}
	if cfg.LogMaxFiles != 10 {
		t.Errorf("expected LogMaxFiles fallback 10, got %d", cfg.LogMaxFiles)
	}
}

func TestLoad_SQLiteDev(t *testing.T) {
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("STORE_DRIVER", DriverSQLite)
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("AUTO_MIGRATE", "")

	cfg := Load()

	if cfg.StoreDriver != DriverSQLite {
		t.Errorf("expected driver %q, got %q", DriverSQLite, cfg.StoreDriver)
	}
	if cfg.SQLitePath != ":memory:" {
		t.Errorf("expected sqlite path :memory:, got %q", cfg.SQLitePath)
	}
	if !cfg.AutoMigrate {
		t.Error("expected auto-migrate to default on outside prod")
	}
}
