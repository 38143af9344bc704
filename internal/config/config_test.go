package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
database:
  path: "/data/winterarc.db"
catalog:
  path: "/etc/winterarc/catalog.yaml"
  release_url: "https://example.com/winterarc/catalog"
log:
  file: "/var/log/winterarc.log"
  level: "debug"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// clearEnv isolates a test from the developer's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WINTERARC_DB_PATH", "WINTERARC_CATALOG_PATH", "WINTERARC_CATALOG_URL",
		"WINTERARC_LOG_FILE", "WINTERARC_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
}

func TestLoadValid(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/data/winterarc.db" {
		t.Errorf("database.path = %q", cfg.Database.Path)
	}
	if cfg.Catalog.Path != "/etc/winterarc/catalog.yaml" {
		t.Errorf("catalog.path = %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.ReleaseURL != "https://example.com/winterarc/catalog" {
		t.Errorf("catalog.release_url = %q", cfg.Catalog.ReleaseURL)
	}
	if cfg.Log.File != "/var/log/winterarc.log" {
		t.Errorf("log.file = %q", cfg.Log.File)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.SlogLevel())
	}
}

// A missing file is the normal first-run case and yields defaults.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "" {
		t.Errorf("database.path = %q, want empty", cfg.Database.Path)
	}
	if want := "/cfg/winterarc/catalog.yaml"; cfg.Catalog.Path != want {
		t.Errorf("catalog.path = %q, want %q", cfg.Catalog.Path, want)
	}
	if cfg.Catalog.ReleaseURL != DefaultCatalogURL {
		t.Errorf("catalog.release_url = %q", cfg.Catalog.ReleaseURL)
	}
	if want := "/state/winterarc/winterarc.log"; cfg.Log.File != want {
		t.Errorf("log.file = %q, want %q", cfg.Log.File, want)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("level = %v, want info", cfg.SlogLevel())
	}
}

// Fields left out of the file keep their defaults.
func TestLoadPartialFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeTemp(t, "log:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("level = %v, want warn", cfg.SlogLevel())
	}
	if cfg.Log.File != "/state/winterarc/winterarc.log" {
		t.Errorf("log.file = %q, want default", cfg.Log.File)
	}
}

func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("WINTERARC_DB_PATH", "/tmp/override.db")
	t.Setenv("WINTERARC_CATALOG_URL", "http://mirror.local/catalog")
	t.Setenv("WINTERARC_LOG_LEVEL", "error")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("database.path = %q", cfg.Database.Path)
	}
	if cfg.Catalog.ReleaseURL != "http://mirror.local/catalog" {
		t.Errorf("catalog.release_url = %q", cfg.Catalog.ReleaseURL)
	}
	if cfg.SlogLevel() != slog.LevelError {
		t.Errorf("level = %v, want error", cfg.SlogLevel())
	}
	// Unchanged fields keep YAML values.
	if cfg.Catalog.Path != "/etc/winterarc/catalog.yaml" {
		t.Errorf("catalog.path = %q", cfg.Catalog.Path)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"relative url", "catalog:\n  release_url: example.com/catalog\n"},
		{"ftp url", "catalog:\n  release_url: ftp://example.com/catalog\n"},
		{"not yaml", "log: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, err := Load(writeTemp(t, tt.yaml)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := DefaultPath(), "/xdg/winterarc/config.yaml"; got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
