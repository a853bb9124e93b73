package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Project != "test-project" {
			t.Fatalf("expected project name, got %q", cfg.Project)
		}
		if cfg.Paths.Gamedata != "./gamedata" || cfg.Paths.Output != "./output" {
			t.Fatalf("expected paths, got %+v", cfg.Paths)
		}
		if !cfg.Database.Configured() || cfg.Database.Driver != "sqlite" {
			t.Fatalf("expected sqlite database, got %+v", cfg.Database)
		}
	})

	t.Run("database section is optional", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\npaths:\n  gamedata: ./gamedata\n  schemas: ./schema\n  output: ./output\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.Configured() {
			t.Fatalf("expected no database, got %+v", cfg.Database)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\npaths:\n  gamedata: ./gamedata\n  schemas: ./schema\n  output: ./output\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 2\npaths:\n  gamedata: ./gamedata\n  schemas: ./schema\n  output: ./output\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing gamedata path", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\npaths:\n  schemas: ./schema\n  output: ./output\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing schemas path", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\npaths:\n  gamedata: ./gamedata\n  output: ./output\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing output path", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\npaths:\n  gamedata: ./gamedata\n  schemas: ./schema\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown database driver", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\npaths:\n  gamedata: ./gamedata\n  schemas: ./schema\n  output: ./output\ndatabase:\n  driver: mysql\n  dsn: x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("driver without dsn", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\npaths:\n  gamedata: ./gamedata\n  schemas: ./schema\n  output: ./output\ndatabase:\n  driver: sqlite\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "project: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "erdb.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
