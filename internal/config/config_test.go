package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(home, ".lifeos.db"); cfg.DBPath != want {
		t.Fatalf("DBPath=%q, want %q", cfg.DBPath, want)
	}
	if cfg.LogMode != "dev" {
		t.Fatalf("LogMode=%q, want dev", cfg.LogMode)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc != time.Local {
		t.Fatalf("Location=%v, want Local", loc)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "lifeos.yaml")
	body := "db_path: /tmp/from-file.db\ntimezone: UTC\nlog_mode: prod\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LIFEOS_DB_PATH", "/tmp/from-env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/from-env.db" {
		t.Fatalf("DBPath=%q, want env override", cfg.DBPath)
	}
	if cfg.LogMode != "prod" {
		t.Fatalf("LogMode=%q, want prod", cfg.LogMode)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.String() != "UTC" {
		t.Fatalf("Location=%v, want UTC", loc)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
