package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeos.log")
	log, err := New(Options{Mode: "prod", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.With("component", "test").Info("hello", "n", 1)
	log.Debug("hidden")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"component":"test"`) {
		t.Fatalf("log file missing entry: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry written in prod mode: %s", out)
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Warn("ignored", "k", "v")
	log.Sync()
}
