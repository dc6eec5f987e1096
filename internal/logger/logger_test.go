package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	} {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: "warn", Console: &buf})
	log.Info("hidden")
	log.Warn("shown", zap.Int("triangles", 8))
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "triangles") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isovis.log")
	log := NewWithConfig(Config{Level: "debug", File: DefaultFileConfig(path)})
	log.Named("extractor").Debug("cache miss", zap.Float64("iso", 0.5))
	if err := log.Sync(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(b), &entry); err != nil {
		t.Fatalf("file entry is not JSON: %v: %q", err, b)
	}
	if entry["msg"] != "cache miss" || entry["logger"] != "extractor" || entry["iso"] != 0.5 {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNoOutputs(t *testing.T) {
	log := NewWithConfig(Config{})
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should discard entries")
	}
}
