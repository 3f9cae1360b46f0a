package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := Default()
	if cfg.Log != def.Log || cfg.Output != def.Output {
		t.Fatalf("expected defaults %+v, got %+v", def, cfg)
	}
	if len(cfg.Chain.Entries) != 2 {
		t.Fatalf("expected 2 default entries, got %d", len(cfg.Chain.Entries))
	}
	if cfg.PowTimeoutDuration() != 0 {
		t.Fatalf("expected unbounded pow timeout, got %s", cfg.PowTimeoutDuration())
	}
}

func TestParseFileEnvAndFlagPrecedence(t *testing.T) {
	path := writeConfig(t, `
output = "json"

[log]
level = "debug"
format = "json"

[chain]
entries = ["one", "two", "three"]
pow_timeout = "10s"
`)
	t.Setenv("POWLEDGER_LOG_LEVEL", "warn")

	cfg, err := Parse([]string{"-config", path, "-pow.timeout", "1m"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Fatalf("env should override file level, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("file should override default format, got %q", cfg.Log.Format)
	}
	if cfg.Output != "json" {
		t.Fatalf("expected output json, got %q", cfg.Output)
	}
	if cfg.PowTimeoutDuration() != time.Minute {
		t.Fatalf("flag should override file timeout, got %s", cfg.PowTimeoutDuration())
	}
	if len(cfg.Chain.Entries) != 3 || cfg.Chain.Entries[2] != "three" {
		t.Fatalf("expected entries from file, got %v", cfg.Chain.Entries)
	}
}

func TestParsePositionalEntries(t *testing.T) {
	cfg, err := Parse([]string{"-log.level", "error", "first", "second"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Chain.Entries) != 2 || cfg.Chain.Entries[0] != "first" {
		t.Fatalf("expected positional entries, got %v", cfg.Chain.Entries)
	}
	if cfg.Log.Level != "error" {
		t.Fatalf("expected level error, got %q", cfg.Log.Level)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := [][]string{
		{"-log.level", "loud"},
		{"-log.format", "xml"},
		{"-output", "csv"},
		{"-pow.timeout", "soon"},
		{"-pow.timeout", "-5s"},
	}
	for _, args := range cases {
		if _, err := Parse(args, io.Discard); err == nil {
			t.Fatalf("expected an error for %v", args)
		}
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `difficulty = "00000"`)

	cfg := Default()
	if err := Load(path, &cfg); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestLoadRejectsEmptyEntries(t *testing.T) {
	path := writeConfig(t, "[chain]\nentries = []\n")

	if _, err := Parse([]string{"-config", path}, io.Discard); err == nil {
		t.Fatal("expected an error for an empty entry list")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Default()
	if err := Load(filepath.Join(t.TempDir(), "missing.toml"), &cfg); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
