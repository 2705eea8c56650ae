package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airmash.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestTemplateLoadsToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airmash.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	want := Default()
	if cfg.Log != want.Log || cfg.Metrics != want.Metrics || cfg.Codec != want.Codec {
		t.Fatalf("template differs from defaults: %+v", cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[codec]
input = "Base64"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Codec.Input != InputBase64 {
		t.Fatalf("input not normalized: %q", cfg.Codec.Input)
	}
	if cfg.Codec.MaxPacketBytes != DefaultMaxPacketBytes || cfg.Metrics.Namespace != DefaultNamespace {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[codec]
max_packet_byte = 10
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "codec.max_packet_byte") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"namespace", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Namespace = " " }},
		{"version", func(c *Config) { c.Codec.ProtocolVersion = 4 }},
		{"max bytes", func(c *Config) { c.Codec.MaxPacketBytes = 0 }},
		{"input", func(c *Config) { c.Codec.Input = "raw" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoggingOnlyAppliesDefinedKeys(t *testing.T) {
	path := writeConfig(t, `
[log]
json = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := cfg.Logging(logging.ProfileTest)
	if !got.JSON {
		t.Fatalf("json not applied")
	}
	if got.Level != zerolog.DebugLevel || got.Timestamp {
		t.Fatalf("test profile defaults overridden by unset keys: %+v", got)
	}

	all := Default().Logging(logging.ProfileTest)
	if all.Level != zerolog.InfoLevel || !all.Timestamp {
		t.Fatalf("in-code config must apply every field: %+v", all)
	}
}
