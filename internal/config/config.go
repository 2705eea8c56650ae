package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/logging"
	v5 "github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/v5"
)

const (
	InputHex    = "hex"
	InputBase64 = "base64"

	DefaultNamespace      = "airmash"
	DefaultMaxPacketBytes = 1 << 16
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	Codec   CodecConfig   `toml:"codec"`

	// keys of [log] present in the file
	logKeys map[string]bool
}

type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
	JSON      bool   `toml:"json"`
}

type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
}

type CodecConfig struct {
	ProtocolVersion uint8  `toml:"protocol_version"`
	MaxPacketBytes  int    `toml:"max_packet_bytes"`
	Input           string `toml:"input"`
}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Timestamp: true},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Codec: CodecConfig{
			ProtocolVersion: v5.Version,
			MaxPacketBytes:  DefaultMaxPacketBytes,
			Input:           InputHex,
		},
	}
}

// Load reads path over Default. Unknown keys are rejected so that a typo
// does not silently fall back to a default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.logKeys = map[string]bool{}
	for _, k := range []string{"level", "timestamp", "no_color", "json"} {
		if meta.IsDefined("log", k) {
			cfg.logKeys[k] = true
		}
	}
	cfg.Codec.Input = strings.ToLower(strings.TrimSpace(cfg.Codec.Input))
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("log.level %q is not a known level", cfg.Log.Level)
	}
	if cfg.Metrics.Enabled && strings.TrimSpace(cfg.Metrics.Namespace) == "" {
		return fmt.Errorf("metrics.namespace is required when metrics are enabled")
	}
	if cfg.Codec.ProtocolVersion != v5.Version {
		return fmt.Errorf("codec.protocol_version %d is not supported, want %d", cfg.Codec.ProtocolVersion, v5.Version)
	}
	if cfg.Codec.MaxPacketBytes <= 0 {
		return fmt.Errorf("codec.max_packet_bytes must be positive, got %d", cfg.Codec.MaxPacketBytes)
	}
	switch cfg.Codec.Input {
	case InputHex, InputBase64:
	default:
		return fmt.Errorf("codec.input must be %q or %q, got %q", InputHex, InputBase64, cfg.Codec.Input)
	}
	return nil
}

// Logging layers the [log] keys set in the file over the profile defaults.
// A Config built in code, rather than loaded, applies every field.
func (c Config) Logging(profile logging.Profile) logging.Config {
	out := logging.DefaultConfig(profile)
	set := func(key string) bool {
		return c.logKeys == nil || c.logKeys[key]
	}
	if set("level") {
		if lvl, ok := logging.ParseLevel(c.Log.Level); ok {
			out.Level = lvl
		}
	}
	if set("timestamp") {
		out.Timestamp = c.Log.Timestamp
	}
	if set("no_color") {
		out.NoColor = c.Log.NoColor
	}
	if set("json") {
		out.JSON = c.Log.JSON
	}
	return out
}
