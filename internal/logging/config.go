package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "AIRMASH_LOG_LEVEL"
	EnvLogTimestamp = "AIRMASH_LOG_TIMESTAMP"
	EnvLogNoColor   = "AIRMASH_LOG_NOCOLOR"
	EnvLogJSON      = "AIRMASH_LOG_JSON"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup. File settings from internal/config
// are applied on top of the profile defaults, and env overrides win last.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	JSON      bool
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	ConfigureWith(DefaultConfig(profile))
}

// ConfigureWith installs cfg as the global logger. Only the first call in a
// process has any effect.
func ConfigureWith(cfg Config) {
	configureOnce.Do(func() {
		ApplyEnvOverrides(&cfg)
		log.Logger = New(os.Stderr, cfg)
		zerolog.SetGlobalLevel(cfg.Level)
	})
}

// New builds a logger writing to out without touching global state.
func New(out io.Writer, cfg Config) zerolog.Logger {
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:          out,
			NoColor:      cfg.NoColor,
			TimeFormat:   time.RFC3339,
			PartsExclude: timestampParts(cfg.Timestamp),
		}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func timestampParts(enabled bool) []string {
	if enabled {
		return nil
	}
	return []string{zerolog.TimestampFieldName}
}

func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func ApplyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogJSON)); ok {
		cfg.JSON = v
	}
}

// ParseLevel accepts the level names used in config files and env vars.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
