package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/config"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/logging"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/observability"
	v5 "github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/v5"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "airmashctl: %s\n", err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once the root has loaded
// its configuration.
type app struct {
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "airmashctl",
		Short: "Inspect and build AIRMASH protocol v5 packets",
		Long: `airmashctl decodes captured AIRMASH packets into JSON, builds packets
from JSON, and lists the client and server packet catalogs.

Examples:
  airmashctl decode --origin server 0b0004
  airmashctl encode --origin client --kind 6 '{"Num": 7}'
  airmashctl catalog --origin server`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to an airmash TOML config")

	root.AddCommand(
		decodeCmd(a),
		encodeCmd(a),
		catalogCmd(),
		configCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) load() error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	logging.ConfigureWith(a.cfg.Logging(logging.ProfileRuntime))
	return nil
}

// codec returns the façade, instrumented when metrics are requested. The
// registry is nil when metrics are off.
func (a *app) codec(withMetrics bool) (observability.Codec, *prometheus.Registry, error) {
	logger := observability.Logger("airmashctl")
	if !withMetrics && !a.cfg.Metrics.Enabled {
		return observability.Instrument(v5.Protocol{}, nil, logger), nil, nil
	}
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg, a.cfg.Metrics.Namespace)
	if err != nil {
		return nil, nil, err
	}
	return observability.Instrument(v5.Protocol{}, m, logger), reg, nil
}
