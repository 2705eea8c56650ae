package main

import (
	"fmt"

	"github.com/spf13/cobra"

	v5 "github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/v5"
)

// Set at build time.
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tool and protocol versions",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "airmashctl %s (protocol v%d)\n", version, v5.Protocol{}.Version())
		},
	}
}
