package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/client"
	"github.com/steamroller-airmash/airmash-server-sub002/internal/protocol/server"
)

func catalogCmd() *cobra.Command {
	var origin string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List packet discriminants",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOrigin(origin)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tNAME")
			if o == protocol.OriginClient {
				for _, e := range client.Catalog() {
					fmt.Fprintf(tw, "%d\t%s\n", e.Kind, e.Name)
				}
			} else {
				for _, e := range server.Catalog() {
					fmt.Fprintf(tw, "%d\t%s\n", e.Kind, e.Name)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&origin, "origin", "o", "server", "packet origin: client|server")

	return cmd
}
