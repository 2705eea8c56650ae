package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steamroller-airmash/airmash-server-sub002/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or validate a config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Check a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "validated %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
