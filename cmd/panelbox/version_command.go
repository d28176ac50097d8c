package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelbox/internal/config"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the panelbox version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "panelbox", config.Version)
			return nil
		},
	}
}
