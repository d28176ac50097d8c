package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelbox/internal/book"
)

func newWriteCommand(ctx *commandContext) *cobra.Command {
	var writeFormats []string
	var fragments []string
	var deleteKeys []string
	var replace bool

	cmd := &cobra.Command{
		Use:   "write <archive>...",
		Short: "Write reconciled metadata back into comic archives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(writeFormats) > 0 {
				cfg.Formats.Write = writeFormats
			}
			cfg.CLIMetadata = append(cfg.CLIMetadata, fragments...)
			cfg.DeleteKeys = append(cfg.DeleteKeys, deleteKeys...)
			if replace {
				cfg.ReplaceMetadata = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			for _, path := range args {
				bk := book.New(cfg, logger, path)
				if err := bk.Write(); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), bk.Path())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&writeFormats, "format", nil, "Metadata formats to write (overrides config)")
	cmd.Flags().StringArrayVarP(&fragments, "metadata", "m", nil, "YAML metadata fragment applied as the highest-precedence source")
	cmd.Flags().StringSliceVar(&deleteKeys, "delete-key", nil, "Field paths removed from the final record")
	cmd.Flags().BoolVar(&replace, "replace", false, "Later sources fully replace earlier ones instead of merging")
	return cmd
}
