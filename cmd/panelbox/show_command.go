package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"panelbox/internal/book"
	"panelbox/internal/formats"
	"panelbox/internal/metadata"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var mergedOnly bool

	cmd := &cobra.Command{
		Use:   "show <archive>...",
		Short: "Display the reconciled metadata of comic archives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			for _, path := range args {
				bk := book.New(cfg, logger, path)
				var record metadata.Record
				if mergedOnly {
					record, err = bk.Merged()
				} else {
					record, err = bk.Metadata()
				}
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if jsonOut {
					if err := writeRecordJSON(cmd, record); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Field", "Value"}, flattenRecord(record)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of a table")
	cmd.Flags().BoolVar(&mergedOnly, "merged", false, "Show the merged record without computed fields")
	return cmd
}

// writeRecordJSON routes records through the native JSON adapter so the
// output matches the sidecar layout exactly.
func writeRecordJSON(cmd *cobra.Command, record metadata.Record) error {
	adapter, err := formats.ByName(formats.NameComicboxJSON)
	if err != nil {
		return err
	}
	data, err := adapter.Render(record)
	if err != nil {
		return err
	}
	var pretty json.RawMessage = data
	return writeJSON(cmd, pretty)
}
