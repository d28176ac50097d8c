package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"panelbox/internal/book"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "sources <archive>...",
		Short: "List the metadata sources discovered for comic archives",
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
				sources, err := bk.Sources()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if jsonOut {
					if err := writeJSON(cmd, sourceViews(sources)); err != nil {
						return err
					}
					continue
				}
				rows := make([][]string, 0, len(sources))
				for _, source := range sources {
					rows = append(rows, []string{
						source.Source.Label(),
						source.Format,
						source.Origin,
						strconv.Itoa(len(source.Record)),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Source", "Format", "Origin", "Fields"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of a table")
	return cmd
}

type sourceView struct {
	Source string `json:"source"`
	Format string `json:"format,omitempty"`
	Origin string `json:"origin,omitempty"`
	Fields int    `json:"fields"`
}

func sourceViews(sources []book.SourceRecord) []sourceView {
	out := make([]sourceView, 0, len(sources))
	for _, source := range sources {
		out = append(out, sourceView{
			Source: source.Source.Label(),
			Format: source.Format,
			Origin: source.Origin,
			Fields: len(source.Record),
		})
	}
	return out
}
