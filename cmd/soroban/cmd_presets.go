package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/soroban/preset"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the embedded presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "NAME\tRULE\tSTRATEGY\tDESCRIPTION\n")
			for _, name := range preset.List() {
				p, err := preset.Load(name)
				if err != nil {
					return err
				}
				strategy := p.Strategy
				if strategy == "" {
					strategy = preset.StrategyAuto
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Rule, strategy, p.Description)
			}
			return w.Flush()
		},
	}
}
