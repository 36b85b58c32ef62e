package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/soroban/generator"
	"github.com/katalvlaran/soroban/rule"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := src.load()
			if err != nil {
				return err
			}
			seed := src.resolvedSeed()
			s, err := p.Build(a.logger, rule.WithSeed(seed))
			if err != nil {
				return err
			}
			ex, err := s.Generate()
			if err != nil {
				return fmt.Errorf("generate %s: %w", p.Name, err)
			}
			a.logger.Info("exercise generated", "preset", p.Name, "seed", seed, "steps", len(ex.Steps))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(newRecord("", p.Name, seed, ex))
			}
			return writeText(out, generator.ToTrainerFormat(ex))
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the exercise as JSON")
	return cmd
}

// writeText prints one step per line followed by the answer.
func writeText(w io.Writer, t generator.TrainerExample) error {
	for _, s := range t.Steps {
		if _, err := fmt.Fprintf(w, "%6s\n", s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "= %4d\n", t.Answer)
	return err
}
