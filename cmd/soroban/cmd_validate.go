package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/soroban/rule"
)

var errRejected = errors.New("exercises rejected")

func newValidateCmd(a *app) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Re-check exercises written by generate --json or batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := src.load()
			if err != nil {
				return err
			}
			s, err := p.Build(a.logger, rule.WithSeed(src.resolvedSeed()))
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			dec := json.NewDecoder(bufio.NewReader(f))
			var total, bad int
			for dec.More() {
				var r record
				if err := dec.Decode(&r); err != nil {
					return fmt.Errorf("record %d: %w", total+1, err)
				}
				total++
				if err := s.ValidateExample(r.Example); err != nil {
					bad++
					fmt.Fprintf(cmd.OutOrStdout(), "REJECT %d %s: %v\n", total, r.ID, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d checked, %d rejected\n", total, bad)
			if bad > 0 {
				return fmt.Errorf("%d of %d: %w", bad, total, errRejected)
			}
			return nil
		},
	}
	src.register(cmd)
	return cmd
}
