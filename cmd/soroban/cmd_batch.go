package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/soroban/preset"
	"github.com/katalvlaran/soroban/rule"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		src     sourceFlags
		count   int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many exercises as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be positive, got %d", workers)
			}
			p, err := src.load()
			if err != nil {
				return err
			}
			recs, err := runBatch(cmd.Context(), a, p, src.resolvedSeed(), count, min(workers, count))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, r := range recs {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().IntVar(&count, "count", 10, "number of exercises")
	cmd.Flags().IntVar(&workers, "workers", 4, "parallel generators")
	return cmd
}

// runBatch fills count records on workers goroutines. Worker w owns its own
// generator seeded from stream w of seed and produces records w, w+workers, ...
func runBatch(ctx context.Context, a *app, p *preset.Preset, seed int64, count, workers int) ([]record, error) {
	recs := make([]record, count)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			wseed := deriveSeed(seed, uint64(w))
			logger := a.logger.With("worker", w)
			s, err := p.Build(logger, rule.WithSeed(wseed))
			if err != nil {
				return err
			}
			for i := w; i < count; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				ex, err := s.Generate()
				if err != nil {
					return fmt.Errorf("exercise %d: %w", i, err)
				}
				recs[i] = newRecord(uuid.NewString(), p.Name, wseed, ex)
			}
			logger.Debug("worker done", "seed", wseed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.logger.Info("batch generated", "preset", p.Name, "count", count, "workers", workers)
	return recs, nil
}
