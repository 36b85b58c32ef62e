package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soroban/rule"
)

func TestWeightedIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		require.Equal(t, 1, WeightedIndex(rng, []float64{0, 1, 0}))
	}
	require.Equal(t, -1, WeightedIndex(rng, []float64{0, 0}))
	require.Equal(t, -1, WeightedIndex(rng, nil))

	hits := 0
	const draws = 20000
	for i := 0; i < draws; i++ {
		if WeightedIndex(rng, []float64{1, 3}) == 1 {
			hits++
		}
	}
	share := float64(hits) / draws
	require.InDelta(t, 0.75, share, 0.03)
}

func TestTrimReplaysKeptSteps(t *testing.T) {
	cfg, err := rule.NewConfig(rule.WithSteps(1, 2), rule.WithSeed(1))
	require.NoError(t, err)
	r, err := rule.New(rule.KindUnified, cfg)
	require.NoError(t, err)
	g, err := New(r)
	require.NoError(t, err)

	var steps []rule.Step
	cur := r.StartState()
	for _, v := range []int{3, 1, -2} {
		moves := []rule.Move{{Action: rule.Simple(v)}}
		next, err := r.ApplyStep(cur, moves)
		require.NoError(t, err)
		steps = append(steps, rule.Step{Moves: moves, From: cur, To: next})
		cur = next
	}
	ex, err := g.trim(rule.Example{Start: r.StartState(), Steps: steps, Answer: cur})
	require.NoError(t, err)
	require.Len(t, ex.Steps, 2)
	require.Equal(t, rule.State{4}, ex.Answer)
	require.NoError(t, r.ValidateExample(ex))
}

func TestCheckLevels(t *testing.T) {
	ex := rule.Example{
		Start: rule.State{0, 0},
		Steps: []rule.Step{{To: rule.State{1, 1}}, {To: rule.State{3, 0}}},
	}
	require.True(t, errors.Is(checkLevels(ex), rule.ErrValidationFailed))
	ex.Steps = ex.Steps[:1]
	require.NoError(t, checkLevels(ex))
}
