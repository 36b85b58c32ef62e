package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soroban/rule"
)

// mustRule builds a rule of kind k over the given options with a fixed seed.
func mustRule(t *testing.T, k rule.Kind, opts ...rule.Option) rule.Rule {
	t.Helper()
	cfg, err := rule.NewConfig(append([]rule.Option{rule.WithSeed(7)}, opts...)...)
	require.NoError(t, err)
	r, err := rule.New(k, cfg)
	require.NoError(t, err)
	return r
}

// singleExample replays actions on one rod from zero and returns the example
// exactly as a generator would have assembled it.
func singleExample(t *testing.T, r rule.Rule, actions ...rule.Action) rule.Example {
	t.Helper()
	start := r.StartState()
	cur := start
	steps := make([]rule.Step, 0, len(actions))
	for _, a := range actions {
		moves := []rule.Move{{Position: 0, Action: a}}
		next, err := r.ApplyStep(cur, moves)
		require.NoError(t, err)
		steps = append(steps, rule.Step{Moves: moves, From: cur, To: next})
		cur = next
	}
	return rule.Example{Start: start, Steps: steps, Answer: cur}
}

func values(acts []rule.Action) []int {
	out := make([]int, len(acts))
	for i, a := range acts {
		out[i] = a.Value
	}
	return out
}
