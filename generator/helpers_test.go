package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soroban/bead"
	"github.com/katalvlaran/soroban/rule"
)

func newRule(t *testing.T, k rule.Kind, seed int64, opts ...rule.Option) rule.Rule {
	t.Helper()
	cfg, err := rule.NewConfig(append(opts, rule.WithSeed(seed))...)
	require.NoError(t, err)
	r, err := rule.New(k, cfg)
	require.NoError(t, err)
	return r
}

// requireSound checks the invariants every generated example must satisfy:
// canonical zero start, positive first step, every intermediate rod in [0,9],
// and an answer equal to the replay of its steps.
func requireSound(t *testing.T, r rule.Rule, ex rule.Example) {
	t.Helper()
	require.Equal(t, rule.ZeroState(r.Config().DigitCount()), ex.Start)
	require.NotEmpty(t, ex.Steps)
	require.Positive(t, ex.Steps[0].Value())

	cur := ex.Start
	for i, st := range ex.Steps {
		require.Equal(t, cur, st.From, "step %d", i)
		next, err := r.ApplyStep(cur, st.Moves)
		require.NoError(t, err, "step %d", i)
		for p, d := range next {
			require.True(t, bead.InRange(d), "step %d rod %d = %d", i, p, d)
		}
		require.Equal(t, next, st.To, "step %d", i)
		cur = next
	}
	require.Equal(t, cur, ex.Answer)
}
