package rule_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soroban/rule"
)

// handExample assembles a one-rod example by plain arithmetic, the way an
// external file could carry it, without asking the rule whether the moves
// are legal.
func handExample(actions ...rule.Action) rule.Example {
	cur := rule.State{0}
	steps := make([]rule.Step, 0, len(actions))
	for _, a := range actions {
		next := rule.State{cur[0] + a.Value}
		steps = append(steps, rule.Step{Moves: []rule.Move{{Position: 0, Action: a}}, From: cur, To: next})
		cur = next
	}
	return rule.Example{Start: rule.State{0}, Steps: steps, Answer: cur}
}

func TestValidateRejectsIllegalMoves(t *testing.T) {
	unified := mustRule(t, rule.KindUnified, rule.WithDigits(1, 2, 3, 4, 7), rule.WithSteps(1, 5))
	bridge := mustRule(t, rule.KindBridge, rule.WithDigits(1, 5, 6), rule.WithBridgeTarget(6), rule.WithSteps(1, 5))
	brothers := mustRule(t, rule.KindBrothers, rule.WithSteps(1, 5))

	cases := []struct {
		name string
		r    rule.Rule
		ex   rule.Example
	}{
		{"direct +4 with one free earth bead", unified, handExample(rule.Simple(3), rule.Simple(4))},
		{"simple 7", unified, handExample(rule.Simple(2), rule.Simple(7))},
		{"simple 6 as block", bridge, handExample(rule.Simple(6), rule.Simple(-1))},
		{"6 as 3+3", bridge, handExample(rule.Compound(6, []int{3, 3}), rule.Simple(-1))},
		{"+1 as 3-2", brothers, handExample(rule.Simple(1), rule.Compound(1, []int{3, -2}))},
		{"+4 detour with the heaven bead already down", brothers,
			handExample(rule.Simple(1), rule.Compound(4, []int{5, -1}), rule.Compound(4, []int{5, -1}))},
	}
	for _, c := range cases {
		err := c.r.ValidateExample(c.ex)
		require.True(t, errors.Is(err, rule.ErrValidationFailed), "%s: %v", c.name, err)
	}
}

func TestValidateAcceptsLegalCounterparts(t *testing.T) {
	unified := mustRule(t, rule.KindUnified, rule.WithDigits(1, 2, 3, 4, 7), rule.WithSteps(1, 5))
	require.NoError(t, unified.ValidateExample(handExample(rule.Simple(3), rule.Simple(1))))
	require.NoError(t, unified.ValidateExample(handExample(rule.Simple(2), rule.Compound(7, []int{5, 2}))))

	brothers := mustRule(t, rule.KindBrothers, rule.WithSteps(1, 5))
	require.NoError(t, brothers.ValidateExample(handExample(rule.Simple(1), rule.Compound(4, []int{5, -1}))))
}

func TestCheckMove(t *testing.T) {
	legal := []struct {
		digit int
		a     rule.Action
	}{
		{3, rule.Simple(1)},
		{4, rule.Simple(5)},
		{4, rule.Compound(1, []int{5, -4})},
		{0, rule.Compound(6, []int{1, 5})},
		{9, rule.Compound(-9, []int{-5, -4})},
	}
	for _, c := range legal {
		require.NoError(t, rule.CheckMove(c.digit, c.a), "%d %v", c.digit, c.a)
	}

	illegal := []struct {
		digit int
		a     rule.Action
	}{
		{3, rule.Simple(4)},
		{5, rule.Simple(-1)},
		{5, rule.Simple(5)},
		{0, rule.Simple(7)},
		{4, rule.Compound(6, []int{1, 5})},
		{0, rule.Compound(6, []int{3, 3})},
		{5, rule.Compound(4, []int{5, -1})},
	}
	for _, c := range illegal {
		err := rule.CheckMove(c.digit, c.a)
		require.True(t, errors.Is(err, rule.ErrIllegalTransition), "%d %v: %v", c.digit, c.a, err)
	}
}
