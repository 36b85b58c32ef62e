package rule_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/soroban/rule"
)

// UnifiedSuite covers the physics shared by every variant through the
// Unified rule.
type UnifiedSuite struct {
	suite.Suite
	r rule.Rule
}

func (s *UnifiedSuite) SetupTest() {
	s.r = mustRule(s.T(), rule.KindUnified, rule.WithDigits(1, 2, 3, 4), rule.WithSteps(1, 6))
}

func (s *UnifiedSuite) TestStartState() {
	require.Equal(s.T(), rule.State{0}, s.r.StartState())

	wide := mustRule(s.T(), rule.KindUnified, rule.WithDigitCount(3))
	require.Equal(s.T(), rule.State{0, 0, 0}, wide.StartState())
}

func (s *UnifiedSuite) TestStepsCountWithinBounds() {
	for i := 0; i < 200; i++ {
		n := s.r.StepsCount()
		require.GreaterOrEqual(s.T(), n, 1)
		require.LessOrEqual(s.T(), n, 6)
	}
}

func (s *UnifiedSuite) TestFirstActionsArePositive() {
	got := s.r.AvailableActions(0, true, 0)
	require.Equal(s.T(), []int{1, 2, 3, 4}, values(got))
}

func (s *UnifiedSuite) TestZeroRodExcludesNegatives() {
	got := s.r.AvailableActions(0, false, 0)
	for _, a := range got {
		require.Positive(s.T(), a.Value)
	}
}

func (s *UnifiedSuite) TestFullEarthOnlySubtracts() {
	got := s.r.AvailableActions(4, false, 0)
	require.Equal(s.T(), []int{-1, -2, -3, -4}, values(got))
}

func (s *UnifiedSuite) TestBridgingActionsCarryFormula() {
	r := mustRule(s.T(), rule.KindUnified, rule.WithDigits(1, 5, 6))
	got := r.AvailableActions(0, true, 0)
	want := []rule.Action{rule.Simple(1), rule.Simple(5), rule.Compound(6, []int{5, 1})}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
}

func (s *UnifiedSuite) TestOnlyAdditionStallsOnFullEarth() {
	r := mustRule(s.T(), rule.KindUnified, rule.WithOnlyAddition())
	require.Empty(s.T(), r.AvailableActions(4, false, 0))
}

func (s *UnifiedSuite) TestApplyAction() {
	got, err := s.r.ApplyAction(3, rule.Simple(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, got)

	got, err = s.r.ApplyAction(0, rule.Compound(6, []int{5, 1}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, got)

	illegal := []struct {
		digit int
		a     rule.Action
	}{
		{8, rule.Simple(2)},
		{0, rule.Simple(-1)},
		{4, rule.Compound(6, []int{5, 1})},
		{0, rule.Compound(6, []int{5, 2})},
		{3, rule.Simple(0)},
		{10, rule.Simple(-1)},
		{0, rule.Simple(7)},
		{0, rule.Compound(6, []int{3, 3})},
		{1, rule.Compound(1, []int{3, -2})},
	}
	for _, c := range illegal {
		_, err := s.r.ApplyAction(c.digit, c.a)
		require.True(s.T(), errors.Is(err, rule.ErrIllegalTransition), "%d %v: %v", c.digit, c.a, err)
	}
}

func (s *UnifiedSuite) TestApplyStepIsPure() {
	from := rule.State{1, 2}
	to, err := s.r.ApplyStep(from, []rule.Move{
		{Position: 0, Action: rule.Simple(2)},
		{Position: 1, Action: rule.Simple(1)},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), rule.State{3, 3}, to)
	require.Equal(s.T(), rule.State{1, 2}, from)

	_, err = s.r.ApplyStep(from, []rule.Move{{Position: 2, Action: rule.Simple(1)}})
	require.True(s.T(), errors.Is(err, rule.ErrIllegalTransition))

	_, err = s.r.ApplyStep(from, []rule.Move{
		{Position: 0, Action: rule.Simple(1)},
		{Position: 0, Action: rule.Simple(1)},
	})
	require.True(s.T(), errors.Is(err, rule.ErrIllegalTransition))
}

func (s *UnifiedSuite) TestValidateAcceptsReplay() {
	ex := singleExample(s.T(), s.r, rule.Simple(3), rule.Simple(1), rule.Simple(-2))
	require.NoError(s.T(), s.r.ValidateExample(ex))
	require.Equal(s.T(), 2, s.r.StateToNumber(ex.Answer))
}

func (s *UnifiedSuite) TestValidateRejects() {
	good := func() rule.Example {
		return singleExample(s.T(), s.r, rule.Simple(3), rule.Simple(1))
	}
	cases := map[string]func(ex *rule.Example){
		"nonzero start":  func(ex *rule.Example) { ex.Start = rule.State{1} },
		"wrong answer":   func(ex *rule.Example) { ex.Answer = rule.State{3} },
		"wrong to":       func(ex *rule.Example) { ex.Steps[0].To = rule.State{2} },
		"wrong from":     func(ex *rule.Example) { ex.Steps[1].From = rule.State{0} },
		"no steps":       func(ex *rule.Example) { ex.Steps = nil },
		"empty step":     func(ex *rule.Example) { ex.Steps[1].Moves = nil },
		"negative first": func(ex *rule.Example) { ex.Steps[0].Moves[0].Action = rule.Simple(-3) },
		"unselected":     func(ex *rule.Example) { ex.Steps[1].Moves[0].Action = rule.Simple(5) },
	}
	for name, mutate := range cases {
		ex := good()
		mutate(&ex)
		err := s.r.ValidateExample(ex)
		require.True(s.T(), errors.Is(err, rule.ErrValidationFailed), "%s: %v", name, err)
	}
}

func (s *UnifiedSuite) TestValidateStepBounds() {
	r := mustRule(s.T(), rule.KindUnified, rule.WithSteps(3, 3))
	short := singleExample(s.T(), r, rule.Simple(1), rule.Simple(1))
	require.True(s.T(), errors.Is(r.ValidateExample(short), rule.ErrValidationFailed))
	exact := singleExample(s.T(), r, rule.Simple(1), rule.Simple(1), rule.Simple(1))
	require.NoError(s.T(), r.ValidateExample(exact))
}

func (s *UnifiedSuite) TestValidateDirectionRestrictions() {
	add := mustRule(s.T(), rule.KindUnified, rule.WithOnlyAddition(), rule.WithSteps(1, 5))
	ex := singleExample(s.T(), add, rule.Simple(3), rule.Simple(-1))
	require.True(s.T(), errors.Is(add.ValidateExample(ex), rule.ErrValidationFailed))

	sub := mustRule(s.T(), rule.KindUnified, rule.WithOnlySubtraction(), rule.WithSteps(1, 5))
	ex = singleExample(s.T(), sub, rule.Simple(3), rule.Simple(-1), rule.Simple(1))
	require.True(s.T(), errors.Is(sub.ValidateExample(ex), rule.ErrValidationFailed))
	ex = singleExample(s.T(), sub, rule.Simple(4), rule.Simple(-1), rule.Simple(-2))
	require.NoError(s.T(), sub.ValidateExample(ex))
}

func (s *UnifiedSuite) TestValidateClosingRangeWithoutCombinedLevels() {
	r := mustRule(s.T(), rule.KindUnified, rule.WithDigitCount(2), rule.WithCombineLevels(false), rule.WithSteps(1, 3))
	step := func(from rule.State, moves ...rule.Move) rule.Step {
		to, err := r.ApplyStep(from, moves)
		require.NoError(s.T(), err)
		return rule.Step{Moves: moves, From: from, To: to}
	}
	s1 := step(rule.State{0, 0}, rule.Move{Position: 0, Action: rule.Simple(3)}, rule.Move{Position: 1, Action: rule.Simple(1)})
	s2 := step(s1.To, rule.Move{Position: 0, Action: rule.Simple(-1)}, rule.Move{Position: 1, Action: rule.Simple(-1)})
	low := rule.Example{Start: rule.State{0, 0}, Steps: []rule.Step{s1, s2}, Answer: s2.To}
	require.True(s.T(), errors.Is(r.ValidateExample(low), rule.ErrValidationFailed))

	ok := rule.Example{Start: rule.State{0, 0}, Steps: []rule.Step{s1}, Answer: s1.To}
	require.NoError(s.T(), r.ValidateExample(ok))
}

func TestUnifiedSuite(t *testing.T) {
	suite.Run(t, new(UnifiedSuite))
}

func TestNewRejects(t *testing.T) {
	cfg, err := rule.NewConfig()
	require.NoError(t, err)

	_, err = rule.New(rule.KindBridge, cfg)
	require.True(t, errors.Is(err, rule.ErrInvalidConfig))

	_, err = rule.New(rule.Kind(42), cfg)
	require.True(t, errors.Is(err, rule.ErrUnknownKind))

	_, err = rule.New(rule.KindUnified, rule.Config{})
	require.True(t, errors.Is(err, rule.ErrInvalidConfig))
}

func TestParseKind(t *testing.T) {
	for _, k := range []rule.Kind{rule.KindUnified, rule.KindBridge, rule.KindBrothers} {
		got, err := rule.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	got, err := rule.ParseKind(" Bridge ")
	require.NoError(t, err)
	require.Equal(t, rule.KindBridge, got)

	_, err = rule.ParseKind("abacus")
	require.True(t, errors.Is(err, rule.ErrUnknownKind))
	require.Equal(t, "Kind(9)", rule.Kind(9).String())
}
