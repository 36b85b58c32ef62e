// SPDX-License-Identifier: MIT
// Package: soroban/multidigit
//
// multidigit.go: step-by-step construction of multi-digit numbers.

package multidigit

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/soroban/generator"
	"github.com/katalvlaran/soroban/rule"
)

// Generator builds examples whose steps are multi-digit numbers.
type Generator struct {
	base rule.Rule
	cfg  rule.Config

	maxDigitCount        int
	variableDigitCounts  bool
	duplicateProbability float64
	maxDuplicates        int
	zeroDigitProbability float64
	maxZeroDigits        int
	stepAttempts         int
	attempts             int
	logger               *slog.Logger
}

// session holds the example-wide counters of one GenerateExample call.
type session struct {
	duplicates int
	zeros      int
}

// New returns a Generator applying base on every rod.
func New(base rule.Rule, opts ...Option) (*Generator, error) {
	if base == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilRule)
	}
	cfg := base.Config()
	g := &Generator{
		base:                 base,
		cfg:                  cfg,
		maxDigitCount:        max(cfg.DigitCount(), minDigitCount),
		duplicateProbability: defaultDuplicateProbability,
		maxDuplicates:        defaultMaxDuplicates,
		zeroDigitProbability: defaultZeroDigitProbability,
		maxZeroDigits:        defaultMaxZeroDigits,
		stepAttempts:         defaultStepAttempts,
		attempts:             defaultAttempts,
		logger:               slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Rule returns the base rule.
func (g *Generator) Rule() rule.Rule { return g.base }

// MaxDigitCount returns the frame width.
func (g *Generator) MaxDigitCount() int { return g.maxDigitCount }

// Generate retries GenerateExample and ValidateExample until a candidate
// passes, or returns generator.ErrGenerationExhausted.
func (g *Generator) Generate() (rule.Example, error) {
	var last error
	for attempt := 1; attempt <= g.attempts; attempt++ {
		ex, err := g.GenerateExample()
		if err == nil {
			err = g.ValidateExample(ex)
		}
		if err == nil {
			g.logger.Debug("multi-digit example generated",
				"attempt", attempt,
				"steps", len(ex.Steps),
				"answer", ex.Answer.Number())
			return ex, nil
		}
		last = err
		g.logger.Debug("multi-digit attempt rejected", "attempt", attempt, "error", err)
	}
	g.logger.Warn("multi-digit generation exhausted", "attempts", g.attempts)
	return rule.Example{}, fmt.Errorf("%s: %d attempts: %w: %w",
		methodGenerate, g.attempts, generator.ErrGenerationExhausted, last)
}

// GenerateExample builds one candidate of StepsCount steps. Session counters
// start at zero on every call.
func (g *Generator) GenerateExample() (rule.Example, error) {
	s := &session{}
	start := rule.ZeroState(g.maxDigitCount)
	cur := start
	count := g.base.StepsCount()
	steps := make([]rule.Step, 0, count)

	for i := 0; i < count; i++ {
		st, err := g.buildStep(cur, i == 0, s)
		if err != nil {
			return rule.Example{}, fmt.Errorf("%s: step %d: %w", methodGenerateExample, i, err)
		}
		steps = append(steps, st)
		cur = st.To
	}
	return rule.Example{Start: start, Steps: steps, Answer: cur}, nil
}

// buildStep runs the inner retry for one step and commits the session
// counters of the accepted fill only.
func (g *Generator) buildStep(cur rule.State, first bool, s *session) (rule.Step, error) {
	for try := 0; try < g.stepAttempts; try++ {
		width := g.pickWidth(first)
		sign := g.pickSign(first)
		f, ok := g.fill(cur, width, sign, first, s)
		if !ok {
			continue
		}
		next, ok := g.checkFill(cur, f, s)
		if !ok {
			continue
		}
		s.zeros += f.zeros
		s.duplicates += f.duplicates
		return rule.Step{Moves: f.moves, From: cur, To: next}, nil
	}
	return rule.Step{}, fmt.Errorf("%d tries: %w", g.stepAttempts, ErrStepExhausted)
}

// pickWidth returns the number of rods the step occupies.
func (g *Generator) pickWidth(first bool) int {
	if first || !g.variableDigitCounts || g.maxDigitCount == 1 {
		return g.maxDigitCount
	}
	weights := make([]float64, g.maxDigitCount)
	for w := 1; w <= g.maxDigitCount; w++ {
		weights[w-1] = float64(w * w)
	}
	return generator.WeightedIndex(g.cfg.Rand(), weights) + 1
}

func (g *Generator) pickSign(first bool) int {
	signs := g.cfg.Signs(first)
	return signs[g.cfg.Rand().Intn(len(signs))]
}

// stepFill is a candidate step before its checks.
type stepFill struct {
	moves      []rule.Move
	zeros      int
	duplicates int
}

// fill chooses a move for each of the lowest width rods, most significant
// first. The leading rod always moves.
func (g *Generator) fill(cur rule.State, width, sign int, first bool, s *session) (stepFill, bool) {
	rng := g.cfg.Rand()
	allowDuplicate := s.duplicates < g.maxDuplicates && rng.Float64() < g.duplicateProbability
	var (
		f    stepFill
		used []int
	)
	for p := width - 1; p >= 0; p-- {
		leading := p == width-1
		zeroAllowed := !leading && s.zeros+f.zeros < g.maxZeroDigits
		if zeroAllowed && rng.Float64() < g.zeroDigitProbability {
			f.zeros++
			continue
		}

		var acts []rule.Action
		for _, a := range g.base.AvailableActions(cur[p], first, p) {
			if a.Sign() != sign || a.Magnitude() == 0 {
				continue
			}
			if slices.Contains(used, a.Magnitude()) && !(allowDuplicate && f.duplicates == 0) {
				continue
			}
			acts = append(acts, a)
		}
		if len(acts) == 0 {
			if zeroAllowed {
				f.zeros++
				continue
			}
			return stepFill{}, false
		}

		a := acts[rng.Intn(len(acts))]
		if slices.Contains(used, a.Magnitude()) {
			f.duplicates++
		}
		used = append(used, a.Magnitude())
		f.moves = append(f.moves, rule.Move{Position: p, Action: a})
	}
	return f, true
}

// checkFill validates a candidate step: nonzero value, the example-wide zero
// cap, and every rod in [0,9] after applying it.
func (g *Generator) checkFill(cur rule.State, f stepFill, s *session) (rule.State, bool) {
	if len(f.moves) == 0 {
		return nil, false
	}
	if s.zeros+f.zeros > g.maxZeroDigits {
		return nil, false
	}
	st := rule.Step{Moves: f.moves}
	if st.Value() == 0 {
		return nil, false
	}
	next, err := g.base.ApplyStep(cur, f.moves)
	if err != nil {
		return nil, false
	}
	return next, true
}

// ValidateExample accepts ex iff its start is all zeros, its first step is
// positive, every move is a legal bead move on its rod, replaying every step
// keeps each rod in [0,9] and lands where the step says, and the replayed
// value equals the declared answer.
func (g *Generator) ValidateExample(ex rule.Example) error {
	if !ex.Start.Equal(rule.ZeroState(g.maxDigitCount)) {
		return rejectf("start %v is not %d zeros", ex.Start, g.maxDigitCount)
	}
	if len(ex.Steps) == 0 {
		return rejectf("no steps")
	}
	if !ex.Steps[0].Positive() {
		return rejectf("first step is not positive")
	}
	cur := ex.Start
	for i, st := range ex.Steps {
		if st.Value() == 0 {
			return rejectf("step %d is zero", i)
		}
		for _, m := range st.Moves {
			if m.Action.Sign() != st.Sign() {
				return rejectf("step %d mixes signs", i)
			}
		}
		if !st.From.Equal(cur) {
			return rejectf("step %d starts at %v, replay is at %v", i, st.From, cur)
		}
		for _, m := range st.Moves {
			if m.Position < 0 || m.Position >= len(cur) {
				continue
			}
			if err := rule.CheckMove(cur[m.Position], m.Action); err != nil {
				return rejectf("step %d rod %d: %v", i, m.Position, err)
			}
		}
		next, err := g.base.ApplyStep(cur, st.Moves)
		if err != nil {
			return rejectf("step %d: %v", i, err)
		}
		if !st.To.Equal(next) {
			return rejectf("step %d ends at %v, replay gives %v", i, st.To, next)
		}
		cur = next
	}
	if got, want := cur.Number(), ex.Answer.Number(); got != want {
		return rejectf("answer %d, replay gives %d", want, got)
	}
	return nil
}

func rejectf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", methodValidate, fmt.Sprintf(format, args...), rule.ErrValidationFailed)
}
