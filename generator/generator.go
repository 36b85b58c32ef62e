// SPDX-License-Identifier: MIT
// Package: soroban/generator
//
// generator.go: the bounded-retry orchestrator.

package generator

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/soroban/rule"
)

// Attempt budgets by digit count.
const (
	singleDigitAttempts = 100
	fewDigitsAttempts   = 200
	manyDigitsAttempts  = 250
	fewDigitsMax        = 3
)

// Budget returns the attempt budget for an exercise on digitCount rods.
func Budget(digitCount int, combineLevels bool) int {
	var n int
	switch {
	case digitCount <= 1:
		n = singleDigitAttempts
	case digitCount <= fewDigitsMax:
		n = fewDigitsAttempts
	default:
		n = manyDigitsAttempts
	}
	if digitCount > 1 && !combineLevels {
		n *= 2
	}
	return n
}

// Generator produces validated examples from one Rule.
type Generator struct {
	rule     rule.Rule
	cfg      rule.Config
	attempts int
	bias     float64
	logger   *slog.Logger
}

// New returns a Generator over r.
func New(r rule.Rule, opts ...Option) (*Generator, error) {
	if r == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilRule)
	}
	cfg := r.Config()
	g := &Generator{
		rule:     r,
		cfg:      cfg,
		attempts: Budget(cfg.DigitCount(), cfg.CombineLevels()),
		bias:     DefaultMagnitudeBias,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Rule returns the rule the generator draws from.
func (g *Generator) Rule() rule.Rule { return g.rule }

// Attempts returns the attempt budget.
func (g *Generator) Attempts() int { return g.attempts }

// ValidateExample delegates to the rule.
func (g *Generator) ValidateExample(ex rule.Example) error {
	return g.rule.ValidateExample(ex)
}

// Generate returns the first candidate that clears every check, or
// ErrGenerationExhausted once the budget is spent.
func (g *Generator) Generate() (rule.Example, error) {
	var last error
	for attempt := 1; attempt <= g.attempts; attempt++ {
		ex, err := g.attempt()
		if err == nil {
			g.logger.Debug("example generated",
				"rule", g.rule.Kind().String(),
				"attempt", attempt,
				"steps", len(ex.Steps),
				"answer", ex.Answer.Number())
			return ex, nil
		}
		last = err
		g.logger.Debug("attempt rejected", "attempt", attempt, "error", err)
	}
	g.logger.Warn("generation exhausted", "rule", g.rule.Kind().String(), "attempts", g.attempts)
	return rule.Example{}, fmt.Errorf("%s: %s rule, %d attempts: %w: %w",
		methodGenerate, g.rule.Kind(), g.attempts, ErrGenerationExhausted, last)
}

// attempt builds, trims and checks one candidate.
func (g *Generator) attempt() (rule.Example, error) {
	var (
		ex  rule.Example
		err error
	)
	if g.cfg.DigitCount() > 1 {
		ex, err = g.buildVector()
	} else {
		ex, err = g.buildSingle()
	}
	if err != nil {
		return rule.Example{}, err
	}
	if ex, err = g.trim(ex); err != nil {
		return rule.Example{}, err
	}
	if g.cfg.DigitCount() > 1 && !g.cfg.CombineLevels() {
		if err = checkLevels(ex); err != nil {
			return rule.Example{}, err
		}
	}
	if err = g.rule.ValidateExample(ex); err != nil {
		return rule.Example{}, err
	}
	return ex, nil
}

// trim cuts a candidate longer than MaxSteps and re-derives its answer by
// replaying the kept steps.
func (g *Generator) trim(ex rule.Example) (rule.Example, error) {
	if len(ex.Steps) <= g.cfg.MaxSteps() {
		return ex, nil
	}
	ex.Steps = ex.Steps[:g.cfg.MaxSteps()]
	cur := ex.Start
	for _, st := range ex.Steps {
		next, err := g.rule.ApplyStep(cur, st.Moves)
		if err != nil {
			return rule.Example{}, err
		}
		cur = next
	}
	ex.Answer = cur
	return ex, nil
}

// checkLevels requires every intermediate state of a non-combined multi-digit
// candidate to keep its most significant rod in use.
func checkLevels(ex rule.Example) error {
	top := len(ex.Start) - 1
	for i, st := range ex.Steps {
		if st.To[top] == 0 {
			return fmt.Errorf("%s: step %d drops to %d rods: %w",
				methodGenerate, i, top, rule.ErrValidationFailed)
		}
	}
	return nil
}
