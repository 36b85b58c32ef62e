// SPDX-License-Identifier: MIT
// Package: soroban/multidigit
//
// options.go: functional options for the multi-digit generator.
//
// Defaults:
//   • maxDigitCount        = base rule's digit count, at least 2
//   • variableDigitCounts  = false
//   • duplicateProbability = 0.1, maxDuplicates = 1
//   • zeroDigitProbability = 0.1, maxZeroDigits = 1
//   • stepAttempts = 50, attempts = 100
//
// The probabilities are tuning knobs, not derived values.

package multidigit

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/soroban/rule"
)

const (
	defaultDuplicateProbability = 0.1
	defaultMaxDuplicates        = 1
	defaultZeroDigitProbability = 0.1
	defaultMaxZeroDigits        = 1
	defaultStepAttempts         = 50
	defaultAttempts             = 100
	minDigitCount               = 2
)

// Option customizes a Generator.
type Option func(*Generator)

// WithMaxDigitCount sets the widest number a step may be (1..rule.MaxDigitCount).
func WithMaxDigitCount(n int) Option {
	if n < 1 || n > rule.MaxDigitCount {
		panic(fmt.Sprintf("multidigit: WithMaxDigitCount(%d) not in [1,%d]", n, rule.MaxDigitCount))
	}
	return func(g *Generator) {
		g.maxDigitCount = n
	}
}

// WithVariableDigitCounts lets steps after the first be narrower than the maximum.
func WithVariableDigitCounts(on bool) Option {
	return func(g *Generator) {
		g.variableDigitCounts = on
	}
}

// WithDuplicateProbability sets the per-step chance in [0,1] that a repeated
// magnitude is allowed within the step.
func WithDuplicateProbability(p float64) Option {
	checkProbability("WithDuplicateProbability", p)
	return func(g *Generator) {
		g.duplicateProbability = p
	}
}

// WithMaxDuplicates caps repeated magnitudes per example (≥ 0).
func WithMaxDuplicates(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("multidigit: WithMaxDuplicates(%d < 0)", n))
	}
	return func(g *Generator) {
		g.maxDuplicates = n
	}
}

// WithZeroDigitProbability sets the chance in [0,1] that a non-leading rod is
// left at 0 within a step.
func WithZeroDigitProbability(p float64) Option {
	checkProbability("WithZeroDigitProbability", p)
	return func(g *Generator) {
		g.zeroDigitProbability = p
	}
}

// WithMaxZeroDigits caps zero digits per example (≥ 0).
func WithMaxZeroDigits(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("multidigit: WithMaxZeroDigits(%d < 0)", n))
	}
	return func(g *Generator) {
		g.maxZeroDigits = n
	}
}

// WithStepAttempts sets the inner retry budget per step.
func WithStepAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("multidigit: WithStepAttempts(%d < 1)", n))
	}
	return func(g *Generator) {
		g.stepAttempts = n
	}
}

// WithAttempts sets the outer budget of Generate.
func WithAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("multidigit: WithAttempts(%d < 1)", n))
	}
	return func(g *Generator) {
		g.attempts = n
	}
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("multidigit: WithLogger(nil)")
	}
	return func(g *Generator) {
		g.logger = l
	}
}

func checkProbability(method string, p float64) {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("multidigit: %s(%g) not in [0,1]", method, p))
	}
}
