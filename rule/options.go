// SPDX-License-Identifier: MIT
// Package: soroban/rule
//
// options.go: functional options for Config.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless single values
//     (a digit of 12, negative steps, a probability of 1.5).
//   • Cross-field conflicts are reported by NewConfig as ErrInvalidConfig.
//   • Determinism is explicit: WithSeed or WithRand.

package rule

import (
	"fmt"
	"math/rand"
	"slices"
)

// Option customizes a Config before validation.
type Option func(*Config)

// WithDigits selects the move magnitudes (each in [1,9]).
func WithDigits(digits ...int) Option {
	ds := normalizeDigits("WithDigits", digits, 9)
	return func(c *Config) {
		c.digits = ds
	}
}

// WithSteps sets the inclusive range of exercise lengths. Panics unless
// 1 ≤ min; max < min is reported by NewConfig.
func WithSteps(min, max int) Option {
	if min < 1 {
		panic(fmt.Sprintf("rule: WithSteps(min=%d < 1)", min))
	}
	return func(c *Config) {
		c.minSteps, c.maxSteps = min, max
	}
}

// WithDigitCount sets the number of rods, 1..MaxDigitCount.
func WithDigitCount(n int) Option {
	if n < 1 || n > MaxDigitCount {
		panic(fmt.Sprintf("rule: WithDigitCount(%d) not in [1,%d]", n, MaxDigitCount))
	}
	return func(c *Config) {
		c.digitCount = n
	}
}

// WithCombineLevels allows (true) or forbids (false) multi-digit answers that
// use fewer rods than the configured width.
func WithCombineLevels(on bool) Option {
	return func(c *Config) {
		c.combineLevels = on
	}
}

// WithOnlyAddition restricts every step to additions.
func WithOnlyAddition() Option {
	return func(c *Config) {
		c.onlyAddition = true
	}
}

// WithOnlySubtraction restricts every step after the first to subtractions.
func WithOnlySubtraction() Option {
	return func(c *Config) {
		c.onlySubtraction = true
	}
}

// WithFirstMovePositive toggles the first-step restriction to additions.
func WithFirstMovePositive(on bool) Option {
	return func(c *Config) {
		c.firstMovePositive = on
	}
}

// WithBridgeTarget sets the bridging magnitude a Bridge rule trains (6..9).
func WithBridgeTarget(n int) Option {
	if n < 6 || n > 9 {
		panic(fmt.Sprintf("rule: WithBridgeTarget(%d) not in [6,9]", n))
	}
	return func(c *Config) {
		c.target = n
	}
}

// WithRequireBlock toggles whether a Bridge exercise must contain its block.
func WithRequireBlock(on bool) Option {
	return func(c *Config) {
		c.requireBlock = on
	}
}

// WithBrothersDigits selects the magnitudes (each in [1,4]) whose brothers
// form counts toward acceptance.
func WithBrothersDigits(digits ...int) Option {
	ds := normalizeDigits("WithBrothersDigits", digits, 4)
	return func(c *Config) {
		c.brothersDigits = ds
	}
}

// WithBrothersPreference sets the probability in [0,1] of offering only
// brothers forms when any is legal.
func WithBrothersPreference(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("rule: WithBrothersPreference(%g) not in [0,1]", p))
	}
	return func(c *Config) {
		c.brothersPreference = p
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rule: WithRand(nil)")
	}
	return func(c *Config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic random source from seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// normalizeDigits sorts and deduplicates digits, panicking on values outside [1,max].
func normalizeDigits(method string, digits []int, max int) []int {
	ds := slices.Clone(digits)
	for _, d := range ds {
		if d < 1 || d > max {
			panic(fmt.Sprintf("rule: %s(%d) not in [1,%d]", method, d, max))
		}
	}
	slices.Sort(ds)
	return slices.Compact(ds)
}
