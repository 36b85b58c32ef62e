// SPDX-License-Identifier: MIT
// Package: soroban/rule
//
// config.go: the resolved, immutable rule configuration.
//
// Design:
//   • Config is the single source of truth for all rule knobs.
//   • NewConfig applies options in order (later overrides earlier), then checks
//     cross-field consistency and returns ErrInvalidConfig on conflicts.
//   • Accessors return copies; a Config value can be shared freely, except
//     its *rand.Rand, which is not goroutine-safe.
//
// Defaults:
//   • digits          = {1,2,3,4}
//   • steps           = [3,5]
//   • digitCount      = 1
//   • combineLevels   = true
//   • firstPositive   = true
//   • requireBlock    = true (Bridge only)
//   • brothersDigits  = {1,2,3,4}, brothersPreference = 0.8 (Brothers only)
//   • rng             = time-seeded source unless WithSeed/WithRand is given

package rule

import (
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// Config is the resolved configuration shared by a Rule and the generators
// driving it.
type Config struct {
	digits     []int // sorted, unique move magnitudes
	minSteps   int
	maxSteps   int
	digitCount int

	combineLevels     bool
	onlyAddition      bool
	onlySubtraction   bool
	firstMovePositive bool

	// Bridge: target magnitude 6–9 and its earth remainder (target−5).
	target       int
	remainder    int
	requireBlock bool

	// Brothers: magnitudes whose detour through 5 is trained, and the
	// probability of offering only detour forms when any exists.
	brothersDigits     []int
	brothersPreference float64

	rng *rand.Rand
}

const (
	defaultMinSteps           = 3
	defaultMaxSteps           = 5
	defaultDigitCount         = 1
	defaultBrothersPreference = 0.8
)

var (
	defaultDigits         = []int{1, 2, 3, 4}
	defaultBrothersDigits = []int{1, 2, 3, 4}
)

// NewConfig resolves opts over the defaults and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		digits:             slices.Clone(defaultDigits),
		minSteps:           defaultMinSteps,
		maxSteps:           defaultMaxSteps,
		digitCount:         defaultDigitCount,
		combineLevels:      true,
		firstMovePositive:  true,
		requireBlock:       true,
		brothersDigits:     slices.Clone(defaultBrothersDigits),
		brothersPreference: defaultBrothersPreference,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.digits) == 0 {
		return Config{}, fmt.Errorf("%s: no move digits selected: %w", methodNewConfig, ErrInvalidConfig)
	}
	if cfg.minSteps > cfg.maxSteps {
		return Config{}, fmt.Errorf("%s: min steps %d > max steps %d: %w",
			methodNewConfig, cfg.minSteps, cfg.maxSteps, ErrInvalidConfig)
	}
	if cfg.onlyAddition && cfg.onlySubtraction {
		return Config{}, fmt.Errorf("%s: only-addition and only-subtraction are exclusive: %w",
			methodNewConfig, ErrInvalidConfig)
	}
	if cfg.target != 0 {
		cfg.remainder = cfg.target - 5
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg, nil
}

// Digits returns the selectable move magnitudes in ascending order.
func (c Config) Digits() []int { return slices.Clone(c.digits) }

// HasDigit reports whether magnitude m is selectable.
func (c Config) HasDigit(m int) bool {
	_, ok := slices.BinarySearch(c.digits, m)
	return ok
}

// MinSteps returns the minimum exercise length.
func (c Config) MinSteps() int { return c.minSteps }

// MaxSteps returns the maximum exercise length.
func (c Config) MaxSteps() int { return c.maxSteps }

// DigitCount returns the number of rods an exercise uses.
func (c Config) DigitCount() int { return c.digitCount }

// CombineLevels reports whether a multi-digit answer may use fewer rods than
// the configured width.
func (c Config) CombineLevels() bool { return c.combineLevels }

// OnlyAddition reports whether every step must add.
func (c Config) OnlyAddition() bool { return c.onlyAddition }

// OnlySubtraction reports whether every step after the first must subtract.
func (c Config) OnlySubtraction() bool { return c.onlySubtraction }

// FirstMovePositive reports whether the first step is restricted to additions.
func (c Config) FirstMovePositive() bool { return c.firstMovePositive }

// Target returns the bridging magnitude trained by a Bridge rule (0 if unset).
func (c Config) Target() int { return c.target }

// Remainder returns target−5, the earth part of the bridging block.
func (c Config) Remainder() int { return c.remainder }

// RequireBlock reports whether a Bridge exercise must contain the target block.
func (c Config) RequireBlock() bool { return c.requireBlock }

// BrothersDigits returns the magnitudes whose brothers form counts as training.
func (c Config) BrothersDigits() []int { return slices.Clone(c.brothersDigits) }

// BrothersPreference returns the probability of offering only brothers forms.
func (c Config) BrothersPreference() float64 { return c.brothersPreference }

// Rand returns the random source. It is never nil for a Config built by NewConfig.
func (c Config) Rand() *rand.Rand { return c.rng }

// Signs returns the signs a step may carry: the first step is positive when
// firstMovePositive is set, and the only-addition/only-subtraction restrictions
// apply to every other step.
func (c Config) Signs(first bool) []int {
	switch {
	case first && c.firstMovePositive:
		return []int{1}
	case c.onlyAddition:
		return []int{1}
	case c.onlySubtraction && !first:
		return []int{-1}
	}
	return []int{1, -1}
}
