// SPDX-License-Identifier: MIT
// Package: soroban/rule
//
// rule.go: the Rule contract, the closed set of kinds and the constructor.

package rule

import (
	"fmt"
	"strings"
)

// Rule encapsulates bead-physics legality on one rod and whole-example
// acceptance. The set of implementations is closed (see Kind); values are
// obtained from New.
//
// A Rule is not safe for concurrent use: it draws from its Config's random source.
type Rule interface {
	// Kind identifies the variant.
	Kind() Kind
	// Config returns the resolved configuration.
	Config() Config
	// StartState returns the canonical zero state sized to the digit count.
	StartState() State
	// StepsCount draws an exercise length uniformly from [MinSteps, MaxSteps].
	StepsCount() int
	// AvailableActions returns the legal moves on a rod showing current.
	// first marks the first step of an exercise; position is the rod index.
	AvailableActions(current int, first bool, position int) []Action
	// ApplyAction returns the rod value after a, or ErrIllegalTransition.
	ApplyAction(digit int, a Action) (int, error)
	// ApplyStep applies moves to a copy of s.
	ApplyStep(s State, moves []Move) (State, error)
	// ValidateExample returns nil iff ex is an acceptable exercise.
	ValidateExample(ex Example) error
	// FormatAction renders a move for display.
	FormatAction(a Action) string
	// StateToNumber encodes a state as its decimal value.
	StateToNumber(s State) int

	sealed()
}

// Kind tags a rule variant.
type Kind int

const (
	// KindUnified accepts any selected magnitude 1–9 with no technique requirement.
	KindUnified Kind = iota
	// KindBridge trains one bridging magnitude 6–9 ("friends of 5").
	KindBridge
	// KindBrothers trains the detour through 5 for magnitudes 1–4.
	KindBrothers
)

var kindNames = [...]string{
	KindUnified:  "unified",
	KindBridge:   "bridge",
	KindBrothers: "brothers",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrUnknownKind)
}

// New builds the rule variant k over cfg.
func New(k Kind, cfg Config) (Rule, error) {
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: config was not built by NewConfig: %w", methodNew, ErrInvalidConfig)
	}
	b := base{cfg: cfg}
	switch k {
	case KindUnified:
		return &UnifiedRule{base: b}, nil
	case KindBridge:
		if cfg.target == 0 {
			return nil, fmt.Errorf("%s: bridge rule needs a target (WithBridgeTarget): %w", methodNew, ErrInvalidConfig)
		}
		return &BridgeRule{base: b}, nil
	case KindBrothers:
		if len(cfg.brothersDigits) == 0 {
			return nil, fmt.Errorf("%s: brothers rule needs brothers digits: %w", methodNew, ErrInvalidConfig)
		}
		return &BrothersRule{base: b}, nil
	}
	return nil, fmt.Errorf("%s: %v: %w", methodNew, k, ErrUnknownKind)
}
