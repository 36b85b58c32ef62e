// SPDX-License-Identifier: MIT
// Package: soroban/generator
//
// options.go: functional options for Generator.
//
// Option constructors panic on meaningless values; Generate never panics.

package generator

import (
	"fmt"
	"log/slog"
)

// DefaultMagnitudeBias is the per-unit weight added to larger magnitudes in
// the single-digit draw: weight = 1 + bias·|m|.
const DefaultMagnitudeBias = 0.3

// Option customizes a Generator.
type Option func(*Generator)

// WithAttempts overrides the attempt budget derived from the rule's Config.
func WithAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("generator: WithAttempts(%d < 1)", n))
	}
	return func(g *Generator) {
		g.attempts = n
	}
}

// WithMagnitudeBias sets the weight bias of the single-digit draw (≥ 0).
func WithMagnitudeBias(bias float64) Option {
	if bias < 0 {
		panic(fmt.Sprintf("generator: WithMagnitudeBias(%g < 0)", bias))
	}
	return func(g *Generator) {
		g.bias = bias
	}
}

// WithLogger routes attempt diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(g *Generator) {
		g.logger = l
	}
}
