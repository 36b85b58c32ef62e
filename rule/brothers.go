// SPDX-License-Identifier: MIT
// Package: soroban/rule
//
// brothers.go: the Brothers rule: magnitudes 1–4 through the heaven bead.
//
// On a rod a brothers move and a direct move of the same signed magnitude are
// never both legal, so the bias toward the technique is applied across the
// offered set: when any brothers form is legal, with probability
// BrothersPreference only brothers forms are offered. Every offered action is
// physically legal either way.

package rule

import (
	"slices"

	"github.com/katalvlaran/soroban/bead"
)

// BrothersRule offers the detour-through-5 form of magnitudes 1–4 alongside
// the direct moves and requires at least one trained detour per exercise.
type BrothersRule struct {
	base
}

// Kind returns KindBrothers.
func (r *BrothersRule) Kind() Kind { return KindBrothers }

// AvailableActions returns direct and brothers moves legal on a rod showing
// current, possibly narrowed to brothers forms only (see file comment).
func (r *BrothersRule) AvailableActions(current int, first bool, _ int) []Action {
	direct := r.directActions(current, first)
	brothers := r.brothersActions(current, first)
	if len(brothers) == 0 {
		return direct
	}
	if r.cfg.rng.Float64() < r.cfg.brothersPreference {
		return brothers
	}
	return append(direct, brothers...)
}

// brothersActions lists the brothers forms of magnitudes that are both
// selected and trained.
func (r *BrothersRule) brothersActions(current int, first bool) []Action {
	if !bead.InRange(current) {
		return nil
	}
	signs := r.cfg.Signs(first)
	var out []Action
	for _, m := range r.cfg.digits {
		if m >= bead.HeavenValue || !slices.Contains(r.cfg.brothersDigits, m) {
			continue
		}
		for _, s := range signs {
			if f, ok := bead.Brother(current, s*m); ok {
				out = append(out, Compound(s*m, f))
			}
		}
	}
	return out
}

// ValidateExample applies the shared clauses, then requires a compound move
// whose magnitude is a trained brothers digit.
func (r *BrothersRule) ValidateExample(ex Example) error {
	if err := r.validateCommon(ex); err != nil {
		return err
	}
	for _, st := range ex.Steps {
		for _, m := range st.Moves {
			a := m.Action
			if a.IsCompound() && a.Magnitude() < bead.HeavenValue &&
				bead.Decomposes(a.Value, a.Formula) && slices.Contains(r.cfg.brothersDigits, a.Magnitude()) {
				return nil
			}
		}
	}
	return rejectf(methodValidate, "no brothers move among %v", r.cfg.brothersDigits)
}
