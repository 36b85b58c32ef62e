// SPDX-License-Identifier: MIT
// Package: soroban/rule
//
// validate.go: acceptance shared by every variant.
//
// An example is accepted only if every clause holds; the first violated
// clause is reported as ErrValidationFailed with a short reason.

package rule

import "github.com/katalvlaran/soroban/bead"

// validateCommon checks the baseline clauses:
//  1. start is the canonical zero state of the configured width;
//  2. the step count lies in [minSteps, maxSteps];
//  3. the first step is positive;
//  4. every step is non-empty, same-signed, uses selected magnitudes, and
//     honors the addition/subtraction restrictions;
//  5. each step starts where the replay is and ends where applying it leads,
//     every move is a legal bead gesture (or legal gesture sequence) on the
//     rod it touches, and every rod stays inside [0,9];
//  6. the declared answer equals the replay;
//  7. the answer lies in the closing range.
func (b *base) validateCommon(ex Example) error {
	n := b.cfg.digitCount
	if !ex.Start.Equal(ZeroState(n)) {
		return rejectf(methodValidate, "start %v is not %d zeros", ex.Start, n)
	}
	if len(ex.Steps) < b.cfg.minSteps || len(ex.Steps) > b.cfg.maxSteps {
		return rejectf(methodValidate, "%d steps not in [%d,%d]", len(ex.Steps), b.cfg.minSteps, b.cfg.maxSteps)
	}
	if !ex.Steps[0].Positive() {
		return rejectf(methodValidate, "first step is not positive")
	}

	cur := ex.Start
	for i, st := range ex.Steps {
		if err := b.checkStepShape(i, st); err != nil {
			return err
		}
		if !st.From.Equal(cur) {
			return rejectf(methodValidate, "step %d starts at %v, replay is at %v", i, st.From, cur)
		}
		for _, m := range st.Moves {
			if m.Position < 0 || m.Position >= len(cur) {
				continue
			}
			if err := CheckMove(cur[m.Position], m.Action); err != nil {
				return rejectf(methodValidate, "step %d rod %d: %v", i, m.Position, err)
			}
		}
		next, err := b.ApplyStep(cur, st.Moves)
		if err != nil {
			return rejectf(methodValidate, "step %d: %v", i, err)
		}
		if !st.To.Equal(next) {
			return rejectf(methodValidate, "step %d ends at %v, replay gives %v", i, st.To, next)
		}
		cur = next
	}

	if !ex.Answer.Equal(cur) {
		return rejectf(methodValidate, "answer %v, replay gives %v", ex.Answer, cur)
	}
	lo, hi := ClosingRange(n, b.cfg.combineLevels)
	if v := StateToNumber(cur); v < lo || v > hi {
		return rejectf(methodValidate, "answer %d not in [%d,%d]", v, lo, hi)
	}
	return nil
}

func (b *base) checkStepShape(i int, st Step) error {
	if len(st.Moves) == 0 {
		return rejectf(methodValidate, "step %d is empty", i)
	}
	sign := st.Sign()
	for _, m := range st.Moves {
		if m.Action.Sign() != sign {
			return rejectf(methodValidate, "step %d mixes signs", i)
		}
		if !b.cfg.HasDigit(m.Action.Magnitude()) {
			return rejectf(methodValidate, "step %d uses unselected magnitude %d", i, m.Action.Magnitude())
		}
		if m.Action.IsCompound() && len(m.Action.Formula) != 2 {
			return rejectf(methodValidate, "step %d carries a %d-part formula", i, len(m.Action.Formula))
		}
	}
	if i == 0 {
		return nil
	}
	if b.cfg.onlyAddition && sign < 0 {
		return rejectf(methodValidate, "step %d subtracts in an addition-only exercise", i)
	}
	if b.cfg.onlySubtraction && sign > 0 {
		return rejectf(methodValidate, "step %d adds in a subtraction-only exercise", i)
	}
	return nil
}

// containsBlock reports whether some rod receives the bridging block for
// target: a compound ±target move, or two consecutive same-signed simple moves
// (±5, ±remainder) in either order. Moves are assumed to have passed
// CheckMove.
func containsBlock(ex Example, target, remainder int) bool {
	for p := range ex.Start {
		prev := 0
		for _, st := range ex.Steps {
			m, ok := st.MoveAt(p)
			if !ok {
				prev = 0
				continue
			}
			a := m.Action
			if a.IsCompound() {
				if a.Magnitude() == target {
					return true
				}
				prev = 0
				continue
			}
			if prev != 0 && (prev > 0) == (a.Value > 0) {
				pm, am := abs(prev), a.Magnitude()
				if (pm == bead.HeavenValue && am == remainder) || (pm == remainder && am == bead.HeavenValue) {
					return true
				}
			}
			prev = a.Value
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
