package rule

import (
	"github.com/katalvlaran/soroban/bead"
)

// base carries the behavior every variant shares.
type base struct {
	cfg Config
}

func (b *base) sealed() {}

func (b *base) Config() Config { return b.cfg }

func (b *base) StartState() State { return ZeroState(b.cfg.digitCount) }

func (b *base) StepsCount() int {
	return b.cfg.minSteps + b.cfg.rng.Intn(b.cfg.maxSteps-b.cfg.minSteps+1)
}

func (b *base) FormatAction(a Action) string { return a.String() }

func (b *base) StateToNumber(s State) int { return StateToNumber(s) }

// directActions lists the selected magnitudes realizable on a rod showing
// current: magnitudes 1–5 as single gestures, 6–9 through their bridging
// formula. Ascending magnitude, positive before negative.
func (b *base) directActions(current int, first bool) []Action {
	if !bead.InRange(current) {
		return nil
	}
	signs := b.cfg.Signs(first)
	var out []Action
	for _, m := range b.cfg.digits {
		for _, s := range signs {
			v := s * m
			if !bead.InRange(current + v) {
				continue
			}
			if m <= bead.HeavenValue {
				if bead.CanMove(current, v) {
					out = append(out, Simple(v))
				}
				continue
			}
			if f, ok := bead.Bridge(current, v); ok {
				out = append(out, Compound(v, f))
			}
		}
	}
	return out
}

func (b *base) ApplyAction(digit int, a Action) (int, error) {
	if !bead.InRange(digit) {
		return digit, illegalf(methodApplyAction, "rod shows %d", digit)
	}
	if a.Value == 0 {
		return digit, illegalf(methodApplyAction, "zero move")
	}
	if !a.IsCompound() {
		if a.Magnitude() > bead.HeavenValue {
			return digit, illegalf(methodApplyAction, "%+d is not a single gesture", a.Value)
		}
		next := digit + a.Value
		if !bead.InRange(next) {
			return digit, illegalf(methodApplyAction, "%d%+d leaves [0,9]", digit, a.Value)
		}
		return next, nil
	}
	if !bead.Decomposes(a.Value, a.Formula) {
		return digit, illegalf(methodApplyAction, "formula %v is not a 5-based form of %+d", a.Formula, a.Value)
	}
	next, ok := bead.Replay(digit, a.Formula)
	if !ok {
		return digit, illegalf(methodApplyAction, "%d through %v leaves [0,9]", digit, a.Formula)
	}
	return next, nil
}

func (b *base) ApplyStep(s State, moves []Move) (State, error) {
	out := s.Clone()
	seen := make(map[int]bool, len(moves))
	for _, m := range moves {
		if m.Position < 0 || m.Position >= len(out) {
			return nil, illegalf(methodApplyStep, "position %d outside %d rods", m.Position, len(out))
		}
		if seen[m.Position] {
			return nil, illegalf(methodApplyStep, "position %d moved twice", m.Position)
		}
		seen[m.Position] = true
		next, err := b.ApplyAction(out[m.Position], m.Action)
		if err != nil {
			return nil, err
		}
		out[m.Position] = next
	}
	return out, nil
}

// CheckMove reports whether a is physically realizable on a rod showing
// digit: a simple move must be one legal gesture, a compound move must be
// legal gesture by gesture. ApplyAction only checks shape and range.
func CheckMove(digit int, a Action) error {
	if a.IsCompound() {
		if !bead.Decomposes(a.Value, a.Formula) {
			return illegalf(methodCheckMove, "formula %v is not a 5-based form of %+d", a.Formula, a.Value)
		}
		if _, ok := bead.Walk(digit, a.Formula); !ok {
			return illegalf(methodCheckMove, "%v cannot be moved on a rod showing %d", a.Formula, digit)
		}
		return nil
	}
	if !bead.CanMove(digit, a.Value) {
		return illegalf(methodCheckMove, "%+d cannot be moved on a rod showing %d", a.Value, digit)
	}
	return nil
}
