package rule

import (
	"fmt"
	"slices"
)

// State is the value shown on the frame, one digit per rod, index 0 = ones.
type State []int

// Clone returns an independent copy of s.
func (s State) Clone() State {
	return slices.Clone(s)
}

// Equal reports whether s and o show the same digits on the same rods.
func (s State) Equal(o State) bool {
	return slices.Equal(s, o)
}

// Number returns the decimal value of s.
func (s State) Number() int {
	return StateToNumber(s)
}

// Action is a signed move applied to one rod. Simple actions carry no Formula;
// compound actions carry the ordered micro steps (two signed gestures summing
// to Value) that realize them physically.
type Action struct {
	Value   int   `json:"value"`
	Formula []int `json:"formula,omitempty"`
}

// Simple returns a single-gesture action.
func Simple(v int) Action {
	return Action{Value: v}
}

// Compound returns an action realized by the given micro steps.
func Compound(v int, formula []int) Action {
	return Action{Value: v, Formula: slices.Clone(formula)}
}

// IsCompound reports whether a is realized through micro steps.
func (a Action) IsCompound() bool { return len(a.Formula) > 0 }

// Magnitude returns |Value|.
func (a Action) Magnitude() int {
	if a.Value < 0 {
		return -a.Value
	}
	return a.Value
}

// Sign returns -1, 0 or +1.
func (a Action) Sign() int {
	switch {
	case a.Value > 0:
		return 1
	case a.Value < 0:
		return -1
	}
	return 0
}

// String renders the action as a signed integer ("+3", "-7").
func (a Action) String() string {
	return fmt.Sprintf("%+d", a.Value)
}

// Move binds an action to a rod.
type Move struct {
	Position int    `json:"position"`
	Action   Action `json:"action"`
}

// Step is one exercise step: a set of same-signed moves applied together,
// with the frame value before and after.
type Step struct {
	Moves []Move `json:"moves"`
	From  State  `json:"from"`
	To    State  `json:"to"`
}

// Sign returns the shared sign of the step's moves (0 for an empty step).
func (s Step) Sign() int {
	for _, m := range s.Moves {
		if sg := m.Action.Sign(); sg != 0 {
			return sg
		}
	}
	return 0
}

// Positive reports whether the step adds to the frame.
func (s Step) Positive() bool { return s.Sign() > 0 }

// Value returns the signed number the step adds: the concatenation of the
// move magnitudes by position, carrying the shared sign.
func (s Step) Value() int {
	total := 0
	for _, m := range s.Moves {
		total += m.Action.Magnitude() * Pow10(m.Position)
	}
	return s.Sign() * total
}

// MoveAt returns the move on the given rod, if any.
func (s Step) MoveAt(position int) (Move, bool) {
	for _, m := range s.Moves {
		if m.Position == position {
			return m, true
		}
	}
	return Move{}, false
}

// Example is a generated exercise: the canonical zero start, the steps, and
// the value obtained by replaying every step.
type Example struct {
	Start  State  `json:"start"`
	Steps  []Step `json:"steps"`
	Answer State  `json:"answer"`
}
