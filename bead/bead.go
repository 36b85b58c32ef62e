// SPDX-License-Identifier: MIT
// Package: soroban/bead
//
// bead.go: digit decomposition, simple-move legality and compound formulas.

package bead

// Rod geometry.
const (
	// MinValue is the smallest value a rod can show.
	MinValue = 0
	// MaxValue is the largest value a rod can show.
	MaxValue = 9
	// HeavenValue is the worth of the upper bead.
	HeavenValue = 5
	// EarthBeads is the number of lower beads, worth 1 each.
	EarthBeads = 4
	// MaxBridge is the largest magnitude a compound move may carry.
	MaxBridge = 9
)

// InRange reports whether d is a value a rod can show.
func InRange(d int) bool {
	return d >= MinValue && d <= MaxValue
}

// Split decomposes d into the heaven flag (0 or 1) and the number of engaged
// earth beads. The result is undefined for values outside [0,9].
func Split(d int) (upper, lower int) {
	if d >= HeavenValue {
		return 1, d - HeavenValue
	}
	return 0, d
}

// CanMove reports whether delta is realizable on a rod showing d with a single
// gesture: magnitudes 1–4 need that many free (adding) or engaged (subtracting)
// earth beads, magnitude 5 toggles the heaven bead and needs it in the opposite
// position. Any other magnitude is never a single gesture.
func CanMove(d, delta int) bool {
	if !InRange(d) || delta == 0 {
		return false
	}
	upper, lower := Split(d)
	m := abs(delta)
	switch {
	case m < HeavenValue:
		if delta > 0 {
			return EarthBeads-lower >= m
		}
		return lower >= m
	case m == HeavenValue:
		if delta > 0 {
			return upper == 0
		}
		return upper == 1
	}
	return false
}

// Walk applies formula to d one micro step at a time, requiring every micro step
// to be a legal single gesture. It returns the final value and false on the first
// illegal gesture.
func Walk(d int, formula []int) (int, bool) {
	for _, s := range formula {
		if !CanMove(d, s) {
			return d, false
		}
		d += s
	}
	return d, true
}

// Replay applies formula to d requiring only that every partial value stays in
// [0,9]. It is the acceptance-side counterpart of Walk.
func Replay(d int, formula []int) (int, bool) {
	if !InRange(d) {
		return d, false
	}
	for _, s := range formula {
		d += s
		if !InRange(d) {
			return d, false
		}
	}
	return d, true
}

// Bridge returns the micro-step formula realizing value (|value| ∈ [6,9]) on a
// rod showing d: a heaven toggle of ±5 and an earth adjustment of ±(|value|−5).
// The heaven-first ordering is tried before the earth-first one; the first
// ordering whose every gesture is legal is returned.
func Bridge(d, value int) ([]int, bool) {
	m := abs(value)
	if m <= HeavenValue || m > MaxBridge {
		return nil, false
	}
	s := sign(value)
	return firstLegal(d, s*HeavenValue, s*(m-HeavenValue))
}

// Brother returns the detour-through-5 formula realizing value (|value| ∈ [1,4])
// on a rod showing d: a heaven toggle of ±5 and a compensating earth move of
// ∓(5−|value|). As with Bridge the heaven-first ordering wins ties.
func Brother(d, value int) ([]int, bool) {
	m := abs(value)
	if m == 0 || m >= HeavenValue {
		return nil, false
	}
	s := sign(value)
	return firstLegal(d, s*HeavenValue, -s*Complement(m))
}

// Decomposes reports whether formula is a technique form of value, in either
// order: (±5, ±(m−5)) for bridging magnitudes 6–9, (±5, ∓(5−m)) for brothers
// magnitudes 1–4. It says nothing about the rod the formula is applied to.
func Decomposes(value int, formula []int) bool {
	if len(formula) != 2 {
		return false
	}
	m, s := abs(value), sign(value)
	var earth int
	switch {
	case m > HeavenValue && m <= MaxBridge:
		earth = s * (m - HeavenValue)
	case m > 0 && m < HeavenValue:
		earth = -s * Complement(m)
	default:
		return false
	}
	heaven := s * HeavenValue
	return (formula[0] == heaven && formula[1] == earth) ||
		(formula[0] == earth && formula[1] == heaven)
}

// Complement returns the earth partner of a brothers move: 4↔1, 3↔2.
func Complement(m int) int {
	return HeavenValue - abs(m)
}

func firstLegal(d, heaven, earth int) ([]int, bool) {
	orders := [2][2]int{{heaven, earth}, {earth, heaven}}
	for _, f := range orders {
		if _, ok := Walk(d, f[:]); ok {
			return []int{f[0], f[1]}, true
		}
	}
	return nil, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}
