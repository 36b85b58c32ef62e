package rule

import "fmt"

// Base is the positional base of the frame.
const Base = 10

// MaxDigitCount bounds the frame width so that every State fits an int.
const MaxDigitCount = 9

// Pow10 returns 10^n for n ≥ 0.
func Pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= Base
	}
	return p
}

// ZeroState returns the canonical start of an exercise on n rods.
func ZeroState(n int) State {
	return make(State, n)
}

// StateToNumber returns Σ s[i]·10^i.
func StateToNumber(s State) int {
	total := 0
	for i := len(s) - 1; i >= 0; i-- {
		total = total*Base + s[i]
	}
	return total
}

// NumberToDigits splits x into n little-endian digits. x must lie in [0, 10^n).
func NumberToDigits(x, n int) (State, error) {
	if n < 1 || n > MaxDigitCount {
		return nil, fmt.Errorf("%s: width %d not in [1,%d]: %w", methodNumberToDigits, n, MaxDigitCount, ErrOutOfRange)
	}
	if x < 0 || x >= Pow10(n) {
		return nil, fmt.Errorf("%s: %d does not fit %d digits: %w", methodNumberToDigits, x, n, ErrOutOfRange)
	}
	s := make(State, n)
	for i := 0; i < n; i++ {
		s[i] = x % Base
		x /= Base
	}
	return s, nil
}

// ClosingRange returns the inclusive range an exercise answer must fall in.
// Multi-digit exercises without combined levels must keep every rod in use,
// i.e. the most significant digit nonzero.
func ClosingRange(digitCount int, combineLevels bool) (lo, hi int) {
	hi = Pow10(digitCount) - 1
	if digitCount > 1 && !combineLevels {
		lo = Pow10(digitCount - 1)
	}
	return lo, hi
}
