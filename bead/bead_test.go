package bead_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soroban/bead"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		d, upper, lower int
	}{
		{0, 0, 0},
		{4, 0, 4},
		{5, 1, 0},
		{7, 1, 2},
		{9, 1, 4},
	}
	for _, c := range cases {
		u, l := bead.Split(c.d)
		require.Equal(t, c.upper, u, "upper of %d", c.d)
		require.Equal(t, c.lower, l, "lower of %d", c.d)
		require.Equal(t, c.d, bead.HeavenValue*u+l)
	}
}

func TestCanMove(t *testing.T) {
	cases := []struct {
		name  string
		d     int
		delta int
		want  bool
	}{
		{"add four from zero", 0, 4, true},
		{"no free earth bead", 4, 1, false},
		{"remove all earth", 4, -4, true},
		{"no engaged earth", 5, -1, false},
		{"heaven down", 0, 5, true},
		{"heaven already down", 5, 5, false},
		{"heaven up", 9, -5, true},
		{"heaven already up", 3, -5, false},
		{"six is never simple", 0, 6, false},
		{"zero move", 3, 0, false},
		{"out of range rod", 10, -1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, bead.CanMove(c.d, c.delta))
		})
	}
}

func TestCanMoveNeverLeavesRange(t *testing.T) {
	for d := bead.MinValue; d <= bead.MaxValue; d++ {
		for delta := -5; delta <= 5; delta++ {
			if bead.CanMove(d, delta) {
				require.True(t, bead.InRange(d+delta), "%d%+d", d, delta)
			}
		}
	}
}

func TestBridge(t *testing.T) {
	cases := []struct {
		d, value int
		want     []int
		ok       bool
	}{
		{0, 6, []int{5, 1}, true},
		{1, 8, []int{5, 3}, true},
		{4, 6, nil, false},
		{9, -6, []int{-5, -1}, true},
		{8, -7, []int{-5, -2}, true},
		{6, -6, []int{-5, -1}, true},
		{0, 5, nil, false},
		{0, 10, nil, false},
	}
	for _, c := range cases {
		got, ok := bead.Bridge(c.d, c.value)
		require.Equal(t, c.ok, ok, "Bridge(%d,%+d)", c.d, c.value)
		require.Equal(t, c.want, got, "Bridge(%d,%+d)", c.d, c.value)
	}
}

func TestBrother(t *testing.T) {
	cases := []struct {
		d, value int
		want     []int
		ok       bool
	}{
		{1, 4, []int{5, -1}, true},
		{0, 4, nil, false},
		{5, -4, []int{-5, 1}, true},
		{3, 3, []int{5, -2}, true},
		{7, -3, []int{-5, 2}, true},
		{2, 5, nil, false},
	}
	for _, c := range cases {
		got, ok := bead.Brother(c.d, c.value)
		require.Equal(t, c.ok, ok, "Brother(%d,%+d)", c.d, c.value)
		require.Equal(t, c.want, got, "Brother(%d,%+d)", c.d, c.value)
	}
}

// Every compound formula found must sum to its value and walk legally.
func TestFormulasAreConsistent(t *testing.T) {
	for d := bead.MinValue; d <= bead.MaxValue; d++ {
		for v := -bead.MaxBridge; v <= bead.MaxBridge; v++ {
			for _, fn := range []func(int, int) ([]int, bool){bead.Bridge, bead.Brother} {
				f, ok := fn(d, v)
				if !ok {
					continue
				}
				require.Len(t, f, 2)
				require.Equal(t, v, f[0]+f[1])
				end, legal := bead.Walk(d, f)
				require.True(t, legal)
				require.Equal(t, d+v, end)
				replayed, inRange := bead.Replay(d, f)
				require.True(t, inRange)
				require.Equal(t, end, replayed)
			}
		}
	}
}

func TestReplay(t *testing.T) {
	got, ok := bead.Replay(3, []int{5, -1})
	require.True(t, ok)
	require.Equal(t, 7, got)

	_, ok = bead.Replay(8, []int{5, -1})
	require.False(t, ok)

	_, ok = bead.Walk(4, []int{1})
	require.False(t, ok)
}

func TestComplement(t *testing.T) {
	require.Equal(t, 1, bead.Complement(4))
	require.Equal(t, 2, bead.Complement(-3))
}

func TestDecomposes(t *testing.T) {
	cases := []struct {
		value   int
		formula []int
		want    bool
	}{
		{6, []int{5, 1}, true},
		{6, []int{1, 5}, true},
		{-9, []int{-4, -5}, true},
		{4, []int{5, -1}, true},
		{-3, []int{2, -5}, true},
		{6, []int{3, 3}, false},
		{1, []int{3, -2}, false},
		{4, []int{5, 1}, false},
		{5, []int{5, 0}, false},
		{7, []int{5, 2, 0}, false},
		{7, nil, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, bead.Decomposes(c.value, c.formula), "%+d %v", c.value, c.formula)
	}
	for m := 1; m <= bead.MaxBridge; m++ {
		if m == bead.HeavenValue {
			continue
		}
		for d := bead.MinValue; d <= bead.MaxValue; d++ {
			for _, v := range []int{m, -m} {
				var (
					f  []int
					ok bool
				)
				if m > bead.HeavenValue {
					f, ok = bead.Bridge(d, v)
				} else {
					f, ok = bead.Brother(d, v)
				}
				if ok {
					require.True(t, bead.Decomposes(v, f), "%d %+d %v", d, v, f)
				}
			}
		}
	}
}
