// SPDX-License-Identifier: MIT
// Package: soroban/generator
//
// vector.go: the multi-digit vector strategy.
//
// Every step moves every rod, all moves sharing one sign. For each rod the
// rule's legal actions are filtered to the sign; if some rod has none the
// opposite sign is tried, and if that fails too the walk ends. The step is a
// uniform draw over the Cartesian product of per-rod choices restricted to
// combinations keeping every rod in [0,9].
//
// Products above maxCombinations are not enumerated: rods are independent, so
// drawing each rod uniformly and rejecting out-of-range combinations samples
// the same distribution.

package generator

import (
	"github.com/katalvlaran/soroban/bead"
	"github.com/katalvlaran/soroban/rule"
)

const (
	maxCombinations   = 1 << 12
	maxCombinationTry = 64
)

func (g *Generator) buildVector() (rule.Example, error) {
	start := g.rule.StartState()
	cur := start
	count := g.rule.StepsCount()
	steps := make([]rule.Step, 0, count)

	for i := 0; i < count; i++ {
		first := i == 0
		sign := g.pickSign(first)
		choices, ok := g.rodChoices(cur, first, sign)
		if !ok {
			choices, ok = g.rodChoices(cur, first, -sign)
		}
		if !ok {
			break
		}
		moves, ok := g.pickCombination(cur, choices)
		if !ok {
			break
		}
		next, err := g.rule.ApplyStep(cur, moves)
		if err != nil {
			return rule.Example{}, err
		}
		steps = append(steps, rule.Step{Moves: moves, From: cur, To: next})
		cur = next
	}
	return rule.Example{Start: start, Steps: steps, Answer: cur}, nil
}

// pickSign draws the shared sign of a step among those the config permits.
func (g *Generator) pickSign(first bool) int {
	signs := g.cfg.Signs(first)
	return signs[g.cfg.Rand().Intn(len(signs))]
}

// rodChoices returns, per rod, the legal actions carrying sign. It reports
// false as soon as one rod has none.
func (g *Generator) rodChoices(cur rule.State, first bool, sign int) ([][]rule.Action, bool) {
	choices := make([][]rule.Action, len(cur))
	for p := range cur {
		for _, a := range g.rule.AvailableActions(cur[p], first, p) {
			if a.Sign() == sign {
				choices[p] = append(choices[p], a)
			}
		}
		if len(choices[p]) == 0 {
			return nil, false
		}
	}
	return choices, true
}

func (g *Generator) pickCombination(cur rule.State, choices [][]rule.Action) ([]rule.Move, bool) {
	size := 1
	for _, c := range choices {
		size *= len(c)
		if size > maxCombinations {
			return g.sampleCombination(cur, choices)
		}
	}

	var valid [][]int
	idx := make([]int, len(choices))
	for {
		if inRange(cur, choices, idx) {
			valid = append(valid, append([]int(nil), idx...))
		}
		// Odometer increment, rod 0 fastest.
		p := 0
		for ; p < len(idx); p++ {
			idx[p]++
			if idx[p] < len(choices[p]) {
				break
			}
			idx[p] = 0
		}
		if p == len(idx) {
			break
		}
	}
	if len(valid) == 0 {
		return nil, false
	}
	return toMoves(choices, valid[g.cfg.Rand().Intn(len(valid))]), true
}

func (g *Generator) sampleCombination(cur rule.State, choices [][]rule.Action) ([]rule.Move, bool) {
	rng := g.cfg.Rand()
	idx := make([]int, len(choices))
	for try := 0; try < maxCombinationTry; try++ {
		for p := range choices {
			idx[p] = rng.Intn(len(choices[p]))
		}
		if inRange(cur, choices, idx) {
			return toMoves(choices, idx), true
		}
	}
	return nil, false
}

func inRange(cur rule.State, choices [][]rule.Action, idx []int) bool {
	for p, i := range idx {
		if !bead.InRange(cur[p] + choices[p][i].Value) {
			return false
		}
	}
	return true
}

// toMoves lists the chosen actions most significant rod first.
func toMoves(choices [][]rule.Action, idx []int) []rule.Move {
	moves := make([]rule.Move, 0, len(idx))
	for p := len(idx) - 1; p >= 0; p-- {
		moves = append(moves, rule.Move{Position: p, Action: choices[p][idx[p]]})
	}
	return moves
}
