package generator

import (
	"github.com/katalvlaran/soroban/rule"
)

// buildSingle walks one rod for StepsCount steps, stopping early when the rod
// has no legal move.
func (g *Generator) buildSingle() (rule.Example, error) {
	start := g.rule.StartState()
	cur := start
	count := g.rule.StepsCount()
	steps := make([]rule.Step, 0, count)

	for i := 0; i < count; i++ {
		acts := g.rule.AvailableActions(cur[0], i == 0, 0)
		if len(acts) == 0 {
			break
		}
		a := g.pickAction(acts)
		moves := []rule.Move{{Position: 0, Action: a}}
		next, err := g.rule.ApplyStep(cur, moves)
		if err != nil {
			return rule.Example{}, err
		}
		steps = append(steps, rule.Step{Moves: moves, From: cur, To: next})
		cur = next
	}
	return rule.Example{Start: start, Steps: steps, Answer: cur}, nil
}

// pickAction draws one action with weight 1 + bias·|m|.
func (g *Generator) pickAction(acts []rule.Action) rule.Action {
	weights := make([]float64, len(acts))
	for i, a := range acts {
		weights[i] = 1 + g.bias*float64(a.Magnitude())
	}
	return acts[WeightedIndex(g.cfg.Rand(), weights)]
}
