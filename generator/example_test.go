package generator_test

import (
	"fmt"

	"github.com/katalvlaran/soroban/generator"
	"github.com/katalvlaran/soroban/rule"
)

func ExampleGenerator_Generate() {
	cfg, err := rule.NewConfig(
		rule.WithDigits(1, 2, 3, 4, 5, 6),
		rule.WithSteps(3, 6),
		rule.WithBridgeTarget(6),
		rule.WithSeed(42),
	)
	if err != nil {
		panic(err)
	}
	r, err := rule.New(rule.KindBridge, cfg)
	if err != nil {
		panic(err)
	}
	g, err := generator.New(r)
	if err != nil {
		panic(err)
	}
	ex, err := g.Generate()
	if err != nil {
		panic(err)
	}
	fmt.Println(len(ex.Steps) >= 3, ex.Steps[0].Value() > 0, r.ValidateExample(ex) == nil)
	// Output: true true true
}

func ExampleFormatStep() {
	st := rule.Step{Moves: []rule.Move{
		{Position: 2, Action: rule.Simple(-3)},
		{Position: 0, Action: rule.Simple(-1)},
	}}
	fmt.Println(generator.FormatStep(st), st.Value())
	// Output: -301 -301
}
