package main

import (
	"github.com/katalvlaran/soroban/generator"
	"github.com/katalvlaran/soroban/rule"
)

// record is one exercise as written by generate --json and batch: the
// trainer projection for display and the full example for re-validation.
type record struct {
	ID      string                   `json:"id,omitempty"`
	Preset  string                   `json:"preset"`
	Seed    int64                    `json:"seed"`
	Trainer generator.TrainerExample `json:"trainer"`
	Example rule.Example             `json:"example"`
}

func newRecord(id, presetName string, seed int64, ex rule.Example) record {
	return record{
		ID:      id,
		Preset:  presetName,
		Seed:    seed,
		Trainer: generator.ToTrainerFormat(ex),
		Example: ex,
	}
}
