package generator

import "errors"

// ErrGenerationExhausted indicates that no valid example was found within the
// attempt budget. The configuration most likely asks for something impossible
// (e.g. a digit/step combination no walk can satisfy).
var ErrGenerationExhausted = errors.New("generator: generation exhausted")

// ErrNilRule indicates a Generator constructed without a Rule.
var ErrNilRule = errors.New("generator: nil rule")

const (
	methodNew      = "New"
	methodGenerate = "Generate"
)
