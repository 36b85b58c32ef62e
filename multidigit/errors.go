package multidigit

import "errors"

// ErrStepExhausted indicates that the inner retry could not build one step.
// GenerateExample returns it; Generate treats it as a failed attempt.
var ErrStepExhausted = errors.New("multidigit: step exhausted")

// ErrNilRule indicates a Generator constructed without a base Rule.
var ErrNilRule = errors.New("multidigit: nil base rule")

const (
	methodNew             = "New"
	methodGenerate        = "Generate"
	methodGenerateExample = "GenerateExample"
	methodValidate        = "ValidateExample"
)
