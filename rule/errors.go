// SPDX-License-Identifier: MIT
// Package: soroban/rule
//
// errors.go: sentinel errors for the rule package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w and a method prefix.
//   • Option constructors panic on meaningless input; rules never panic.

package rule

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition indicates that applying a move would take a rod (or a
// partial micro step of a compound move) outside [0,9], or that a move is
// malformed. Recovered by generators by abandoning the attempt.
var ErrIllegalTransition = errors.New("rule: illegal transition")

// ErrValidationFailed indicates that a fully formed candidate failed final
// acceptance. Recovered by generators by retrying.
var ErrValidationFailed = errors.New("rule: validation failed")

// ErrInvalidConfig indicates an inconsistent configuration detected when the
// options are resolved together (e.g. min steps above max steps).
var ErrInvalidConfig = errors.New("rule: invalid config")

// ErrOutOfRange indicates a number that does not fit the requested digit width.
var ErrOutOfRange = errors.New("rule: number out of range")

// ErrUnknownKind indicates an unrecognized rule kind.
var ErrUnknownKind = errors.New("rule: unknown kind")

// Method tags used as error prefixes.
const (
	methodApplyAction    = "ApplyAction"
	methodApplyStep      = "ApplyStep"
	methodCheckMove      = "CheckMove"
	methodValidate       = "ValidateExample"
	methodNewConfig      = "NewConfig"
	methodNew            = "New"
	methodNumberToDigits = "NumberToDigits"
)

// rejectf builds a validation failure carrying the method prefix.
func rejectf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrValidationFailed)
}

// illegalf builds an illegal-transition error carrying the method prefix.
func illegalf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrIllegalTransition)
}
