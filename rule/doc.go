// Package rule encodes soroban bead physics and exercise acceptance.
//
// A Rule answers three questions for the generators:
//
//   - which signed moves are legal on one rod right now (AvailableActions),
//   - what a move does to a rod (ApplyAction / ApplyStep),
//   - whether a finished candidate is an acceptable exercise (ValidateExample).
//
// The set of rules is closed: Unified, Bridge and Brothers, selected by Kind
// and built with New. Every variant shares the same bead physics (see package
// bead) and the same baseline acceptance; variants add their own technique
// requirements on top.
//
// ⚙️ Usage:
//
//	cfg, err := rule.NewConfig(
//		rule.WithDigits(1, 5, 6),
//		rule.WithSteps(3, 6),
//		rule.WithBridgeTarget(6),
//		rule.WithSeed(42),
//	)
//	r, err := rule.New(rule.KindBridge, cfg)
//	acts := r.AvailableActions(0, true, 0) // +1, +5, +6
//
// States are little-endian digit slices (index 0 = ones). Single-digit
// exercises use a one-element State.
//
// Errors are package sentinels wrapped with method context; branch on them
// with errors.Is.
package rule
