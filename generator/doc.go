// Package generator searches for one valid soroban exercise under a Rule.
//
// 🚀 How it works:
//
//	Generate runs a bounded number of attempts. Each attempt builds a
//	candidate by querying the Rule for legal moves and applying them, trims it
//	to the configured length, checks the intermediate range of non-combined
//	multi-digit candidates, and finally asks the Rule to validate it. The first
//	candidate that clears every check is returned.
//
// Two strategies are chosen by the digit count of the rule's Config:
//   - single-digit: one rod, one move per step, drawn with weight 1 + 0.3·|m|;
//   - vector: every rod moves each step, all moves sharing one sign, drawn
//     uniformly from the in-range combinations of per-rod choices.
//
// Attempt budgets: 100 for one rod, 200 for two or three, 250 for four or
// more; doubled for multi-digit exercises without combined levels. Attempt
// failures are logged at debug level; only exhaustion is returned, as
// ErrGenerationExhausted wrapping the last failure.
//
// ToTrainerFormat projects an Example into the display form consumed by a
// presentation layer.
//
// A Generator is not safe for concurrent use; give each goroutine its own.
package generator
