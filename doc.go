// Package soroban generates arithmetic training exercises whose every step is
// a legal bead movement on a Japanese abacus.
//
// 🚀 What is soroban?
//
//	A small, dependency-light library that brings together:
//		• Bead physics: heaven/earth decomposition, legal simple moves
//		• Techniques: direct moves, bridging through 5 (6–9), brothers (5 complements)
//		• Rules: Unified, Bridge and Brothers acceptance on top of the physics
//		• Generators: single-rod, all-rods vector, and whole multi-digit numbers
//		• Presets: named YAML settings and the soroban CLI
//
// ✨ Why soroban?
//
//   - Every exercise is replayed before it is returned; nothing illegal escapes
//   - Bounded retries with sentinel errors instead of endless loops
//   - Seeded randomness for reproducible tests
//
// The module is organized into subpackages:
//
//	bead/         one rod: d = 5·U + L, simple and compound move legality
//	rule/         State, Action, Step, Example; Config; Unified/Bridge/Brothers
//	generator/    single-digit and vector strategies, trainer projection
//	multidigit/   steps built as multi-digit numbers under a base rule
//	preset/       embedded and file YAML presets → ready generators
//	cmd/soroban/  CLI: generate, batch, presets, validate
//
// Quick ASCII example (one rod holding 7):
//
//	  ●      heaven bead engaged  (5)
//	 ───
//	  ●
//	  ●      two earth beads engaged (2)
//	  ○
//	  ○
//
//	go get github.com/katalvlaran/soroban
package soroban
