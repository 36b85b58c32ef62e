// Package bead models the physics of a single soroban rod.
//
// A rod holds one heaven bead worth 5 and four earth beads worth 1 each, so a
// digit value d ∈ [0,9] decomposes uniquely as
//
//	d = 5·U + L,   U ∈ {0,1},  L ∈ [0,4]
//
// where U tells whether the heaven bead is engaged and L counts engaged earth
// beads.
//
// ✨ What the package answers:
//   - Split:    the (U, L) decomposition of a digit.
//   - CanMove:  whether a magnitude 1–5 move is realizable by one bead gesture.
//   - Bridge:   the micro-step formula for magnitudes 6–9 (heaven toggle plus earth
//     adjustment), in the first physically legal ordering.
//   - Brother:  the detour-through-5 formula for magnitudes 1–4 ("brothers"),
//     e.g. +4 = +5 −1.
//   - Walk / Replay: apply a formula with physical or range-only checks.
//
// All functions are pure and allocation-light; nothing here is random.
package bead
