// Package multidigit generates exercises whose steps are whole multi-digit
// numbers, each built rod by rod under a base Rule.
//
// For every step an inner bounded retry picks the number's width (full width
// for the first step; otherwise full width, or a width drawn with weight w²
// when variable widths are enabled), picks the step's sign, and fills the
// rods from the most significant down with legal moves of the base Rule.
// Within one step a magnitude is used once, unless the example-wide duplicate
// allowance fires; below the leading rod a digit may be 0, up to an
// example-wide cap.
//
// The duplicate and zero-digit counters live in a session value created by
// each GenerateExample call; nothing is carried between calls. A Generator is
// still not safe for concurrent use because the base Rule's random source is
// shared.
package multidigit
