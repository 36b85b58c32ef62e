// Package preset loads named exercise settings from YAML and turns them into
// ready generators.
//
// A preset names a rule kind, a generation strategy and the rule options:
//
//	name: bridge6
//	rule: bridge
//	digits: [1, 2, 3, 4, 5, 6]
//	steps: {min: 3, max: 6}
//	bridge: {target: 6, requireBlock: true}
//
// Fields left out keep the defaults of package rule. Presets shipped with the
// binary are embedded and listed by List; LoadFile reads a user document.
//
// Validate reports every problem in a document as ErrInvalidPreset before any
// option is constructed, so a bad document never reaches the panicking option
// constructors.
package preset
