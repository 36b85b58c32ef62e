// SPDX-License-Identifier: MIT
// Package: soroban/preset
//
// preset.go: YAML documents mapped onto rule options and generators.

package preset

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/soroban/bead"
	"github.com/katalvlaran/soroban/generator"
	"github.com/katalvlaran/soroban/multidigit"
	"github.com/katalvlaran/soroban/rule"
)

//go:embed presets/*.yaml
var presetFS embed.FS

const presetDir = "presets"

// ErrInvalidPreset indicates a document that cannot be turned into a generator.
var ErrInvalidPreset = errors.New("preset: invalid preset")

// ErrNotFound indicates an unknown embedded preset name.
var ErrNotFound = errors.New("preset: not found")

// Strategy names how examples are built.
type Strategy string

const (
	// StrategyAuto picks the single-digit or vector strategy from digitCount.
	StrategyAuto Strategy = "auto"
	// StrategyVector requires digitCount > 1 and moves every rod per step.
	StrategyVector Strategy = "vector"
	// StrategyMultiDigit builds each step as a whole multi-digit number.
	StrategyMultiDigit Strategy = "multidigit"
)

// Steps bounds the number of steps per example.
type Steps struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Bridge holds the bridge rule settings.
type Bridge struct {
	Target       int   `yaml:"target" json:"target"`
	RequireBlock *bool `yaml:"requireBlock,omitempty" json:"requireBlock,omitempty"`
}

// Brothers holds the brothers rule settings.
type Brothers struct {
	Allowed    []int    `yaml:"allowed,omitempty" json:"allowed,omitempty"`
	Preference *float64 `yaml:"preference,omitempty" json:"preference,omitempty"`
}

// MultiDigit holds the multi-digit generator settings.
type MultiDigit struct {
	MaxDigitCount        int      `yaml:"maxDigitCount,omitempty" json:"maxDigitCount,omitempty"`
	VariableDigitCounts  bool     `yaml:"variableDigitCounts,omitempty" json:"variableDigitCounts,omitempty"`
	DuplicateProbability *float64 `yaml:"duplicateProbability,omitempty" json:"duplicateProbability,omitempty"`
	MaxDuplicates        *int     `yaml:"maxDuplicates,omitempty" json:"maxDuplicates,omitempty"`
	ZeroDigitProbability *float64 `yaml:"zeroDigitProbability,omitempty" json:"zeroDigitProbability,omitempty"`
	MaxZeroDigits        *int     `yaml:"maxZeroDigits,omitempty" json:"maxZeroDigits,omitempty"`
}

// Preset is one settings document.
type Preset struct {
	Name            string      `yaml:"name" json:"name"`
	Description     string      `yaml:"description,omitempty" json:"description,omitempty"`
	Rule            string      `yaml:"rule" json:"rule"`
	Strategy        Strategy    `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	Digits          []int       `yaml:"digits,omitempty" json:"digits,omitempty"`
	Steps           *Steps      `yaml:"steps,omitempty" json:"steps,omitempty"`
	DigitCount      int         `yaml:"digitCount,omitempty" json:"digitCount,omitempty"`
	CombineLevels   *bool       `yaml:"combineLevels,omitempty" json:"combineLevels,omitempty"`
	OnlyAddition    bool        `yaml:"onlyAddition,omitempty" json:"onlyAddition,omitempty"`
	OnlySubtraction bool        `yaml:"onlySubtraction,omitempty" json:"onlySubtraction,omitempty"`
	Bridge          *Bridge     `yaml:"bridge,omitempty" json:"bridge,omitempty"`
	Brothers        *Brothers   `yaml:"brothers,omitempty" json:"brothers,omitempty"`
	MultiDigit      *MultiDigit `yaml:"multidigit,omitempty" json:"multidigit,omitempty"`
}

// Source is a configured generator: either strategy of package generator or
// the multi-digit generator.
type Source interface {
	Generate() (rule.Example, error)
	ValidateExample(ex rule.Example) error
}

// Load returns the embedded preset called name.
func Load(name string) (*Preset, error) {
	data, err := presetFS.ReadFile(presetDir + "/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("preset %q (available: %s): %w",
			name, strings.Join(List(), ", "), ErrNotFound)
	}
	return parse(name, data)
}

// LoadFile reads and validates a preset document from path.
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}
	return parse(path, data)
}

// List returns the embedded preset names, sorted.
func List() []string {
	entries, _ := presetFS.ReadDir(presetDir)
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

func parse(origin string, data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %v: %w", origin, err, ErrInvalidPreset)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Kind returns the rule kind the preset names.
func (p *Preset) Kind() (rule.Kind, error) {
	return rule.ParseKind(p.Rule)
}

// Validate reports every problem in p, joined, wrapping ErrInvalidPreset.
func (p *Preset) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("preset %q: %s: %w", p.Name, fmt.Sprintf(format, args...), ErrInvalidPreset))
	}

	if p.Name == "" {
		bad("missing name")
	}
	kind, err := p.Kind()
	if err != nil {
		bad("rule %q", p.Rule)
	}
	switch p.Strategy {
	case "", StrategyAuto, StrategyMultiDigit:
	case StrategyVector:
		if p.DigitCount < 2 {
			bad("vector strategy needs digitCount >= 2, got %d", p.DigitCount)
		}
	default:
		bad("unknown strategy %q", p.Strategy)
	}
	for _, d := range p.Digits {
		if d < 1 || d > bead.MaxValue {
			bad("digit %d not in [1,%d]", d, bead.MaxValue)
		}
	}
	if p.Steps != nil {
		if p.Steps.Min < 1 {
			bad("steps.min %d < 1", p.Steps.Min)
		}
		if p.Steps.Max < p.Steps.Min {
			bad("steps.max %d < steps.min %d", p.Steps.Max, p.Steps.Min)
		}
	}
	if p.DigitCount < 0 || p.DigitCount > rule.MaxDigitCount {
		bad("digitCount %d not in [1,%d]", p.DigitCount, rule.MaxDigitCount)
	}
	if p.OnlyAddition && p.OnlySubtraction {
		bad("onlyAddition and onlySubtraction are exclusive")
	}
	if p.Bridge != nil && (p.Bridge.Target < 6 || p.Bridge.Target > bead.MaxBridge) {
		bad("bridge.target %d not in [6,%d]", p.Bridge.Target, bead.MaxBridge)
	}
	if err == nil && kind == rule.KindBridge && p.Bridge == nil {
		bad("bridge rule without bridge.target")
	}
	if b := p.Brothers; b != nil {
		for _, d := range b.Allowed {
			if d < 1 || d > bead.EarthBeads {
				bad("brothers.allowed %d not in [1,%d]", d, bead.EarthBeads)
			}
		}
		if b.Preference != nil && !probability(*b.Preference) {
			bad("brothers.preference %g not in [0,1]", *b.Preference)
		}
	}
	if m := p.MultiDigit; m != nil {
		if m.MaxDigitCount < 0 || m.MaxDigitCount > rule.MaxDigitCount {
			bad("multidigit.maxDigitCount %d not in [1,%d]", m.MaxDigitCount, rule.MaxDigitCount)
		}
		if m.DuplicateProbability != nil && !probability(*m.DuplicateProbability) {
			bad("multidigit.duplicateProbability %g not in [0,1]", *m.DuplicateProbability)
		}
		if m.ZeroDigitProbability != nil && !probability(*m.ZeroDigitProbability) {
			bad("multidigit.zeroDigitProbability %g not in [0,1]", *m.ZeroDigitProbability)
		}
		if m.MaxDuplicates != nil && *m.MaxDuplicates < 0 {
			bad("multidigit.maxDuplicates %d < 0", *m.MaxDuplicates)
		}
		if m.MaxZeroDigits != nil && *m.MaxZeroDigits < 0 {
			bad("multidigit.maxZeroDigits %d < 0", *m.MaxZeroDigits)
		}
	}
	return errors.Join(errs...)
}

func probability(p float64) bool { return p >= 0 && p <= 1 }

// Options maps p onto rule options. p must be valid.
func (p *Preset) Options() []rule.Option {
	var opts []rule.Option
	if len(p.Digits) > 0 {
		opts = append(opts, rule.WithDigits(p.Digits...))
	}
	if p.Steps != nil {
		opts = append(opts, rule.WithSteps(p.Steps.Min, p.Steps.Max))
	}
	if p.DigitCount > 0 {
		opts = append(opts, rule.WithDigitCount(p.DigitCount))
	}
	if p.CombineLevels != nil {
		opts = append(opts, rule.WithCombineLevels(*p.CombineLevels))
	}
	if p.OnlyAddition {
		opts = append(opts, rule.WithOnlyAddition())
	}
	if p.OnlySubtraction {
		opts = append(opts, rule.WithOnlySubtraction())
	}
	if b := p.Bridge; b != nil {
		opts = append(opts, rule.WithBridgeTarget(b.Target))
		if b.RequireBlock != nil {
			opts = append(opts, rule.WithRequireBlock(*b.RequireBlock))
		}
	}
	if b := p.Brothers; b != nil {
		if len(b.Allowed) > 0 {
			opts = append(opts, rule.WithBrothersDigits(b.Allowed...))
		}
		if b.Preference != nil {
			opts = append(opts, rule.WithBrothersPreference(*b.Preference))
		}
	}
	return opts
}

func (p *Preset) multiDigitOptions(logger *slog.Logger) []multidigit.Option {
	opts := []multidigit.Option{multidigit.WithLogger(logger)}
	m := p.MultiDigit
	if m == nil {
		return opts
	}
	if m.MaxDigitCount > 0 {
		opts = append(opts, multidigit.WithMaxDigitCount(m.MaxDigitCount))
	}
	if m.VariableDigitCounts {
		opts = append(opts, multidigit.WithVariableDigitCounts(true))
	}
	if m.DuplicateProbability != nil {
		opts = append(opts, multidigit.WithDuplicateProbability(*m.DuplicateProbability))
	}
	if m.MaxDuplicates != nil {
		opts = append(opts, multidigit.WithMaxDuplicates(*m.MaxDuplicates))
	}
	if m.ZeroDigitProbability != nil {
		opts = append(opts, multidigit.WithZeroDigitProbability(*m.ZeroDigitProbability))
	}
	if m.MaxZeroDigits != nil {
		opts = append(opts, multidigit.WithMaxZeroDigits(*m.MaxZeroDigits))
	}
	return opts
}

// Build validates p and returns its generator. extra options are applied
// after the preset's own (typically rule.WithSeed); a nil logger discards.
func (p *Preset) Build(logger *slog.Logger, extra ...rule.Option) (Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("preset", p.Name)

	cfg, err := rule.NewConfig(append(p.Options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	kind, _ := p.Kind()
	r, err := rule.New(kind, cfg)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	if p.Strategy == StrategyMultiDigit {
		g, err := multidigit.New(r, p.multiDigitOptions(logger)...)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	g, err := generator.New(r, generator.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return g, nil
}
