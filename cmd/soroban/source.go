package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/soroban/preset"
)

const defaultPreset = "simple"

// sourceFlags selects the preset a command draws from.
type sourceFlags struct {
	preset string
	config string
	seed   int64
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "embedded preset name (see 'soroban presets'; default "+defaultPreset+")")
	cmd.Flags().StringVar(&f.config, "config", "", "preset YAML file")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 = time based)")
	cmd.MarkFlagsMutuallyExclusive("preset", "config")
}

func (f *sourceFlags) load() (*preset.Preset, error) {
	if f.config != "" {
		return preset.LoadFile(f.config)
	}
	name := f.preset
	if name == "" {
		name = defaultPreset
	}
	return preset.Load(name)
}

// resolvedSeed returns the seed in effect, drawing one from the clock when
// none was given so that it can be reported.
func (f *sourceFlags) resolvedSeed() int64 {
	if f.seed != 0 {
		return f.seed
	}
	return time.Now().UnixNano()
}
