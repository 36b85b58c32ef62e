// soroban generates abacus training exercises from named presets.
//
// Usage:
//
//	soroban generate [--preset=<name> | --config=<file>] [--seed=<n>] [--json]
//	soroban batch --count=<n> [--workers=<n>] [--preset=<name> | --config=<file>] [--seed=<n>]
//	soroban presets
//	soroban validate [--preset=<name> | --config=<file>] <file>
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
