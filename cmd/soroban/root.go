package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries what every subcommand shares once the root has parsed its flags.
type app struct {
	logLevel string
	logJSON  string

	logger  *slog.Logger
	closeFn func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "soroban",
		Short:         "Abacus exercise generator",
		Long:          "soroban builds arithmetic exercises whose every step is a legal\nbead movement on a soroban, for a chosen technique.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeFn, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logJSON)
			if err != nil {
				return err
			}
			a.logger, a.closeFn = logger, closeFn
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closeFn == nil {
				return nil
			}
			return a.closeFn()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logJSON, "log-json", "", "also write JSON logs to this file")

	root.AddCommand(
		newGenerateCmd(a),
		newBatchCmd(a),
		newPresetsCmd(),
		newValidateCmd(a),
	)
	return root
}
