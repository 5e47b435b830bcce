package main

import (
	"github.com/mark3labs/sampleapp/internal/selftest"
	"github.com/spf13/cobra"
)

func newSelftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in assertions and report the result",
		Long: `Run the built-in greeting and arithmetic assertions in order, after
printing "` + selftest.StartMessage + `".

Stops at the first failing assertion and exits non-zero with a description
of the mismatch. Prints "` + selftest.PassMessage + `" when every check passes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return selftest.Run(cmd.OutOrStdout(), selftest.Checks())
		},
	}
}
