package main

import (
	"fmt"
	"strconv"

	"github.com/mark3labs/sampleapp/internal/logger"
	"github.com/mark3labs/sampleapp/internal/sample"
	"github.com/spf13/cobra"
)

type binaryOp func(a, b any) (float64, error)

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting (default name: World)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), sample.Greet(args...))
			return err
		},
	}
}

func newArithCmd(use, symbol, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Long: short + `.

Arguments that do not parse as numbers are rejected with
"Both arguments must be numbers".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := op(parseOperand(args[0]), parseOperand(args[1]))
			if err != nil {
				logger.Warn("%s %q %q: %v", use, args[0], args[1], err)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s = %s\n", args[0], symbol, args[1], formatNumber(result))
			return err
		},
	}
}

// parseOperand returns a float64 for numeric text and the raw string
// otherwise, leaving validation to the arithmetic function.
func parseOperand(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
