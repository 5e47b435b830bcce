package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mark3labs/sampleapp/internal/config"
	"github.com/mark3labs/sampleapp/internal/logger"
	"github.com/mark3labs/sampleapp/internal/sample"
	"github.com/spf13/cobra"
)

// statusLine is the last line printed by the runner.
const statusLine = "Sample Go application is running!"

type rootFlags struct {
	name     string
	logLevel string
}

// app carries state shared by the command tree for one execution.
type app struct {
	flags rootFlags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "sampleapp",
		Short: "Greeting and arithmetic sample for CI pipelines",
		Long: renderLogo() + `

sampleapp is the Go sample application used by the CI examples. Run without
a subcommand it greets the configured name and prints a sample sum:

  Hello, GitHub Actions!
  2 + 3 = 5
  ` + statusLine + `

Use 'sampleapp selftest' to run the built-in assertions against the binary.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		RunE:              a.runRoot,
	}

	cmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: from config)")
	cmd.Flags().StringVarP(&a.flags.name, "name", "n", "", "Name to greet (default: from config, \"GitHub Actions\")")

	cmd.AddCommand(newGreetCmd())
	cmd.AddCommand(newArithCmd("add", "+", "Add two numbers", sample.Add))
	cmd.AddCommand(newArithCmd("multiply", "*", "Multiply two numbers", sample.Multiply))
	cmd.AddCommand(newSelftestCmd())
	cmd.AddCommand(newSetupCmd())

	return cmd
}

// load resolves configuration (flags > env > files > defaults) and applies
// the logging settings.
func (a *app) load(cmd *cobra.Command, args []string) error {
	haveFile := config.Exists()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.flags.name != "" {
		cfg.Name = a.flags.name
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	a.cfg = cfg
	if !haveFile {
		logger.Debug("no config file at %s or %s, using defaults", config.ProjectPath(), config.GlobalPath())
	}
	logger.Debug("config loaded: name=%q a=%v b=%v", cfg.Name, cfg.A, cfg.B)
	return nil
}

// runRoot prints the greeting, the sample sum and the status line.
func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if err := runSample(cmd.OutOrStdout(), a.cfg.Name, a.cfg.A, a.cfg.B); err != nil {
		return err
	}
	logger.Info("runner finished")
	return nil
}

// runSample writes the greeting before computing the sum, so an invalid
// operand fails after the greeting line.
func runSample(w io.Writer, name string, x, y any) error {
	if _, err := fmt.Fprintln(w, sample.Greet(name)); err != nil {
		return err
	}

	sum, err := sample.Add(x, y)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s + %s = %s\n", formatOperand(x), formatOperand(y), formatNumber(sum)); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, statusLine)
	return err
}

func formatOperand(v any) string {
	if f, ok := v.(float64); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(v)
}

// formatNumber prints integral values without a decimal point.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
