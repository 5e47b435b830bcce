package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/sampleapp/internal/config"
	"github.com/mark3labs/sampleapp/internal/theme"
	"github.com/spf13/cobra"
)

type setupFlags struct {
	project bool
	force   bool
}

func newSetupCmd() *cobra.Command {
	var flags setupFlags

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create sampleapp configuration file",
		Long: `Create a sampleapp configuration file with the built-in defaults.

By default, creates a global config at ~/.config/sampleapp/sampleapp.yml.
Use --project to create a project-local config in the current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.project, "project", "p", false, "Create config in current directory instead of global location")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

func runSetup(cmd *cobra.Command, flags setupFlags) error {
	targetPath := config.GlobalPath()
	write := config.WriteGlobal
	if flags.project {
		targetPath = config.ProjectPath()
		write = config.WriteProject
	}

	if !flags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	if err := write(config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	styles := theme.Current().S()
	out := theme.Writer(cmd.OutOrStdout())
	if _, err := fmt.Fprintf(out, "Config written to: %s\n\n", styles.Title.Render(targetPath)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, styles.Muted.Render("Run 'sampleapp' to get started."))
	return err
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
