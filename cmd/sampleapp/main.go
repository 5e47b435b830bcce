package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/sampleapp/internal/logger"
	"github.com/mark3labs/sampleapp/internal/theme"
)

const (
	logoText1 = "█▀ ▄▀█ █▀▄▀█ █▀█ █   █▀▀"
	logoText2 = "▄█ █▀█ █ ▀ █ █▀▀ █▄▄ ██▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		_ = logger.Close()
		os.Exit(1)
	}
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.Current()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}
