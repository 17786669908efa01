package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/rddi/internal/config"
	"github.com/mark3labs/rddi/internal/logger"
	"github.com/mark3labs/rddi/internal/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀█ █▀▄ █▀▄ █"
	logoText2 = "█▀▄ █▄▀ █▄▀ █"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rddi",
	Short: "Interactive wizard that builds rdd command lines",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

rddi asks a series of questions about an rdd copy and prints two equivalent
rdd command lines, one with abbreviated flags and one with verbose flags.
Optionally it runs the verbose command.

Settings are loaded with the following precedence:
  Environment variables (RDDI_*) > Project config > Global config > Defaults

Project config: ./rddi.yml
Global config: ~/.config/rddi/rddi.yml`

	rootCmd.Flags().BoolVar(&wizardFlags.noRun, "no-run", false, "Print the command lines without offering to run them")
	rootCmd.Flags().BoolVar(&wizardFlags.plain, "plain", false, "Disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(setupCmd)
}

// loadSettings loads and validates settings and applies the log level.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, ""); err != nil {
		return nil, err
	}
	return cfg, nil
}
