package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/rddi/internal/config"
	"github.com/mark3labs/rddi/internal/prompt"
	"github.com/mark3labs/rddi/internal/question"
	"github.com/mark3labs/rddi/internal/rdd"
	"github.com/mark3labs/rddi/internal/runner"
	"github.com/mark3labs/rddi/internal/theme"
	"github.com/mark3labs/rddi/internal/wizard"
	"github.com/spf13/cobra"
)

var wizardFlags struct {
	noRun bool
	plain bool
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if !config.Exists() {
		fmt.Fprintf(cmd.ErrOrStderr(), "No settings file found, using built-in defaults. Run 'rddi setup' to create %s.\n", config.GlobalPath())
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	styled := !wizardFlags.plain && theme.IsTerminal(out)
	promptStyle, helpStyle, headingStyle, commandStyle := theme.NewCatppuccinMocha().Decorators(styled)

	asker := prompt.New(in, out,
		prompt.WithHelpToken(cfg.HelpToken),
		prompt.WithHelpWidth(cfg.HelpWidth),
		prompt.WithPromptStyle(promptStyle),
		prompt.WithHelpStyle(helpStyle),
	)

	intro := strings.ReplaceAll(question.Intro, "'?'", "'"+cfg.HelpToken+"'")
	fmt.Fprintln(out, headingStyle(prompt.Wrap(intro, cfg.HelpWidth, 0)))

	session := wizard.NewSession(asker, defaultsFrom(cfg))
	answers, err := session.Run()
	if err != nil {
		return err
	}
	if err := answers.Validate(); err != nil {
		return fmt.Errorf("wizard produced an invalid configuration: %w", err)
	}

	short, long := rdd.Render(answers, cfg.Program)
	fmt.Fprintf(out, "Command lines:\n\n\t%s\n\n\t%s\n", commandStyle(short.String()), commandStyle(long.String()))

	if wizardFlags.noRun {
		return nil
	}
	run, err := asker.AskYesNo(question.Run, false)
	if err != nil || !run {
		return err
	}

	return runner.Execute(cmd.Context(), long, runner.Options{
		Timeout: time.Duration(cfg.RunTimeout) * time.Second,
		Stdin:   asker.Reader(),
		Stdout:  out,
		Stderr:  cmd.ErrOrStderr(),
	})
}

func defaultsFrom(cfg *config.Config) wizard.Defaults {
	return wizard.Defaults{
		Port:         cfg.Port,
		Interval:     cfg.Interval,
		BlockSize:    cfg.BlockSize,
		MinBlockSize: cfg.MinBlockSize,
		MaxErrors:    cfg.MaxErrors,
		LogFile:      cfg.LogFileDefault(),
		Host:         "localhost",
	}
}
