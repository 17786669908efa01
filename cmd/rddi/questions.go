package main

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
	"github.com/mark3labs/rddi/internal/question"
	"github.com/mark3labs/rddi/internal/theme"
	"github.com/spf13/cobra"
)

var questionsFlags struct {
	plain bool
}

var questionsCmd = &cobra.Command{
	Use:   "questions [id]",
	Short: "Show the wizard's questions and their help",
	Long: `Show every question the wizard may ask together with its help text.

Pass a question id (for example blksize or recover) to show only that one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&questionsFlags.plain, "plain", false, "Disable colored output")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	md, err := question.Markdown(args...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := !questionsFlags.plain && theme.IsTerminal(out)
	style := theme.NewCatppuccinMocha().GlamourStyle(styled)

	fmt.Fprintln(out, renderMarkdown(md, style, cfg.HelpWidth))
	return nil
}

// renderMarkdown renders markdown with glamour.
// Falls back to plain text if rendering fails.
func renderMarkdown(content, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}
