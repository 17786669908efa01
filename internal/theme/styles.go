package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles for wizard output.
type Styles struct {
	Prompt  lipgloss.Style
	Help    lipgloss.Style
	Heading lipgloss.Style
	Command lipgloss.Style
}

// Func adapts a style to a plain string decorator.
func Func(s lipgloss.Style) func(string) string {
	return func(text string) string {
		return s.Render(text)
	}
}

// Plain is the identity decorator used when styling is off.
func Plain(text string) string { return text }

// Decorators returns style decorators for prompts, help, headings and
// commands. They are plain when enabled is false.
func (t *Theme) Decorators(enabled bool) (prompt, help, heading, command func(string) string) {
	if !enabled {
		return Plain, Plain, Plain, Plain
	}
	s := t.S()
	return Func(s.Prompt), Func(s.Help), Func(s.Heading), Func(s.Command)
}
