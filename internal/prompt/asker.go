// Package prompt implements the line-oriented question/answer loop used by
// the wizard.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/rddi/internal/logger"
	"github.com/mark3labs/rddi/internal/question"
)

// ErrInputExhausted is returned when the input stream ends before an
// acceptable answer was read.
var ErrInputExhausted = errors.New("input exhausted before a valid answer")

const (
	DefaultHelpToken  = "?"
	DefaultHelpWidth  = 75
	DefaultHelpIndent = 4
)

// Asker prompts for answers on a writer and reads them, one per line, from
// a reader.
type Asker struct {
	src io.Reader
	in  *bufio.Reader
	out io.Writer

	helpToken   string
	helpWidth   int
	helpIndent  int
	promptStyle func(string) string
	helpStyle   func(string) string
}

// Option configures an Asker.
type Option func(*Asker)

// WithHelpToken sets the answer that requests help instead of answering.
func WithHelpToken(token string) Option {
	return func(a *Asker) {
		if token != "" {
			a.helpToken = token
		}
	}
}

// WithHelpWidth sets the total line width of printed help.
func WithHelpWidth(width int) Option {
	return func(a *Asker) {
		if width > 0 {
			a.helpWidth = width
		}
	}
}

// WithHelpIndent sets the left indent of printed help.
func WithHelpIndent(indent int) Option {
	return func(a *Asker) {
		if indent >= 0 {
			a.helpIndent = indent
		}
	}
}

// WithPromptStyle decorates the prompt line before it is written.
func WithPromptStyle(style func(string) string) Option {
	return func(a *Asker) { a.promptStyle = style }
}

// WithHelpStyle decorates formatted help before it is written.
func WithHelpStyle(style func(string) string) Option {
	return func(a *Asker) { a.helpStyle = style }
}

// New creates an Asker reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Asker {
	a := &Asker{
		src:         in,
		in:          bufio.NewReader(in),
		out:         out,
		helpToken:   DefaultHelpToken,
		helpWidth:   DefaultHelpWidth,
		helpIndent:  DefaultHelpIndent,
		promptStyle: plain,
		helpStyle:   plain,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func plain(s string) string { return s }

// Ask prompts for question id until an answer satisfies c.
//
// An empty answer returns def when def is non-empty. The help token prints
// the question's help and prompts again. Rejected answers prompt again
// without limit; the only errors are an unknown id, a read failure and
// ErrInputExhausted.
func (a *Asker) Ask(id string, c Constraint, def string) (string, error) {
	return a.ask(id, c, def, false)
}

func (a *Asker) ask(id string, c Constraint, def string, optional bool) (string, error) {
	spec, err := question.Lookup(id)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(spec.Prompt)
	if def != "" {
		text += fmt.Sprintf(" [%s]", def)
	}
	line := "\n" + a.promptStyle("*** "+text) + "  "

	for {
		if _, err := io.WriteString(a.out, line); err != nil {
			return "", fmt.Errorf("writing prompt %s: %w", id, err)
		}

		answer, err := a.readLine()
		if err != nil {
			return "", fmt.Errorf("question %s: %w", id, err)
		}

		switch {
		case answer == a.helpToken:
			help := Wrap(spec.Help, a.helpWidth, a.helpIndent)
			if _, err := fmt.Fprintln(a.out, a.helpStyle(help)); err != nil {
				return "", fmt.Errorf("writing help %s: %w", id, err)
			}
		case answer == "":
			if def != "" || optional {
				logger.Debug("question %s: using default %q", id, def)
				return def, nil
			}
		default:
			if v, ok := c.Accept(answer); ok {
				logger.Debug("question %s: accepted %q", id, v)
				return v, nil
			}
			logger.Debug("question %s: rejected %q (%s)", id, answer, c.Kind)
		}
	}
}

// Reader returns the input not yet consumed as answers, starting with any
// bytes already buffered. With nothing buffered the original reader is
// returned, so a terminal on stdin can be handed to a child process as is.
func (a *Asker) Reader() io.Reader {
	if a.in.Buffered() == 0 {
		return a.src
	}
	return a.in
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; ErrInputExhausted follows on the next call.
func (a *Asker) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputExhausted
			}
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskYesNo asks a yes/no question and reports whether the answer was yes.
func (a *Asker) AskYesNo(id string, def bool) (bool, error) {
	ans, err := a.Ask(id, Match(YesNoPattern), yesNo(def))
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(ans), "y"), nil
}

// AskNumber asks for a non-negative decimal number.
func (a *Asker) AskNumber(id, def string) (string, error) {
	return a.Ask(id, Match(NumberPattern), def)
}

// AskSize asks for a byte count with an optional b, k, m or g multiplier.
// The answer is returned as typed.
func (a *Asker) AskSize(id, def string) (string, error) {
	return a.Ask(id, Match(SizePattern), def)
}

// AskFile asks for a required path.
func (a *Asker) AskFile(id, def string) (string, error) {
	return a.Ask(id, AnyText(), def)
}

// AskOptionalFile asks for a path that may be left empty. An empty answer
// returns def, which may itself be empty.
func (a *Asker) AskOptionalFile(id, def string) (string, error) {
	return a.ask(id, AnyText(), def, true)
}

// AskChoice asks for one of tokens and returns it lower-cased.
func (a *Asker) AskChoice(id string, tokens []string, def string) (string, error) {
	return a.Ask(id, OneOf(tokens...), def)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
