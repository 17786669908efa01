package prompt

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/rddi/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAsker(input string) (*Asker, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestConstraintAccept(t *testing.T) {
	tests := []struct {
		name   string
		c      Constraint
		answer string
		want   string
		ok     bool
	}{
		{"number digits", Match(NumberPattern), "12", "12", true},
		{"number trailing letter", Match(NumberPattern), "12a", "", false},
		{"number sign", Match(NumberPattern), "-1", "", false},
		{"size plain", Match(SizePattern), "512", "512", true},
		{"size kilo", Match(SizePattern), "512k", "512k", true},
		{"size giga upper", Match(SizePattern), "10G", "10G", true},
		{"size block", Match(SizePattern), "8b", "8b", true},
		{"size two letters", Match(SizePattern), "10KB", "", false},
		{"size plus sign", Match(SizePattern), "+10k", "", false},
		{"size minus sign", Match(SizePattern), "-10k", "", false},
		{"size prefix", Match(SizePattern), "x10", "", false},
		{"size unknown suffix", Match(SizePattern), "10t", "", false},
		{"yes", Match(YesNoPattern), "YES", "YES", true},
		{"no", Match(YesNoPattern), "n", "n", true},
		{"yes prefix only", Match(YesNoPattern), "yesterday", "", false},
		{"membership case", OneOf("local", "client", "server"), "Client", "client", true},
		{"membership miss", OneOf("local", "client", "server"), "cli", "", false},
		{"free text", AnyText(), "/dev/sda", "/dev/sda", true},
		{"free text empty", AnyText(), "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.c.Accept(tt.answer)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAsk_PromptFormat(t *testing.T) {
	a, out := newTestAsker("\n")
	ans, err := a.AskNumber(question.Progress, "5")
	require.NoError(t, err)
	assert.Equal(t, "5", ans)
	assert.Equal(t, "\n*** How often should rdd report progress [seconds; 0 means never]? [5]  ", out.String())
}

func TestAsk_NoDefaultHidesBrackets(t *testing.T) {
	a, out := newTestAsker("/dev/sda\n")
	ans, err := a.AskFile(question.Source, "")
	require.NoError(t, err)
	assert.Equal(t, "/dev/sda", ans)
	assert.Equal(t, "\n*** Input file:  ", out.String())
}

func TestAsk_RetriesUntilValid(t *testing.T) {
	a, out := newTestAsker("12a\n\n  -3 \n42\n")
	ans, err := a.AskNumber(question.MaxErrors, "")
	require.NoError(t, err)
	assert.Equal(t, "42", ans)
	assert.Equal(t, 4, strings.Count(out.String(), "*** Quit after how many read errors?"))
}

func TestAsk_HelpDoesNotConsumeProgress(t *testing.T) {
	a, out := newTestAsker("?\nyes\n")
	ok, err := a.AskYesNo(question.Hash, false)
	require.NoError(t, err)
	assert.True(t, ok)

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, "*** Hash the data? [no]"))
	assert.Contains(t, s, "    A (cryptographic) hash is a fixed-length")
}

func TestAsk_CustomHelpToken(t *testing.T) {
	var out bytes.Buffer
	a := New(strings.NewReader("help\n?\n\n"), &out, WithHelpToken("help"), WithHelpIndent(2))
	ans, err := a.AskSize(question.BlockSize, "512k")
	require.NoError(t, err)
	assert.Equal(t, "512k", ans)
	assert.Contains(t, out.String(), "  The block size specifies how much data")
}

func TestAsk_Styles(t *testing.T) {
	var out bytes.Buffer
	a := New(strings.NewReader("?\nno\n"), &out,
		WithPromptStyle(func(s string) string { return "<" + s + ">" }),
		WithHelpStyle(func(s string) string { return "[" + s + "]" }),
	)
	_, err := a.AskYesNo(question.Run, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "\n<*** Run now? [no]>  ")
	assert.Contains(t, out.String(), "[    Type 'yes'")
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"Yes\n", false, true},
		{"N\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\nY\n", false, true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			a, _ := newTestAsker(tt.input)
			got, err := a.AskYesNo(question.Verbose, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAskSize_RejectsThenAccepts(t *testing.T) {
	a, _ := newTestAsker("10KB\n+5k\nk10\n10G\n")
	got, err := a.AskSize(question.Offset, "")
	require.NoError(t, err)
	assert.Equal(t, "10G", got)
}

func TestAskChoice_LowerCases(t *testing.T) {
	a, _ := newTestAsker("remote\nSERVER\n")
	got, err := a.AskChoice(question.Mode, []string{"local", "client", "server"}, "local")
	require.NoError(t, err)
	assert.Equal(t, "server", got)
}

func TestAskOptionalFile(t *testing.T) {
	t.Run("empty answer without default is unset", func(t *testing.T) {
		a, out := newTestAsker("\n")
		got, err := a.AskOptionalFile(question.DestFile, "")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, "\n*** Output file:  ", out.String())
	})

	t.Run("empty answer takes default", func(t *testing.T) {
		a, _ := newTestAsker("\n")
		got, err := a.AskOptionalFile(question.LogFile, "rdd.log")
		require.NoError(t, err)
		assert.Equal(t, "rdd.log", got)
	})

	t.Run("answer overrides default", func(t *testing.T) {
		a, _ := newTestAsker("/tmp/copy.log\n")
		got, err := a.AskOptionalFile(question.LogFile, "rdd.log")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/copy.log", got)
	})
}

func TestAsk_InputExhausted(t *testing.T) {
	t.Run("empty stream", func(t *testing.T) {
		a, _ := newTestAsker("")
		_, err := a.AskFile(question.Source, "")
		assert.ErrorIs(t, err, ErrInputExhausted)
	})

	t.Run("only invalid answers", func(t *testing.T) {
		a, _ := newTestAsker("abc\n12a\n")
		_, err := a.AskNumber(question.Port, "")
		assert.ErrorIs(t, err, ErrInputExhausted)
	})

	t.Run("final line without newline is read", func(t *testing.T) {
		a, _ := newTestAsker("4832")
		got, err := a.AskNumber(question.Port, "")
		require.NoError(t, err)
		assert.Equal(t, "4832", got)

		_, err = a.AskNumber(question.Port, "")
		assert.ErrorIs(t, err, ErrInputExhausted)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestAsk_ReadFailure(t *testing.T) {
	a := New(failingReader{}, io.Discard)
	_, err := a.AskFile(question.Source, "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInputExhausted))
	assert.Contains(t, err.Error(), "tty gone")
}

func TestAsk_UnknownQuestion(t *testing.T) {
	a, out := newTestAsker("anything\n")
	_, err := a.Ask("inetd", AnyText(), "")
	assert.ErrorIs(t, err, question.ErrUnknownQuestion)
	assert.Empty(t, out.String())
}

func TestReader_ReturnsUnconsumedInput(t *testing.T) {
	var out bytes.Buffer
	a := New(strings.NewReader("yes\nfirst line for rdd\nsecond\n"), &out)

	ok, err := a.AskYesNo(question.Run, false)
	require.NoError(t, err)
	require.True(t, ok)

	rest, err := io.ReadAll(a.Reader())
	require.NoError(t, err)
	assert.Equal(t, "first line for rdd\nsecond\n", string(rest))
}

func TestReader_UnbufferedReturnsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers")
	require.NoError(t, os.WriteFile(path, []byte("no\n"), 0644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	a := New(f, &out)
	_, err = a.AskYesNo(question.Run, false)
	require.NoError(t, err)

	assert.Same(t, f, a.Reader())
}
