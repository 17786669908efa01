package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	text := `
first paragraph has quite a few words that will need to be wrapped
onto several lines when the width is small

second paragraph
`
	got := Wrap(text, 24, 4)

	want := strings.Join([]string{
		"    first paragraph has",
		"    quite a few words",
		"    that will need to be",
		"    wrapped onto several",
		"    lines when the width",
		"    is small",
		"",
		"    second paragraph",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWrap_LineWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	for _, width := range []int{20, 40, 75} {
		for _, line := range strings.Split(Wrap(text, width, 4), "\n") {
			assert.LessOrEqual(t, len(line), width, "line %q exceeds %d", line, width)
			assert.True(t, strings.HasPrefix(line, "    "))
		}
	}
}

func TestWrap_NoIndent(t *testing.T) {
	assert.Equal(t, "one two\nthree", Wrap("one\ntwo three", 7, 0))
}

func TestWrap_Empty(t *testing.T) {
	assert.Equal(t, "", Wrap("\n\n   \n", 75, 4))
}
