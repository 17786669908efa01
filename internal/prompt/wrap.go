package prompt

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Wrap reflows text into paragraphs no wider than width columns, counting
// the indent, and indents every line by indent spaces. Paragraphs are
// separated by blank lines; line breaks inside a paragraph are not kept.
func Wrap(text string, width, indentBy int) string {
	limit := width - indentBy
	if limit < 1 {
		limit = 1
	}

	var paragraphs []string
	for _, p := range strings.Split(strings.TrimSpace(text), "\n\n") {
		words := strings.Fields(p)
		if len(words) == 0 {
			continue
		}
		paragraphs = append(paragraphs, wordwrap.String(strings.Join(words, " "), limit))
	}

	indented := indent.String(strings.Join(paragraphs, "\n\n"), uint(max(indentBy, 0)))

	lines := strings.Split(indented, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
