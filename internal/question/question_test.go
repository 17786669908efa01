package question

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id         string
		wantPrompt string
	}{
		{Mode, "In which mode do you want to run rdd"},
		{Progress, "How often should rdd report progress"},
		{BlockSize, "Block size?"},
		{Slice, "Process entire input file?"},
		{Run, "Run now?"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			spec, err := Lookup(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, spec.ID)
			assert.Contains(t, spec.Prompt, tt.wantPrompt)
			assert.NotEmpty(t, strings.TrimSpace(spec.Help))
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("inetd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownQuestion))
	assert.Contains(t, err.Error(), `"inetd"`)
}

func TestMustLookup_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustLookup("nope") })
	assert.NotPanics(t, func() { MustLookup(Port) })
}

func TestSizeQuestionsCarrySuffixHelp(t *testing.T) {
	for _, id := range []string{BlockSize, MinBlockSize, Offset, Count} {
		spec := MustLookup(id)
		assert.Contains(t, spec.Help, "multipliers", "help for %s should explain size suffixes", id)
	}
	assert.Contains(t, MustLookup(Offset).Help, "The offset is given in bytes")
}

func TestIDs(t *testing.T) {
	ids := IDs()
	assert.Len(t, ids, 19)
	assert.True(t, sort.StringsAreSorted(ids))
	for _, id := range ids {
		_, err := Lookup(id)
		assert.NoError(t, err)
	}
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(Hash, Port)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(md, "# rdd wizard questions"))
	assert.Contains(t, md, "## hash")
	assert.Contains(t, md, "**Hash the data?**")
	assert.Contains(t, md, "## port")
	assert.NotContains(t, md, "## mode")

	_, err = Markdown("bogus")
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	all, err := Markdown()
	require.NoError(t, err)
	assert.Equal(t, len(IDs()), strings.Count(all, "\n## "))
}
