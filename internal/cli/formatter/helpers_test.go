package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "this is a…", Truncate("this is a long string", 10))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"1", "short"},
			{"22", "a much longer name"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, two data rows.
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "short")
	assert.Contains(t, lines[3], "a much longer name")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestScoreBadge(t *testing.T) {
	assert.Contains(t, ScoreBadge(85), "85/100")
	assert.Contains(t, ScoreBadge(0), "0/100")
}
