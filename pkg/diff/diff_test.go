package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_IdenticalContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Lines("margin-left: 10;\n", "margin-left: 10;\n", "ltr", "rtl"))
}

func TestLines_DirectionFlip(t *testing.T) {
	t.Parallel()

	before := "margin-left: 10;\nwidth: 4px;\n"
	after := "margin-right: 10;\nwidth: 4px;\n"

	result := Lines(before, after, "ltr", "rtl")

	assert.Equal(t, "--- ltr\n+++ rtl\n-margin-left: 10;\n+margin-right: 10;\n width: 4px;\n", result)
}

func TestLines_AddedAndRemoved(t *testing.T) {
	t.Parallel()

	result := Lines("a;\nb;\n", "b;\nc;\n", "before", "after")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "-a;\n")
	assert.Contains(t, result, " b;\n")
	assert.Contains(t, result, "+c;\n")
}

func TestLines_EmptySides(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "--- old\n+++ new\n+height: 0;\n", Lines("", "height: 0;\n", "old", "new"))
	assert.Equal(t, "--- old\n+++ new\n-height: 0;\n", Lines("height: 0;\n", "", "old", "new"))
}

func TestLines_Truncates(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < maxDiffLines+50; i++ {
		fmt.Fprintf(&b, "line-%d: %d;\n", i, i)
	}

	result := Lines("", b.String(), "old", "new")

	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(result, "\n"), "\n"), maxDiffLines+1)
}

func TestChanges(t *testing.T) {
	t.Parallel()

	added, removed := Changes("a;\nb;\nc;\n", "a;\nx;\ny;\n")
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, removed)

	added, removed = Changes("same\n", "same\n")
	assert.Zero(t, added)
	assert.Zero(t, removed)
}
