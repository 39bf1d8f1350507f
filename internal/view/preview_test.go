package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewLines() []string {
	return []string{
		"[User] 2026-01-02 03:04:05",
		"how do I fix the scanner",
		"[Assistant] 2026-01-02 03:05:00",
		"increase the buffer size",
		"then fix the error handling",
	}
}

func TestPreviewOpenResets(t *testing.T) {
	var p PreviewState
	p.Scroll = 7
	p.Search = "stale"

	p.Open(previewLines())
	assert.Equal(t, 0, p.Scroll)
	assert.Empty(t, p.Search)
	assert.Len(t, p.Lines, 5)

	p.Close()
	assert.Nil(t, p.Lines)
}

func TestPreviewScrollBounds(t *testing.T) {
	var p PreviewState
	p.Open(previewLines())

	p.ScrollUp(3)
	assert.Equal(t, 0, p.Scroll)

	p.ScrollDown(100)
	assert.Equal(t, 4, p.Scroll, "scroll clamps to last line")

	p.ScrollTop()
	assert.Equal(t, 0, p.Scroll)
	p.ScrollBottom()
	assert.Equal(t, 4, p.Scroll)
}

func TestPreviewSearch(t *testing.T) {
	var p PreviewState
	p.Open(previewLines())
	p.Scroll = 3

	p.Search = "FIX"
	p.UpdateSearch()
	require.Equal(t, []int{1, 4}, p.Matches, "search is case-insensitive")
	assert.Equal(t, 1, p.Scroll, "scroll jumps to the first match")

	// a miss keeps the scroll where it was
	p.Scroll = 2
	p.Search = "zzz"
	p.UpdateSearch()
	assert.Empty(t, p.Matches)
	assert.Equal(t, 2, p.Scroll)
}

func TestPreviewMatchNavigationWraps(t *testing.T) {
	var p PreviewState
	p.Open(previewLines())
	p.Search = "fix"
	p.UpdateSearch()
	require.Equal(t, []int{1, 4}, p.Matches)

	p.NextMatch()
	assert.Equal(t, 1, p.MatchIndex)
	assert.Equal(t, 4, p.Scroll)

	p.NextMatch()
	assert.Equal(t, 0, p.MatchIndex, "next wraps to the first match")
	assert.Equal(t, 1, p.Scroll)

	p.PrevMatch()
	assert.Equal(t, 1, p.MatchIndex, "prev wraps to the last match")
	assert.Equal(t, 4, p.Scroll)
}

func TestPreviewMatchNavigationEmpty(t *testing.T) {
	var p PreviewState
	p.Open(previewLines())

	p.NextMatch()
	p.PrevMatch()
	assert.Equal(t, 0, p.Scroll)
	assert.Equal(t, 0, p.MatchIndex)
}
