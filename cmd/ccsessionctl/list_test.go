package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pknull/ccsessionctl/internal/session"
)

func TestSortSessionsByName(t *testing.T) {
	sessions := []session.Session{
		{ID: "aaaa", Summary: "zebra cleanup"},
		{ID: "zzzz", Summary: "alpha refactor"},
		{ID: "mmmm", FirstMessage: "middle task"},
	}

	require.NoError(t, sortSessions(sessions, "name", false))
	// the id never participates; summary-else-first-message does
	assert.Equal(t, "zzzz", sessions[0].ID)
	assert.Equal(t, "mmmm", sessions[1].ID)
	assert.Equal(t, "aaaa", sessions[2].ID)

	require.NoError(t, sortSessions(sessions, "name", true))
	assert.Equal(t, "aaaa", sessions[0].ID)
}

func TestSortSessionsFields(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sessions := []session.Session{
		{ID: "old", Project: "beta", SizeBytes: 300, Modified: base.Add(-time.Hour)},
		{ID: "new", Project: "alpha", SizeBytes: 100, Modified: base},
	}

	require.NoError(t, sortSessions(sessions, "date", false))
	assert.Equal(t, "new", sessions[0].ID)

	require.NoError(t, sortSessions(sessions, "size", false))
	assert.Equal(t, "old", sessions[0].ID)

	require.NoError(t, sortSessions(sessions, "project", false))
	assert.Equal(t, "alpha", sessions[0].Project)

	assert.Error(t, sortSessions(sessions, "bogus", false))
}

func TestFilterByProject(t *testing.T) {
	sessions := []session.Session{
		{ID: "s1", Project: "threshold"},
		{ID: "s2", Project: "dotfiles"},
		{ID: "s3", Project: "Thresher"},
	}

	// case-insensitive substring match, not exact equality
	got := filterByProject(sessions, "Thresh")
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "s3", got[1].ID)

	assert.Len(t, filterByProject(sessions, ""), 3)
	assert.Empty(t, filterByProject(sessions, "nomatch"))
}

func TestProjectTotals(t *testing.T) {
	sessions := []session.Session{
		{Project: "small", SizeBytes: 100, MessageCount: 2, TokenCount: 50},
		{Project: "big", SizeBytes: 900, MessageCount: 1, TokenCount: 10},
		{Project: "small", SizeBytes: 200, MessageCount: 3, TokenCount: 25},
	}

	totals := projectTotals(sessions)
	require.Len(t, totals, 2)

	// largest total size first
	assert.Equal(t, "big", totals[0].name)
	assert.Equal(t, int64(900), totals[0].bytes)
	assert.Equal(t, "small", totals[1].name)
	assert.Equal(t, int64(300), totals[1].bytes)
	assert.Equal(t, 2, totals[1].sessions)
	assert.Equal(t, 5, totals[1].messages)
	assert.Equal(t, 75, totals[1].tokens)
}
