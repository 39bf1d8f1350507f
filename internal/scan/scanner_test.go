package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pknull/ccsessionctl/internal/session"
)

func writeSessionFile(t *testing.T, root, project, id string, mtime time.Time) {
	t.Helper()
	dir := filepath.Join(root, project)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, id+".jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestSessions(t *testing.T) {
	root := t.TempDir()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	writeSessionFile(t, root, "-home-me-alpha", "old", base)
	writeSessionFile(t, root, "-home-me-alpha", "new", base.Add(2*time.Hour))
	writeSessionFile(t, root, "-home-me-beta", "mid", base.Add(time.Hour))

	// ignored entries
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".hidden"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden", "x.jsonl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "-home-me-alpha", "notes.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.jsonl"), nil, 0o644))

	sessions, err := Sessions(root)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	// newest first
	assert.Equal(t, "new", sessions[0].ID)
	assert.Equal(t, "mid", sessions[1].ID)
	assert.Equal(t, "old", sessions[2].ID)

	assert.Equal(t, "alpha", sessions[0].Project)
	assert.Equal(t, "-home-me-alpha", sessions[0].ProjectRaw)
	assert.Equal(t, "beta", sessions[1].Project)
	assert.Equal(t, int64(3), sessions[0].SizeBytes)
	assert.False(t, sessions[0].Scanned)
}

func TestSessionsMissingRoot(t *testing.T) {
	sessions, err := Sessions(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestProjectNames(t *testing.T) {
	sessions := []session.Session{
		{Project: "beta"},
		{Project: "alpha"},
		{Project: "beta"},
		{Project: "alpha"},
	}
	assert.Equal(t, []string{"alpha", "beta"}, ProjectNames(sessions))
	assert.Nil(t, ProjectNames(nil))
}
