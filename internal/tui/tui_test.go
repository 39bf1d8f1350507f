package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pknull/ccsessionctl/internal/config"
	"github.com/pknull/ccsessionctl/internal/session"
	"github.com/pknull/ccsessionctl/internal/view"
)

func testModel(t *testing.T) model {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sess1.jsonl")
	line := `{"type":"user","uuid":"u1","timestamp":"2026-01-02T03:04:05Z","message":{"role":"user","content":"hello"}}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(line), 0o644))

	s := session.New("sess1", "myproj", "-home-me-myproj", path, int64(len(line)),
		time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	cfg := &config.Config{
		ProjectsRoot: dir,
		ExportDir:    filepath.Join(t.TempDir(), "export"),
		ArchiveDir:   filepath.Join(t.TempDir(), "archive"),
		PruneAgeDays: 30,
	}
	return initialModel(view.NewState([]session.Session{s}), cfg)
}

func pressKey(t *testing.T, m model, r rune) model {
	t.Helper()
	nm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return nm.(model)
}

func TestExportAsksForConfirmation(t *testing.T) {
	m := testModel(t)

	m = pressKey(t, m, 'e')
	require.Equal(t, view.ModeConfirm, m.st.Mode)
	assert.Equal(t, view.DialogExportSelected, m.st.DialogKind)

	// nothing written before the dialog is answered
	_, err := os.Stat(filepath.Join(m.cfg.ExportDir, "myproj_sess1.md"))
	assert.True(t, os.IsNotExist(err))

	m = pressKey(t, m, 'y')
	assert.Equal(t, view.ModeList, m.st.Mode)
	_, err = os.Stat(filepath.Join(m.cfg.ExportDir, "myproj_sess1.md"))
	assert.NoError(t, err)
}

func TestArchiveAsksForConfirmation(t *testing.T) {
	m := testModel(t)

	m = pressKey(t, m, 'z')
	require.Equal(t, view.ModeConfirm, m.st.Mode)
	assert.Equal(t, view.DialogArchiveSelected, m.st.DialogKind)

	m = pressKey(t, m, 'y')
	_, err := os.Stat(filepath.Join(m.cfg.ArchiveDir, "myproj_sess1.tar.gz"))
	assert.NoError(t, err)
}

func TestArchiveDeclinedWritesNothing(t *testing.T) {
	m := testModel(t)

	m = pressKey(t, m, 'z')
	require.Equal(t, view.ModeConfirm, m.st.Mode)

	m = pressKey(t, m, 'n')
	assert.Equal(t, view.ModeList, m.st.Mode)
	_, err := os.Stat(filepath.Join(m.cfg.ArchiveDir, "myproj_sess1.tar.gz"))
	assert.True(t, os.IsNotExist(err))
}
