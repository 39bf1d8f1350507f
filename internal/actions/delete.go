// Package actions implements the bulk operations on sessions: delete,
// Markdown export, and tar.gz archiving. Each accepts session references
// and performs its own I/O; candidate selection stays in the view layer.
package actions

import (
	"fmt"
	"os"

	"github.com/pknull/ccsessionctl/internal/session"
)

// DeleteSession removes the transcript file and its sibling directory of
// auxiliary files, if present.
func DeleteSession(s *session.Session) error {
	if err := os.Remove(s.Path); err != nil {
		return fmt.Errorf("delete %s: %w", s.Path, err)
	}

	dirPath := s.DirPath()
	if info, err := os.Stat(dirPath); err == nil && info.IsDir() {
		if err := os.RemoveAll(dirPath); err != nil {
			return fmt.Errorf("delete directory %s: %w", dirPath, err)
		}
	}

	return nil
}

// DeleteSessions deletes each session, returning how many succeeded.
// Individual failures are skipped so one vanished file never aborts a bulk
// delete.
func DeleteSessions(sessions []*session.Session) int {
	deleted := 0
	for _, s := range sessions {
		if DeleteSession(s) == nil {
			deleted++
		}
	}
	return deleted
}
