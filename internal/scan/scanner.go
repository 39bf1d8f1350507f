package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pknull/ccsessionctl/internal/session"
)

// Sessions discovers every transcript file under the projects root, one
// Session per .jsonl file. Only file metadata is populated; derived fields
// come later from session.LoadMetadata. The result is sorted newest first.
func Sessions(projectsRoot string) ([]session.Session, error) {
	var sessions []session.Session

	entries, err := os.ReadDir(projectsRoot)
	if os.IsNotExist(err) {
		return sessions, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", projectsRoot, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		project := session.ProjectFromDirName(entry.Name(), filepath.Join(projectsRoot, entry.Name()))
		found, err := projectSessions(project)
		if err != nil {
			// one unreadable project directory never fails the whole scan
			continue
		}
		sessions = append(sessions, found...)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Modified.After(sessions[j].Modified)
	})

	return sessions, nil
}

func projectSessions(project session.Project) ([]session.Session, error) {
	entries, err := os.ReadDir(project.Path)
	if err != nil {
		return nil, err
	}

	var sessions []session.Session
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jsonl" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".jsonl")
		sessions = append(sessions, session.New(
			id,
			project.Name,
			project.RawName,
			filepath.Join(project.Path, entry.Name()),
			info.Size(),
			info.ModTime(),
		))
	}
	return sessions, nil
}

// ProjectNames returns the sorted unique project names across sessions.
func ProjectNames(sessions []session.Session) []string {
	seen := make(map[string]struct{})
	var names []string
	for i := range sessions {
		if _, ok := seen[sessions[i].Project]; ok {
			continue
		}
		seen[sessions[i].Project] = struct{}{}
		names = append(names, sessions[i].Project)
	}
	sort.Strings(names)
	return names
}

// DefaultProjectsRoot is ~/.claude/projects.
func DefaultProjectsRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude", "projects"), nil
}
