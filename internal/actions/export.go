package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pknull/ccsessionctl/internal/session"
)

// ExportMarkdown writes one session as a Markdown document into outputDir
// and returns the written path. The document has a metadata header followed
// by one section per display message.
func ExportMarkdown(s *session.Session, outputDir string) (string, error) {
	messages, err := session.LoadMessages(s.Path)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.md", s.Project, s.ID))

	var b strings.Builder
	fmt.Fprintf(&b, "# Session: %s\n\n", s.ID)
	fmt.Fprintf(&b, "**Project:** %s\n", s.Project)
	fmt.Fprintf(&b, "**Date:** %s\n", s.Modified.UTC().Format("2006-01-02 15:04:05 UTC"))
	if s.Summary != "" {
		fmt.Fprintf(&b, "**Summary:** %s\n", s.Summary)
	}
	b.WriteString("\n---\n\n")

	for _, msg := range messages {
		fmt.Fprintf(&b, "### **%s** (%s)\n\n", msg.Role, msg.Timestamp.Format("15:04:05"))
		b.WriteString(msg.Content)
		b.WriteString("\n\n")
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outputPath, err)
	}
	return outputPath, nil
}

// ExportMarkdownAll exports each session, returning the written paths.
func ExportMarkdownAll(sessions []*session.Session, outputDir string) ([]string, error) {
	var paths []string
	for _, s := range sessions {
		path, err := ExportMarkdown(s, outputDir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// EnsureDir creates the directory when missing.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
