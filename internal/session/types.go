package session

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Project is one directory under the Claude Code projects root. Directory
// names encode the working directory path, e.g. "-home-pknull-dotfiles".
type Project struct {
	Name    string
	RawName string
	Path    string
}

// ProjectFromDirName derives the short project name from the encoded
// directory name ("-home-pknull-Projects-threshold" -> "threshold").
func ProjectFromDirName(rawName, path string) Project {
	name := rawName
	if i := strings.LastIndex(rawName, "-"); i >= 0 {
		name = rawName[i+1:]
	}
	if name == "" {
		name = rawName
	}
	return Project{Name: name, RawName: rawName, Path: path}
}

// DecodeProjectPath reverses the directory encoding back to a filesystem
// path ("-home-pknull-dotfiles" -> "/home/pknull/dotfiles").
func DecodeProjectPath(rawName string) string {
	p := strings.TrimPrefix(rawName, "-")
	return "/" + strings.ReplaceAll(p, "-", "/")
}

// Session is one transcript file plus metadata. Fields below the mtime are
// derived by LoadMetadata and stay zero until a scan has run; repeated scans
// overwrite them wholesale.
type Session struct {
	ID         string
	Project    string
	ProjectRaw string
	Path       string
	SizeBytes  int64
	Modified   time.Time

	Created      time.Time
	Summary      string
	CustomTitle  string
	FirstMessage string
	MessageCount int
	// SearchContent is the lowercased concatenation of all message text.
	SearchContent string
	// TokenCount is a rough estimate (~4 chars per token), not a tokenizer.
	TokenCount int

	IsAgent      bool
	HasDirectory bool
	// Scanned reports whether LoadMetadata has populated the derived fields.
	Scanned bool
}

// New builds a Session from file metadata alone.
func New(id, project, projectRaw, path string, sizeBytes int64, modified time.Time) Session {
	dirPath := strings.TrimSuffix(path, filepath.Ext(path))
	info, err := os.Stat(dirPath)
	hasDir := err == nil && info.IsDir()

	return Session{
		ID:           id,
		Project:      project,
		ProjectRaw:   projectRaw,
		Path:         path,
		SizeBytes:    sizeBytes,
		Modified:     modified,
		IsAgent:      strings.HasPrefix(id, "agent-"),
		HasDirectory: hasDir,
	}
}

// DirPath is the sibling directory holding auxiliary session files, present
// when HasDirectory is true.
func (s *Session) DirPath() string {
	return strings.TrimSuffix(s.Path, filepath.Ext(s.Path))
}

// MessageRole identifies who produced a display message.
type MessageRole int

const (
	RoleUser MessageRole = iota
	RoleAssistant
	RoleSystem
)

func (r MessageRole) String() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAssistant:
		return "Assistant"
	default:
		return "System"
	}
}

// DisplayMessage is the unit consumed by the preview renderer. Messages are
// materialized fresh on every preview open and never cached.
type DisplayMessage struct {
	Role      MessageRole
	Timestamp time.Time
	Content   string
}
