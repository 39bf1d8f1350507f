package session

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// maxLineSize bounds a single transcript line. Tool results with embedded
// file contents can get very large.
const maxLineSize = 10 * 1024 * 1024

const (
	firstMessageMaxChars = 100
	previewMaxChars      = 50
)

// LoadMetadata scans the transcript and populates the session's derived
// fields. Opening the file can fail; malformed lines inside an openable file
// never do, they are skipped at the decode boundary. Repeated calls
// overwrite the derived fields from scratch.
func LoadMetadata(s *Session) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	var (
		summary      string
		customTitle  string
		firstMessage string
		created      time.Time
		createdSet   bool
		messageCount int
		content      []string
		totalChars   int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		rec, ok := DecodeRecord(scanner.Bytes())
		if !ok {
			continue
		}

		switch rec.Kind {
		case KindSummary:
			content = append(content, rec.Summary)
			totalChars += utf8.RuneCountInString(rec.Summary)
			summary = rec.Summary // last one wins

		case KindCustomTitle:
			customTitle = rec.CustomTitle // last one wins

		case KindUser:
			messageCount++
			if !createdSet {
				created = rec.Timestamp
				createdSet = true
			}
			text := rec.Message.Content.AsText()
			if text != "" {
				content = append(content, text)
				totalChars += utf8.RuneCountInString(text)
				if firstMessage == "" && !rec.Message.Content.IsSystemContent() {
					firstMessage = truncateMessage(text, firstMessageMaxChars)
				}
			}

		case KindAssistant:
			messageCount++
			text := rec.Message.Content.AsText()
			if text != "" {
				content = append(content, text)
				totalChars += utf8.RuneCountInString(text)
			}
		}
		// system, file-history-snapshot, queue-operation and unknown records
		// carry no searchable content
	}

	s.Summary = summary
	s.CustomTitle = customTitle
	s.FirstMessage = firstMessage
	if createdSet {
		s.Created = created
	} else {
		s.Created = time.Time{}
	}
	s.MessageCount = messageCount
	s.SearchContent = strings.ToLower(strings.Join(content, " "))
	// ~4 chars per token; an estimate, not a tokenizer
	s.TokenCount = totalChars / 4
	s.Scanned = true

	return scanner.Err()
}

// LoadMessages streams the transcript into display messages for the preview,
// preserving file order. System-injected user content is dropped; system
// records with a timestamp become a fixed placeholder.
func LoadMessages(path string) ([]DisplayMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var messages []DisplayMessage

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		rec, ok := DecodeRecord(scanner.Bytes())
		if !ok {
			continue
		}

		switch rec.Kind {
		case KindUser:
			text := rec.Message.Content.AsText()
			if text != "" && !rec.Message.Content.IsSystemContent() {
				messages = append(messages, DisplayMessage{
					Role:      RoleUser,
					Timestamp: rec.Timestamp,
					Content:   text,
				})
			}

		case KindAssistant:
			text := rec.Message.Content.AsText()
			if text != "" {
				messages = append(messages, DisplayMessage{
					Role:      RoleAssistant,
					Timestamp: rec.Timestamp,
					Content:   text,
				})
			}

		case KindSystem:
			if rec.HasTimestamp {
				messages = append(messages, DisplayMessage{
					Role:      RoleSystem,
					Timestamp: rec.Timestamp,
					Content:   "[System]",
				})
			}
		}
	}

	return messages, scanner.Err()
}

// truncateMessage flattens newlines, trims, and truncates to maxChars.
func truncateMessage(s string, maxChars int) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", " ")
	return Truncate(s, maxChars)
}

// Preview returns the one-line label for a session. A custom title (set via
// /rename) wins; the first user message is preferred over the summary since
// summaries can be stale.
func Preview(s *Session) string {
	if s.CustomTitle != "" {
		return truncateMessage(s.CustomTitle, previewMaxChars)
	}
	if s.FirstMessage != "" {
		return truncateMessage(s.FirstMessage, previewMaxChars)
	}
	if s.Summary != "" {
		return truncateMessage(s.Summary, previewMaxChars)
	}
	if s.MessageCount > 0 {
		if s.MessageCount == 1 {
			return "[1 message]"
		}
		return fmt.Sprintf("[%d messages]", s.MessageCount)
	}
	id := s.ID
	if len(id) > 12 {
		id = id[:12] + "..."
	}
	return "[" + id + "]"
}

// IsEmpty reports whether a session has no label-worthy content at all,
// used by prune.
func (s *Session) IsEmpty() bool {
	return s.Scanned && s.CustomTitle == "" && s.FirstMessage == "" &&
		s.Summary == "" && s.MessageCount == 0
}
