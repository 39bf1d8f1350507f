package session

import (
	"encoding/json"
	"time"
)

// RecordKind discriminates the JSONL record variants found in Claude Code
// transcripts.
type RecordKind int

const (
	KindSummary RecordKind = iota
	KindCustomTitle
	KindFileHistorySnapshot
	KindUser
	KindAssistant
	KindSystem
	KindQueueOperation
	KindUnknown
)

// Record is one decoded transcript line. Only the fields relevant to the
// record's Kind are populated.
type Record struct {
	Kind RecordKind

	Summary     string // KindSummary
	LeafUUID    string
	CustomTitle string // KindCustomTitle
	MessageID   string // KindFileHistorySnapshot

	// KindUser / KindAssistant, plus optional fields on KindSystem.
	UUID         string
	Timestamp    time.Time
	HasTimestamp bool
	Cwd          string
	GitBranch    string
	IsMeta       bool
	Message      Message
}

// Message is the payload of a user or assistant record.
type Message struct {
	Role    string
	Content Content
}

// envelope mirrors the superset of fields across all record shapes. Required
// fields are pointers so a missing key is distinguishable from a zero value.
type envelope struct {
	Type        string          `json:"type"`
	Summary     *string         `json:"summary"`
	LeafUUID    string          `json:"leafUuid"`
	CustomTitle *string         `json:"customTitle"`
	MessageID   *string         `json:"messageId"`
	UUID        *string         `json:"uuid"`
	Timestamp   string          `json:"timestamp"`
	Cwd         string          `json:"cwd"`
	GitBranch   string          `json:"gitBranch"`
	IsMeta      bool            `json:"isMeta"`
	Message     json.RawMessage `json:"message"`
}

type rawMessage struct {
	Role    *string         `json:"role"`
	Content json.RawMessage `json:"content"`
}

// DecodeRecord decodes one transcript line. It returns ok=false for empty
// lines, invalid JSON, and records missing required fields for their type.
// Transcripts are append-only and may contain partially written or
// forward-incompatible lines, so a bad line is skipped, never an error.
// An unrecognized type decodes to KindUnknown.
func DecodeRecord(line []byte) (Record, bool) {
	if len(line) == 0 {
		return Record{}, false
	}

	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return Record{}, false
	}

	switch env.Type {
	case "summary":
		if env.Summary == nil {
			return Record{}, false
		}
		return Record{Kind: KindSummary, Summary: *env.Summary, LeafUUID: env.LeafUUID}, true

	case "custom-title":
		if env.CustomTitle == nil {
			return Record{}, false
		}
		return Record{Kind: KindCustomTitle, CustomTitle: *env.CustomTitle}, true

	case "file-history-snapshot":
		if env.MessageID == nil {
			return Record{}, false
		}
		return Record{Kind: KindFileHistorySnapshot, MessageID: *env.MessageID}, true

	case "user", "assistant":
		if env.UUID == nil || env.Message == nil {
			return Record{}, false
		}
		ts, ok := parseTimestamp(env.Timestamp)
		if !ok {
			return Record{}, false
		}
		msg, ok := decodeMessage(env.Message)
		if !ok {
			return Record{}, false
		}
		kind := KindUser
		if env.Type == "assistant" {
			kind = KindAssistant
		}
		return Record{
			Kind:         kind,
			UUID:         *env.UUID,
			Timestamp:    ts,
			HasTimestamp: true,
			Cwd:          env.Cwd,
			GitBranch:    env.GitBranch,
			IsMeta:       env.IsMeta,
			Message:      msg,
		}, true

	case "system":
		rec := Record{Kind: KindSystem}
		if env.UUID != nil {
			rec.UUID = *env.UUID
		}
		if ts, ok := parseTimestamp(env.Timestamp); ok {
			rec.Timestamp = ts
			rec.HasTimestamp = true
		}
		return rec, true

	case "queue-operation":
		return Record{Kind: KindQueueOperation}, true

	default:
		return Record{Kind: KindUnknown}, true
	}
}

func decodeMessage(raw json.RawMessage) (Message, bool) {
	var m rawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return Message{}, false
	}
	if m.Role == nil || m.Content == nil {
		return Message{}, false
	}
	content, ok := decodeContent(m.Content)
	if !ok {
		return Message{}, false
	}
	return Message{Role: *m.Role, Content: content}, true
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
