package session

import (
	"encoding/json"
	"strings"
)

// BlockKind discriminates structured content block variants.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockToolUse
	BlockToolResult
	BlockThinking
	BlockOther
)

// Block is one unit of structured message content.
type Block struct {
	Kind      BlockKind
	Text      string          // BlockText, BlockThinking
	ToolName  string          // BlockToolUse
	ToolInput map[string]any  // BlockToolUse, may be nil
	Result    json.RawMessage // BlockToolResult payload
}

// Content is a message body: either a plain string or an ordered sequence of
// blocks.
type Content struct {
	Structured bool
	Text       string
	Blocks     []Block
}

type rawBlock struct {
	Type     string          `json:"type"`
	Text     *string         `json:"text"`
	Thinking *string         `json:"thinking"`
	Name     *string         `json:"name"`
	Input    map[string]any  `json:"input"`
	Content  json.RawMessage `json:"content"`
}

func decodeContent(raw json.RawMessage) (Content, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Content{Text: s}, true
	}

	var blocks []rawBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return Content{}, false
	}

	out := Content{Structured: true, Blocks: make([]Block, 0, len(blocks))}
	for _, b := range blocks {
		block, ok := decodeBlock(b)
		if !ok {
			return Content{}, false
		}
		out.Blocks = append(out.Blocks, block)
	}
	return out, true
}

func decodeBlock(b rawBlock) (Block, bool) {
	switch b.Type {
	case "text":
		if b.Text == nil {
			return Block{}, false
		}
		return Block{Kind: BlockText, Text: *b.Text}, true
	case "thinking":
		if b.Thinking == nil {
			return Block{}, false
		}
		return Block{Kind: BlockThinking, Text: *b.Thinking}, true
	case "tool_use":
		if b.Name == nil {
			return Block{}, false
		}
		return Block{Kind: BlockToolUse, ToolName: *b.Name, ToolInput: b.Input}, true
	case "tool_result":
		return Block{Kind: BlockToolResult, Result: b.Content}, true
	default:
		// unknown block types contribute no text but never fail the record
		return Block{Kind: BlockOther}, true
	}
}

const (
	markerThinking   = "💭"
	markerToolUse    = "🔧"
	markerToolResult = "📋"

	toolInputMaxChars  = 60
	toolResultMaxChars = 200
)

// toolInputKeys are checked in priority order for a tool-use preview.
var toolInputKeys = []string{"command", "pattern", "file_path"}

// ExtractText renders one block as a display line. It returns ok=false for
// blocks that contribute nothing.
func (b Block) ExtractText() (string, bool) {
	switch b.Kind {
	case BlockText:
		return b.Text, true
	case BlockThinking:
		return markerThinking + " " + b.Text, true
	case BlockToolUse:
		preview := ""
		for _, key := range toolInputKeys {
			v, ok := b.ToolInput[key].(string)
			if !ok {
				continue
			}
			if len([]rune(v)) > toolInputMaxChars {
				v = string([]rune(v)[:toolInputMaxChars-3]) + "..."
			}
			preview = " \"" + v + "\""
			break
		}
		return markerToolUse + " " + b.ToolName + preview, true
	case BlockToolResult:
		return markerToolResult + " " + formatToolResult(b.Result), true
	default:
		return "", false
	}
}

// formatToolResult summarizes a tool_result payload: an array of objects
// yields the newline-join of their string "text" fields, a bare string is
// used as is, anything else becomes "(result)".
func formatToolResult(raw json.RawMessage) string {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err == nil {
		var texts []string
		for _, item := range items {
			if t, ok := item["text"].(string); ok {
				texts = append(texts, t)
			}
		}
		if len(texts) > 0 {
			return Truncate(strings.Join(texts, "\n"), toolResultMaxChars)
		}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Truncate(s, toolResultMaxChars)
	}

	return "(result)"
}

// AsText flattens the content to display text: the newline-join of each
// block's rendering, or the plain string itself.
func (c Content) AsText() string {
	if !c.Structured {
		return c.Text
	}
	var parts []string
	for _, b := range c.Blocks {
		if t, ok := b.ExtractText(); ok {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// systemPrefixes marks content injected into the transcript by Claude Code
// itself rather than typed by the user. Matching is prefix-only so ordinary
// user text that happens to start with "<" (HTML, XML, comparisons) is not
// misclassified.
var systemPrefixes = []string{
	"<system-reminder",
	"<system-warning",
	"<command-name",
	"<command-message",
	"<command-args",
	"<local-command-stdout",
	"<local-command-stderr",
	"<bash-input",
	"<bash-stdout",
	"<bash-stderr",
	"<user-memory-input",
	"<context",
	"<claude-background-info",
	"<ide-selection",
	"<ide_opened_file",
	"<task-reminder",
}

// IsSystemContent reports whether the content is assistant-injected system
// material rather than genuine user input. Empty content counts as system.
func (c Content) IsSystemContent() bool {
	text := c.AsText()
	if text == "" {
		return true
	}
	lower := strings.ToLower(text)
	for _, p := range systemPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// Truncate shortens s to at most maxChars characters, replacing the tail
// with "..." when it cuts. Counts are runes, not bytes.
func Truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return string(runes[:maxChars])
	}
	return string(runes[:maxChars-3]) + "..."
}
