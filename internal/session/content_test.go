package session

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hello", Truncate("hello", 5))

	got := Truncate("hello world", 8)
	assert.Equal(t, "hello...", got)
	assert.Equal(t, 8, utf8.RuneCountInString(got))

	// counts runes, not bytes
	got = Truncate("日本語のテキストです", 6)
	assert.Equal(t, "日本語...", got)
	assert.Equal(t, 6, utf8.RuneCountInString(got))

	// tiny budgets cut without the ellipsis
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "", Truncate("abcdef", 0))
}

func TestDecodeContentString(t *testing.T) {
	c, ok := decodeContent(json.RawMessage(`"plain text"`))
	require.True(t, ok)
	assert.False(t, c.Structured)
	assert.Equal(t, "plain text", c.AsText())
}

func TestDecodeContentBlocks(t *testing.T) {
	raw := json.RawMessage(`[
		{"type":"text","text":"answer"},
		{"type":"thinking","thinking":"hmm"},
		{"type":"tool_use","name":"Bash","input":{"command":"ls -la"}},
		{"type":"tool_result","content":[{"type":"text","text":"file1"},{"type":"text","text":"file2"}]},
		{"type":"server_tool_use","id":"x"}
	]`)

	c, ok := decodeContent(raw)
	require.True(t, ok)
	require.True(t, c.Structured)
	require.Len(t, c.Blocks, 5)

	text := c.AsText()
	lines := strings.Split(text, "\n")
	// tool_result join contributes two lines; the unknown block contributes none
	require.Len(t, lines, 5)
	assert.Equal(t, "answer", lines[0])
	assert.Equal(t, "💭 hmm", lines[1])
	assert.Equal(t, `🔧 Bash "ls -la"`, lines[2])
	assert.Equal(t, "📋 file1", lines[3])
	assert.Equal(t, "file2", lines[4])
}

func TestDecodeContentMissingRequiredField(t *testing.T) {
	_, ok := decodeContent(json.RawMessage(`[{"type":"text"}]`))
	assert.False(t, ok, "text block without text field should fail")

	_, ok = decodeContent(json.RawMessage(`[{"type":"tool_use","input":{}}]`))
	assert.False(t, ok, "tool_use block without name should fail")

	_, ok = decodeContent(json.RawMessage(`{"neither":"string nor array"}`))
	assert.False(t, ok)
}

func TestToolUseInputPriority(t *testing.T) {
	b := Block{Kind: BlockToolUse, ToolName: "Grep", ToolInput: map[string]any{
		"file_path": "/tmp/x",
		"pattern":   "needle",
	}}
	got, ok := b.ExtractText()
	require.True(t, ok)
	assert.Equal(t, `🔧 Grep "needle"`, got, "pattern outranks file_path")

	b.ToolInput["command"] = "run"
	got, _ = b.ExtractText()
	assert.Equal(t, `🔧 Grep "run"`, got, "command outranks pattern")

	b.ToolInput = nil
	got, _ = b.ExtractText()
	assert.Equal(t, "🔧 Grep", got)
}

func TestToolUseInputTruncation(t *testing.T) {
	long := strings.Repeat("a", 80)
	b := Block{Kind: BlockToolUse, ToolName: "Bash", ToolInput: map[string]any{"command": long}}
	got, ok := b.ExtractText()
	require.True(t, ok)
	want := `🔧 Bash "` + strings.Repeat("a", 57) + `..."`
	assert.Equal(t, want, got)
}

func TestFormatToolResult(t *testing.T) {
	assert.Equal(t, "ok", formatToolResult(json.RawMessage(`"ok"`)))
	assert.Equal(t, "a\nb", formatToolResult(json.RawMessage(`[{"text":"a"},{"text":"b"}]`)))
	assert.Equal(t, "(result)", formatToolResult(json.RawMessage(`{"weird":1}`)))
	assert.Equal(t, "(result)", formatToolResult(json.RawMessage(`[{"no_text":1}]`)))

	long := strings.Repeat("x", 300)
	got := formatToolResult(json.RawMessage(`"` + long + `"`))
	assert.Equal(t, 200, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestIsSystemContent(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"", true},
		{"<system-reminder>stay on task</system-reminder>", true},
		{"<SYSTEM-REMINDER>case insensitive</SYSTEM-REMINDER>", true},
		{"<command-name>/clear</command-name>", true},
		{"<local-command-stdout>done</local-command-stdout>", true},
		{"<bash-input>ls</bash-input>", true},
		{"<user-memory-input>note</user-memory-input>", true},
		{"<ide-selection>foo</ide-selection>", true},
		{"<html><body>user pasted markup</body></html>", false},
		{"< 5 means less than five", false},
		{"ordinary question about code", false},
	}
	for _, tc := range cases {
		c := Content{Text: tc.text}
		assert.Equal(t, tc.want, c.IsSystemContent(), "text=%q", tc.text)
	}
}

func TestIsSystemContentStructured(t *testing.T) {
	c := Content{Structured: true, Blocks: []Block{
		{Kind: BlockText, Text: "<system-reminder>injected</system-reminder>"},
	}}
	assert.True(t, c.IsSystemContent())

	c = Content{Structured: true, Blocks: []Block{{Kind: BlockOther}}}
	assert.True(t, c.IsSystemContent(), "no text at all counts as system")
}
