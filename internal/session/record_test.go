package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecordSummary(t *testing.T) {
	rec, ok := DecodeRecord([]byte(`{"type":"summary","summary":"Fix auth bug","leafUuid":"u1"}`))
	require.True(t, ok)
	assert.Equal(t, KindSummary, rec.Kind)
	assert.Equal(t, "Fix auth bug", rec.Summary)
	assert.Equal(t, "u1", rec.LeafUUID)

	_, ok = DecodeRecord([]byte(`{"type":"summary"}`))
	assert.False(t, ok, "summary without summary field is skipped")
}

func TestDecodeRecordCustomTitle(t *testing.T) {
	rec, ok := DecodeRecord([]byte(`{"type":"custom-title","customTitle":"my session"}`))
	require.True(t, ok)
	assert.Equal(t, KindCustomTitle, rec.Kind)
	assert.Equal(t, "my session", rec.CustomTitle)

	_, ok = DecodeRecord([]byte(`{"type":"custom-title"}`))
	assert.False(t, ok)
}

func TestDecodeRecordUser(t *testing.T) {
	line := `{"type":"user","uuid":"u2","timestamp":"2026-01-02T03:04:05Z",` +
		`"cwd":"/home/me/proj","gitBranch":"main",` +
		`"message":{"role":"user","content":"hello"}}`
	rec, ok := DecodeRecord([]byte(line))
	require.True(t, ok)
	assert.Equal(t, KindUser, rec.Kind)
	assert.Equal(t, "u2", rec.UUID)
	assert.True(t, rec.HasTimestamp)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), rec.Timestamp)
	assert.Equal(t, "/home/me/proj", rec.Cwd)
	assert.Equal(t, "main", rec.GitBranch)
	assert.Equal(t, "user", rec.Message.Role)
	assert.Equal(t, "hello", rec.Message.Content.AsText())
}

func TestDecodeRecordUserMissingFields(t *testing.T) {
	cases := []string{
		`{"type":"user","timestamp":"2026-01-02T03:04:05Z","message":{"role":"user","content":"x"}}`,
		`{"type":"user","uuid":"u","message":{"role":"user","content":"x"}}`,
		`{"type":"user","uuid":"u","timestamp":"2026-01-02T03:04:05Z"}`,
		`{"type":"user","uuid":"u","timestamp":"2026-01-02T03:04:05Z","message":{"content":"x"}}`,
		`{"type":"user","uuid":"u","timestamp":"not-a-time","message":{"role":"user","content":"x"}}`,
	}
	for _, line := range cases {
		_, ok := DecodeRecord([]byte(line))
		assert.False(t, ok, "line=%s", line)
	}
}

func TestDecodeRecordAssistantBlocks(t *testing.T) {
	line := `{"type":"assistant","uuid":"a1","timestamp":"2026-01-02T03:04:06Z",` +
		`"message":{"role":"assistant","content":[{"type":"text","text":"hi"}]}}`
	rec, ok := DecodeRecord([]byte(line))
	require.True(t, ok)
	assert.Equal(t, KindAssistant, rec.Kind)
	assert.Equal(t, "hi", rec.Message.Content.AsText())
}

func TestDecodeRecordSystem(t *testing.T) {
	rec, ok := DecodeRecord([]byte(`{"type":"system","timestamp":"2026-01-02T03:04:05Z"}`))
	require.True(t, ok)
	assert.Equal(t, KindSystem, rec.Kind)
	assert.True(t, rec.HasTimestamp)

	// system records tolerate missing fields
	rec, ok = DecodeRecord([]byte(`{"type":"system"}`))
	require.True(t, ok)
	assert.False(t, rec.HasTimestamp)
}

func TestDecodeRecordOtherKinds(t *testing.T) {
	rec, ok := DecodeRecord([]byte(`{"type":"file-history-snapshot","messageId":"m1"}`))
	require.True(t, ok)
	assert.Equal(t, KindFileHistorySnapshot, rec.Kind)
	assert.Equal(t, "m1", rec.MessageID)

	rec, ok = DecodeRecord([]byte(`{"type":"queue-operation","operation":"enqueue"}`))
	require.True(t, ok)
	assert.Equal(t, KindQueueOperation, rec.Kind)

	rec, ok = DecodeRecord([]byte(`{"type":"some-future-type","payload":{}}`))
	require.True(t, ok)
	assert.Equal(t, KindUnknown, rec.Kind)
}

func TestDecodeRecordGarbage(t *testing.T) {
	for _, line := range []string{
		"",
		"not json at all",
		"{",
		`{"type":123}`,
		`[1,2,3]`,
		`null`,
		`{"no_type":"field"}`,
	} {
		rec, ok := DecodeRecord([]byte(line))
		if ok {
			// typeless but valid JSON objects decode as unknown
			assert.Equal(t, KindUnknown, rec.Kind, "line=%q", line)
		}
	}
}

func TestParseTimestampFormats(t *testing.T) {
	for _, s := range []string{
		"2026-01-02T03:04:05Z",
		"2026-01-02T03:04:05.123456Z",
		"2026-01-02T03:04:05+09:00",
		"2026-01-02T03:04:05",
	} {
		ts, ok := parseTimestamp(s)
		assert.True(t, ok, "s=%q", s)
		assert.False(t, ts.IsZero(), "s=%q", s)
	}

	_, ok := parseTimestamp("")
	assert.False(t, ok)
	_, ok = parseTimestamp("january 2nd")
	assert.False(t, ok)
}
