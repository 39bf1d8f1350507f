// Package render materializes display messages into the flat line buffer
// the preview scrolls over. Output is plain text; styling happens in the
// interface layer.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/pknull/ccsessionctl/internal/session"
)

const timestampLayout = "2006-01-02 15:04:05"

// MessageLines flattens messages into preview lines: a role header, a blank
// line, the content lines, and a trailing blank line per message. Lines are
// wrapped to width visible columns when width > 0.
func MessageLines(messages []session.DisplayMessage, width int) []string {
	var lines []string
	for _, msg := range messages {
		header := "[" + msg.Role.String() + "] " + msg.Timestamp.Format(timestampLayout)
		lines = append(lines, header, "")
		for _, l := range strings.Split(msg.Content, "\n") {
			lines = append(lines, WrapLine(l, width)...)
		}
		lines = append(lines, "")
	}
	return lines
}

// WrapLine breaks a single line into lines of at most maxWidth visible
// columns, measuring with rune widths so wide characters count correctly.
// maxWidth <= 0 disables wrapping.
func WrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}
	if len(result) == 0 {
		return []string{""}
	}
	return result
}
