package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/pknull/ccsessionctl/internal/session"
	"github.com/pknull/ccsessionctl/internal/view"
)

const (
	colMarker   = 2
	colProject  = 16
	colModified = 16
	colSize     = 10
	colMsgs     = 6
	colTokens   = 8
)

func (m model) viewList() string {
	title := styleTitle.Render("ccsessionctl - Claude Code Session Manager")

	var filterText string
	if m.st.Mode == view.ModeSearch {
		filterText = m.searchInput.View()
	} else if m.st.Filter.Query != "" {
		filterText = "Filter: [" + m.st.Filter.Query + "]"
	} else {
		filterText = "Filter: [/]"
	}
	filterBar := styleHeader.Render(fmt.Sprintf(
		"%s  Project: [%s]  Sort: %s %s",
		filterText, m.st.CurrentProjectFilter(), m.st.SortField, m.sortArrow()))

	table := m.renderTable(m.width, m.tableHeight())

	return lipgloss.JoinVertical(lipgloss.Left, title, filterBar, table, m.footer())
}

func (m model) sortArrow() string {
	if m.st.SortReversed {
		return "↑"
	}
	return "↓"
}

func (m model) renderTable(width, height int) string {
	labelWidth := width - colMarker - colProject - colModified - colSize - colMsgs - colTokens - 6
	if labelWidth < 10 {
		labelWidth = 10
	}

	header := styleHeader.Render(fmt.Sprintf("%s %s %s %s %s %s %s",
		pad("", colMarker),
		pad("Project", colProject),
		pad("Modified", colModified),
		padLeft("Size", colSize),
		padLeft("Msgs", colMsgs),
		padLeft("Tokens", colTokens),
		"Name"))

	lines := []string{header}

	if len(m.st.FilteredIndices) == 0 {
		lines = append(lines, styleDim.Render("  No sessions match"))
	}

	for row, idx := range m.st.FilteredIndices {
		if row < m.st.ScrollOffset {
			continue
		}
		if len(lines)-1 >= height {
			break
		}
		lines = append(lines, m.renderRow(row, idx, labelWidth))
	}

	for len(lines)-1 < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m model) renderRow(row, idx, labelWidth int) string {
	sess := &m.st.Sessions[idx]

	marker := "  "
	if m.st.IsSelected(idx) {
		marker = "* "
	}

	project := sess.Project
	if sess.IsAgent {
		project = "@" + project
	}

	msgs := "-"
	tokens := "-"
	if sess.Scanned {
		msgs = fmt.Sprintf("%d", sess.MessageCount)
		tokens = formatTokens(sess.TokenCount)
	}

	label := session.Preview(sess)
	if sess.HasDirectory {
		label += " +dir"
	}

	line := fmt.Sprintf("%s %s %s %s %s %s %s",
		pad(marker, colMarker),
		pad(project, colProject),
		pad(sess.Modified.Format("2006-01-02 15:04"), colModified),
		padLeft(humanize.IBytes(uint64(sess.SizeBytes)), colSize),
		padLeft(msgs, colMsgs),
		padLeft(tokens, colTokens),
		truncPad(label, labelWidth))

	switch {
	case row == m.st.Cursor:
		return styleRowSelected.Render("> " + line[2:])
	case m.st.IsSelected(idx):
		return styleRowMarked.Render(line)
	default:
		return styleRowNormal.Render(line)
	}
}

func (m model) footer() string {
	if m.st.StatusMessage != "" {
		return styleStatusMsg.Render(" " + m.st.StatusMessage)
	}

	selected := ""
	if n := len(m.st.Selected); n > 0 {
		selected = fmt.Sprintf(" | %d selected", n)
	}
	counts := fmt.Sprintf("%d/%d sessions%s",
		len(m.st.FilteredIndices), len(m.st.Sessions), selected)

	return styleStatusBar.Render(counts +
		" | enter preview | space select | d delete | e export | z archive | ? help | q quit")
}

// formatTokens renders a token estimate with a K/M suffix.
func formatTokens(tokens int) string {
	switch {
	case tokens >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(tokens)/1_000_000)
	case tokens >= 1_000:
		return fmt.Sprintf("%.1fK", float64(tokens)/1_000)
	default:
		return fmt.Sprintf("%d", tokens)
	}
}

func pad(s string, width int) string {
	return truncPad(s, width)
}

func padLeft(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return strings.Repeat(" ", width-runewidth.StringWidth(s)) + s
}

// truncPad truncates to width and right-pads with spaces so columns line up
// even with wide characters.
func truncPad(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}
