package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pknull/ccsessionctl/internal/session"
)

// refreshPreviewContent rebuilds the viewport content from the preview
// buffer, styling role headers and highlighting search-matched lines.
func (m *model) refreshPreviewContent() {
	p := &m.st.Preview

	matched := make(map[int]struct{}, len(p.Matches))
	for _, idx := range p.Matches {
		matched[idx] = struct{}{}
	}

	styled := make([]string, len(p.Lines))
	for i, line := range p.Lines {
		switch {
		case strings.HasPrefix(line, "[User]"):
			styled[i] = styleRoleUser.Render(line)
		case strings.HasPrefix(line, "[Assistant]"):
			styled[i] = styleRoleAssistant.Render(line)
		case strings.HasPrefix(line, "[System]"):
			styled[i] = styleRoleSystem.Render(line)
		default:
			if _, ok := matched[i]; ok && p.Search != "" {
				styled[i] = styleMatchLine.Render(line)
			} else {
				styled[i] = line
			}
		}
	}

	m.preview.Width = m.width - 2
	m.preview.Height = m.previewHeight()
	m.preview.SetContent(strings.Join(styled, "\n"))
}

// syncPreviewScroll makes the viewport follow the authoritative scroll
// position held in the view state.
func (m *model) syncPreviewScroll() {
	m.preview.SetYOffset(m.st.Preview.Scroll)
}

func (m model) viewPreview() string {
	sess := m.st.CurrentSession()
	title := "Preview"
	if sess != nil {
		title = fmt.Sprintf("Preview: %s / %s", sess.Project, session.Preview(sess))
	}
	header := styleTitle.Render(title)

	body := stylePanelBorder.
		Width(m.width - 2).
		Height(m.previewHeight()).
		Render(m.preview.View())

	var footer string
	p := &m.st.Preview
	switch {
	case p.SearchActive:
		footer = m.previewInput.View()
	case m.st.StatusMessage != "":
		footer = styleStatusMsg.Render(m.st.StatusMessage)
	case p.Search != "" && len(p.Matches) == 0:
		footer = styleStatusBar.Render("no matches | / search | q back")
	case p.Search != "":
		footer = styleStatusBar.Render(fmt.Sprintf(
			"match %d/%d | n/N navigate | / search | q back",
			p.MatchIndex+1, len(p.Matches)))
	default:
		footer = styleStatusBar.Render("j/k scroll | g/G top/bottom | / search | q back")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
