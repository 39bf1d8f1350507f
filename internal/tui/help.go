package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var helpSections = []struct {
	title string
	rows  [][2]string
}{
	{"Navigation", [][2]string{
		{"j/k, arrows", "move cursor"},
		{"g / G", "top / bottom"},
		{"pgup / pgdn", "page up / down"},
		{"enter", "preview session"},
	}},
	{"Selection", [][2]string{
		{"space", "toggle selection"},
		{"a / A", "select all / clear"},
	}},
	{"Filtering & sorting", [][2]string{
		{"/", "free-text search"},
		{"p", "cycle project filter"},
		{"s", "cycle sort field"},
		{"o", "reverse sort order"},
	}},
	{"Actions", [][2]string{
		{"d", "delete selected (or current)"},
		{"D", "delete older than threshold"},
		{"e", "export to Markdown"},
		{"z", "archive to tar.gz"},
		{"y / Y", "copy resume command / path"},
		{"O", "open in $EDITOR"},
		{"r", "rescan sessions"},
	}},
	{"Preview", [][2]string{
		{"j/k, g/G", "scroll"},
		{"/", "search in preview"},
		{"n / N", "next / previous match"},
		{"q, esc", "back to list"},
	}},
}

func (m model) viewHelp() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Help"))
	b.WriteString("\n")
	for _, section := range helpSections {
		b.WriteString("\n")
		b.WriteString(styleHeader.Render(section.title))
		b.WriteString("\n")
		for _, row := range section.rows {
			b.WriteString("  " + pad(row[0], 14) + row[1] + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styleStatusBar.Render("press q, esc or ? to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		stylePanelBorder.Padding(0, 2).Render(b.String()))
}
