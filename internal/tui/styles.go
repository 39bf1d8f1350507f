package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorBorder    = lipgloss.Color("238") // dark gray
	colorDanger    = lipgloss.Color("9")   // bright red

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Bold(true)

	styleRowMarked = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleInput = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleStatusMsg = lipgloss.NewStyle().
			Foreground(colorHighlight)

	stylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	styleDialogBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDanger).
				Padding(1, 2)

	styleRoleUser = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleRoleAssistant = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleRoleSystem = lipgloss.NewStyle().
			Foreground(colorDim)

	styleMatchLine = lipgloss.NewStyle().
			Foreground(colorHighlight)
)
