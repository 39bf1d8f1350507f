// Package tui is the interactive interface: a session table with filtering,
// sorting and multi-select, and a scrollable, searchable transcript preview.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pknull/ccsessionctl/internal/actions"
	"github.com/pknull/ccsessionctl/internal/config"
	"github.com/pknull/ccsessionctl/internal/open"
	"github.com/pknull/ccsessionctl/internal/render"
	"github.com/pknull/ccsessionctl/internal/scan"
	"github.com/pknull/ccsessionctl/internal/session"
	"github.com/pknull/ccsessionctl/internal/view"
)

// message types

type metadataMsg struct {
	index int
	sess  session.Session
	err   error
}

type rescanMsg struct {
	sessions []session.Session
	err      error
}

type editorFinishedMsg struct{ err error }

type model struct {
	st  *view.State
	cfg *config.Config

	searchInput  textinput.Model
	previewInput textinput.Model
	preview      viewport.Model

	width  int
	height int
	ready  bool

	loading   bool
	loadIndex int
}

func initialModel(st *view.State, cfg *config.Config) model {
	si := textinput.New()
	si.Placeholder = "Search..."
	si.Prompt = "/ "
	si.PromptStyle = styleInputPrompt
	si.TextStyle = styleInput
	si.CharLimit = 256

	pi := textinput.New()
	pi.Placeholder = "Find in preview..."
	pi.Prompt = "/ "
	pi.PromptStyle = styleInputPrompt
	pi.TextStyle = styleInput
	pi.CharLimit = 256

	return model{
		st:           st,
		cfg:          cfg,
		searchInput:  si,
		previewInput: pi,
		preview:      viewport.New(0, 0),
	}
}

// Run starts the TUI and blocks until it exits.
func Run(sessions []session.Session, cfg *config.Config) error {
	m := initialModel(view.NewState(sessions), cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startMetadataLoad())
}

// startMetadataLoad begins the incremental one-session-at-a-time metadata
// scan so the list stays responsive and shows progress.
func (m model) startMetadataLoad() tea.Cmd {
	return m.nextMetadataCmd(0)
}

func (m model) nextMetadataCmd(from int) tea.Cmd {
	sessions := m.st.Sessions
	for i := from; i < len(sessions); i++ {
		if sessions[i].Scanned {
			continue
		}
		sess := sessions[i] // scan a copy; Update applies the result
		idx := i
		return func() tea.Msg {
			err := session.LoadMetadata(&sess)
			return metadataMsg{index: idx, sess: sess, err: err}
		}
	}
	return nil
}

func rescanCmd(root string) tea.Cmd {
	return func() tea.Msg {
		sessions, err := scan.Sessions(root)
		return rescanMsg{sessions: sessions, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview.Width = m.width - 2
		m.preview.Height = m.previewHeight()
		if m.st.Mode == view.ModePreview {
			m.refreshPreviewContent()
		}
		return m, nil

	case metadataMsg:
		if msg.index < len(m.st.Sessions) && m.st.Sessions[msg.index].ID == msg.sess.ID {
			if msg.err == nil {
				m.st.Sessions[msg.index] = msg.sess
			}
			// unreadable files are skipped; the rest of the collection
			// still loads
		}
		m.loadIndex = msg.index + 1
		if cmd := m.nextMetadataCmd(m.loadIndex); cmd != nil {
			m.loading = true
			m.st.SetStatus(fmt.Sprintf("Loading metadata... %d/%d", m.loadIndex, len(m.st.Sessions)))
			return m, cmd
		}
		m.loading = false
		m.st.ClearStatus()
		m.st.ApplyFilters()
		m.st.ApplySort()
		return m, nil

	case rescanMsg:
		if msg.err != nil {
			m.st.SetStatus(fmt.Sprintf("Refresh failed: %v", msg.err))
			return m, nil
		}
		m.st = view.NewState(msg.sessions)
		m.st.SetStatus(fmt.Sprintf("Refreshed: %d sessions", len(msg.sessions)))
		m.loadIndex = 0
		return m, m.startMetadataLoad()

	case editorFinishedMsg:
		if msg.err != nil {
			m.st.SetStatus(fmt.Sprintf("Editor failed: %v", msg.err))
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		// status messages are transient; any key clears them
		if !m.loading {
			m.st.ClearStatus()
		}
		switch m.st.Mode {
		case view.ModeList:
			return m.handleListKeys(msg)
		case view.ModePreview:
			return m.handlePreviewKeys(msg)
		case view.ModeSearch:
			return m.handleSearchKeys(msg)
		case view.ModeHelp:
			return m.handleHelpKeys(msg)
		case view.ModeConfirm:
			return m.handleConfirmKeys(msg)
		}
	}

	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.st.Mode {
	case view.ModeList:
		if msg.Button == tea.MouseButtonWheelUp {
			m.st.CursorUp()
			m.st.AdjustScroll(m.tableHeight())
		}
		if msg.Button == tea.MouseButtonWheelDown {
			m.st.CursorDown()
			m.st.AdjustScroll(m.tableHeight())
		}
	case view.ModePreview:
		if msg.Button == tea.MouseButtonWheelUp {
			m.st.Preview.ScrollUp(3)
			m.syncPreviewScroll()
		}
		if msg.Button == tea.MouseButtonWheelDown {
			m.st.Preview.ScrollDown(3)
			m.syncPreviewScroll()
		}
	}
	return m, nil
}

func (m model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Down):
		m.st.CursorDown()
		m.st.AdjustScroll(m.tableHeight())

	case key.Matches(msg, keys.Up):
		m.st.CursorUp()
		m.st.AdjustScroll(m.tableHeight())

	case key.Matches(msg, keys.Top):
		m.st.CursorTop()

	case key.Matches(msg, keys.Bottom):
		m.st.CursorBottom()
		m.st.AdjustScroll(m.tableHeight())

	case key.Matches(msg, keys.PageUp):
		m.st.PageUp(m.tableHeight())
		m.st.AdjustScroll(m.tableHeight())

	case key.Matches(msg, keys.PageDown):
		m.st.PageDown(m.tableHeight())
		m.st.AdjustScroll(m.tableHeight())

	case key.Matches(msg, keys.Enter):
		m.openPreview()

	case key.Matches(msg, keys.Toggle):
		m.st.ToggleSelection()
		m.st.CursorDown()
		m.st.AdjustScroll(m.tableHeight())

	case key.Matches(msg, keys.SelectAll):
		m.st.SelectAll()

	case key.Matches(msg, keys.ClearSel):
		m.st.ClearSelection()

	case key.Matches(msg, keys.Search):
		m.st.Mode = view.ModeSearch
		m.searchInput.SetValue(m.st.Filter.Query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Help):
		m.st.Mode = view.ModeHelp

	case key.Matches(msg, keys.Project):
		m.st.CycleProjectFilter()
		m.st.ApplySort()

	case key.Matches(msg, keys.Delete):
		m.confirmDelete()

	case key.Matches(msg, keys.DeleteOlder):
		days := m.cfg.PruneAgeDays
		m.st.ShowConfirm(
			fmt.Sprintf("Delete sessions older than %d days? (y/n)", days),
			view.DialogDeleteOlderThan, days)

	case key.Matches(msg, keys.Export):
		if n := len(m.bulkTargets()); n > 0 {
			m.st.ShowConfirm(
				fmt.Sprintf("Export %d session(s) to %s? (y/n)", n, m.cfg.ExportDir),
				view.DialogExportSelected, 0)
		}

	case key.Matches(msg, keys.Archive):
		if n := len(m.bulkTargets()); n > 0 {
			m.st.ShowConfirm(
				fmt.Sprintf("Archive %d session(s) to %s? (y/n)", n, m.cfg.ArchiveDir),
				view.DialogArchiveSelected, 0)
		}

	case key.Matches(msg, keys.Refresh):
		m.st.SetStatus("Refreshing...")
		return m, rescanCmd(m.cfg.ProjectsRoot)

	case key.Matches(msg, keys.SortField):
		m.st.CycleSortField()

	case key.Matches(msg, keys.SortReverse):
		m.st.ToggleSortDirection()

	case key.Matches(msg, keys.CopyResume):
		if sess := m.st.CurrentSession(); sess != nil {
			projectDir := session.DecodeProjectPath(sess.ProjectRaw)
			cmd := fmt.Sprintf("cd %s && claude --resume %s", projectDir, sess.ID)
			if err := clipboard.WriteAll(cmd); err != nil {
				m.st.SetStatus("Copy failed: no clipboard available")
			} else {
				m.st.SetStatus("Copied: " + cmd)
			}
		}

	case key.Matches(msg, keys.CopyPath):
		if sess := m.st.CurrentSession(); sess != nil {
			if err := clipboard.WriteAll(sess.Path); err != nil {
				m.st.SetStatus("Copy failed: no clipboard available")
			} else {
				m.st.SetStatus("Copied path: " + sess.Path)
			}
		}

	case key.Matches(msg, keys.OpenEditor):
		if sess := m.st.CurrentSession(); sess != nil {
			path := sess.Path
			return m, tea.ExecProcess(open.EditorCommand(path), func(err error) tea.Msg {
				return editorFinishedMsg{err: err}
			})
		}
	}

	return m, nil
}

func (m model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.st.Preview

	if p.SearchActive {
		switch msg.String() {
		case "esc":
			p.ClearSearch()
			m.previewInput.SetValue("")
			m.previewInput.Blur()
			m.refreshPreviewContent()
		case "enter":
			p.SearchActive = false
			m.previewInput.Blur()
		default:
			var cmd tea.Cmd
			m.previewInput, cmd = m.previewInput.Update(msg)
			p.Search = m.previewInput.Value()
			p.UpdateSearch()
			if p.Search != "" && len(p.Matches) == 0 {
				m.st.SetStatus("No matches")
			}
			m.refreshPreviewContent()
			return m, cmd
		}
		m.syncPreviewScroll()
		return m, nil
	}

	switch {
	case msg.String() == "esc", key.Matches(msg, keys.Quit):
		p.Close()
		m.previewInput.SetValue("")
		m.st.Mode = view.ModeList

	case key.Matches(msg, keys.Down):
		p.ScrollDown(1)

	case key.Matches(msg, keys.Up):
		p.ScrollUp(1)

	case key.Matches(msg, keys.PageDown):
		p.ScrollDown(m.previewHeight())

	case key.Matches(msg, keys.PageUp):
		p.ScrollUp(m.previewHeight())

	case key.Matches(msg, keys.Top):
		p.ScrollTop()

	case key.Matches(msg, keys.Bottom):
		p.ScrollBottom()

	case key.Matches(msg, keys.Search):
		p.SearchActive = true
		m.previewInput.SetValue(p.Search)
		m.previewInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.NextMatch):
		p.NextMatch()

	case key.Matches(msg, keys.PrevMatch):
		p.PrevMatch()
	}

	m.syncPreviewScroll()
	return m, nil
}

func (m model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.st.Filter.Query = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.st.ApplyFilters()
		m.st.ApplySort()
		m.st.Mode = view.ModeList
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.st.Mode = view.ModeList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if q := m.searchInput.Value(); q != m.st.Filter.Query {
		m.st.Filter.Query = q
		m.st.ApplyFilters()
		m.st.ApplySort()
	}
	return m, cmd
}

func (m model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		m.st.Mode = view.ModeList
	}
	return m, nil
}

func (m model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		kind, days := m.st.DialogKind, m.st.DialogAgeDays
		m.st.ClearDialog()
		m.executeDialog(kind, days)
	case "n", "esc":
		m.st.ClearDialog()
	}
	return m, nil
}

func (m model) executeDialog(kind view.DialogKind, days int) {
	switch kind {
	case view.DialogDeleteSelected:
		toDelete := make(map[int]struct{})
		if len(m.st.Selected) > 0 {
			for idx := range m.st.Selected {
				toDelete[idx] = struct{}{}
			}
		} else if idx := m.st.CurrentIndex(); idx >= 0 {
			toDelete[idx] = struct{}{}
		}

		var sessions []*session.Session
		for idx := range toDelete {
			if idx < len(m.st.Sessions) {
				sessions = append(sessions, &m.st.Sessions[idx])
			}
		}
		count := actions.DeleteSessions(sessions)
		m.st.RemoveSessions(toDelete)
		m.st.ApplySort()
		m.st.SetStatus(fmt.Sprintf("Deleted %d session(s)", count))

	case view.DialogDeleteOlderThan:
		now := time.Now()
		toDelete := make(map[int]struct{})
		var sessions []*session.Session
		for i := range m.st.Sessions {
			if int(now.Sub(m.st.Sessions[i].Modified).Hours()/24) >= days {
				toDelete[i] = struct{}{}
				sessions = append(sessions, &m.st.Sessions[i])
			}
		}
		count := actions.DeleteSessions(sessions)
		m.st.RemoveSessions(toDelete)
		m.st.ApplySort()
		m.st.SetStatus(fmt.Sprintf("Deleted %d session(s) older than %d days", count, days))

	case view.DialogExportSelected:
		m.doExport()

	case view.DialogArchiveSelected:
		m.doArchive()
	}
}

func (m model) confirmDelete() {
	count := len(m.st.Selected)
	if count == 0 {
		if m.st.CurrentSession() == nil {
			return
		}
		count = 1
	}
	msg := "Delete this session? (y/n)"
	if count > 1 {
		msg = fmt.Sprintf("Delete %d sessions? (y/n)", count)
	}
	m.st.ShowConfirm(msg, view.DialogDeleteSelected, 0)
}

// bulk targets: the selection when non-empty, else the session under the
// cursor.
func (m model) bulkTargets() []*session.Session {
	if len(m.st.Selected) > 0 {
		return m.st.SelectedSessions()
	}
	if sess := m.st.CurrentSession(); sess != nil {
		return []*session.Session{sess}
	}
	return nil
}

func (m model) doExport() {
	sessions := m.bulkTargets()
	if len(sessions) == 0 {
		m.st.SetStatus("No sessions to export")
		return
	}
	if err := actions.EnsureDir(m.cfg.ExportDir); err != nil {
		m.st.SetStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	count := 0
	for _, s := range sessions {
		if _, err := actions.ExportMarkdown(s, m.cfg.ExportDir); err == nil {
			count++
		}
	}
	m.st.SetStatus(fmt.Sprintf("Exported %d session(s) to %s", count, m.cfg.ExportDir))
}

func (m model) doArchive() {
	sessions := m.bulkTargets()
	if len(sessions) == 0 {
		m.st.SetStatus("No sessions to archive")
		return
	}
	if err := actions.EnsureDir(m.cfg.ArchiveDir); err != nil {
		m.st.SetStatus(fmt.Sprintf("Archive failed: %v", err))
		return
	}
	count := 0
	for _, s := range sessions {
		if _, err := actions.ArchiveSession(s, m.cfg.ArchiveDir); err == nil {
			count++
		}
	}
	m.st.SetStatus(fmt.Sprintf("Archived %d session(s) to %s", count, m.cfg.ArchiveDir))
}

func (m *model) openPreview() {
	sess := m.st.CurrentSession()
	if sess == nil {
		return
	}
	messages, err := session.LoadMessages(sess.Path)
	if err != nil {
		m.st.SetStatus(fmt.Sprintf("Failed to load: %v", err))
		return
	}
	lines := render.MessageLines(messages, m.preview.Width)
	m.st.Preview.Open(lines)
	m.st.Mode = view.ModePreview
	m.refreshPreviewContent()
	m.syncPreviewScroll()
}

func (m model) previewHeight() int {
	h := m.height - 4 // header + borders + status
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) tableHeight() int {
	h := m.height - 6 // title + filter bar + table header + footer
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) View() string {
	if !m.ready {
		return ""
	}

	switch m.st.Mode {
	case view.ModePreview:
		return m.viewPreview()
	case view.ModeHelp:
		return m.viewHelp()
	case view.ModeConfirm:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styleDialogBorder.Render(m.st.DialogMessage))
	default:
		return m.viewList()
	}
}
