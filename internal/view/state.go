// Package view holds the in-memory projection of the session collection:
// filtering, sorting, cursor and selection state for the list, and the
// scroll/search state for the preview. Nothing here performs I/O.
package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pknull/ccsessionctl/internal/scan"
	"github.com/pknull/ccsessionctl/internal/session"
)

// Mode is the active screen of the interface.
type Mode int

const (
	ModeList Mode = iota
	ModePreview
	ModeSearch
	ModeHelp
	ModeConfirm
)

// DialogKind identifies the pending confirmable action.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogDeleteSelected
	DialogDeleteOlderThan
	DialogExportSelected
	DialogArchiveSelected
)

// SortField selects the active list ordering.
type SortField int

const (
	SortDate SortField = iota
	SortSize
	SortProject
	SortName
)

// Next cycles Date -> Size -> Project -> Name -> Date.
func (f SortField) Next() SortField {
	return (f + 1) % 4
}

func (f SortField) String() string {
	switch f {
	case SortDate:
		return "Date"
	case SortSize:
		return "Size"
	case SortProject:
		return "Project"
	default:
		return "Name"
	}
}

// Filter is the conjunction of the active list predicates.
type Filter struct {
	Query   string
	Project string // "" = all projects
	AgeDays int    // 0 = no age filter; otherwise minimum age in days
}

// State owns the session collection and every piece of derived index state.
// All mutating methods re-establish the invariants before returning: the
// cursor stays within the filtered projection and filters are reapplied
// after any change to the collection.
type State struct {
	Mode     Mode
	Sessions []session.Session

	// FilteredIndices projects the current filter+sort onto Sessions.
	FilteredIndices []int
	Cursor          int
	ScrollOffset    int

	// Selected holds absolute indices into Sessions, independent of the
	// cursor and of later filter changes.
	Selected map[int]struct{}

	Filter       Filter
	SortField    SortField
	SortReversed bool

	Projects           []string
	ProjectFilterIndex int // 0 = All, i>0 = Projects[i-1]

	StatusMessage string
	DialogMessage string
	DialogKind    DialogKind
	DialogAgeDays int

	Preview PreviewState
}

// NewState builds the initial unfiltered, date-sorted state.
func NewState(sessions []session.Session) *State {
	s := &State{
		Sessions: sessions,
		Selected: make(map[int]struct{}),
		Projects: scan.ProjectNames(sessions),
	}
	s.FilteredIndices = make([]int, len(sessions))
	for i := range sessions {
		s.FilteredIndices[i] = i
	}
	return s
}

// CurrentIndex returns the cursor's absolute index into Sessions, or -1.
func (s *State) CurrentIndex() int {
	if s.Cursor < len(s.FilteredIndices) {
		return s.FilteredIndices[s.Cursor]
	}
	return -1
}

// CurrentSession returns the session under the cursor, or nil.
func (s *State) CurrentSession() *session.Session {
	if idx := s.CurrentIndex(); idx >= 0 {
		return &s.Sessions[idx]
	}
	return nil
}

func (s *State) CursorUp() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

func (s *State) CursorDown() {
	if s.Cursor+1 < len(s.FilteredIndices) {
		s.Cursor++
	}
}

func (s *State) CursorTop() {
	s.Cursor = 0
	s.ScrollOffset = 0
}

func (s *State) CursorBottom() {
	if len(s.FilteredIndices) > 0 {
		s.Cursor = len(s.FilteredIndices) - 1
	}
}

func (s *State) PageUp(pageSize int) {
	s.Cursor -= pageSize
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

func (s *State) PageDown(pageSize int) {
	s.Cursor += pageSize
	if max := len(s.FilteredIndices) - 1; s.Cursor > max {
		s.Cursor = max
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// AdjustScroll keeps the cursor inside the visible window.
func (s *State) AdjustScroll(visible int) {
	if visible < 1 {
		visible = 1
	}
	if s.Cursor < s.ScrollOffset {
		s.ScrollOffset = s.Cursor
	}
	if s.Cursor >= s.ScrollOffset+visible {
		s.ScrollOffset = s.Cursor - visible + 1
	}
}

// ToggleSelection flips the selection of the session under the cursor.
func (s *State) ToggleSelection() {
	idx := s.CurrentIndex()
	if idx < 0 {
		return
	}
	if _, ok := s.Selected[idx]; ok {
		delete(s.Selected, idx)
	} else {
		s.Selected[idx] = struct{}{}
	}
}

// SelectAll selects everything in the current filtered projection, not the
// full collection.
func (s *State) SelectAll() {
	for _, idx := range s.FilteredIndices {
		s.Selected[idx] = struct{}{}
	}
}

func (s *State) ClearSelection() {
	s.Selected = make(map[int]struct{})
}

func (s *State) IsSelected(idx int) bool {
	_, ok := s.Selected[idx]
	return ok
}

// SelectedSessions resolves the selection to sessions.
func (s *State) SelectedSessions() []*session.Session {
	var out []*session.Session
	for idx := range s.Selected {
		if idx < len(s.Sessions) {
			out = append(out, &s.Sessions[idx])
		}
	}
	return out
}

// ApplyFilters recomputes FilteredIndices from the session collection by
// ANDing the project, age, and query predicates, then clamps the cursor.
// Idempotent; call after every mutation that can invalidate the projection.
func (s *State) ApplyFilters() {
	now := time.Now()
	query := strings.ToLower(s.Filter.Query)

	s.FilteredIndices = s.FilteredIndices[:0]
	for i := range s.Sessions {
		if s.matches(&s.Sessions[i], query, now) {
			s.FilteredIndices = append(s.FilteredIndices, i)
		}
	}

	s.clampCursor()
	s.ScrollOffset = 0
}

func (s *State) matches(sess *session.Session, query string, now time.Time) bool {
	if s.Filter.Project != "" && sess.Project != s.Filter.Project {
		return false
	}

	if s.Filter.AgeDays > 0 {
		ageDays := int(now.Sub(sess.Modified).Hours() / 24)
		if ageDays < s.Filter.AgeDays {
			return false
		}
	}

	if query != "" {
		var haystack string
		if sess.SearchContent != "" {
			haystack = sess.SearchContent
		} else {
			haystack = strings.ToLower(strings.Join([]string{
				sess.Project, sess.ID, sess.Summary, sess.FirstMessage,
			}, " "))
		}
		if !strings.Contains(haystack, query) {
			return false
		}
	}

	return true
}

// ApplySort re-orders FilteredIndices in place; the underlying collection
// keeps its scan order. Date and Size sort descending, Project and Name
// ascending, inverted when SortReversed is set.
func (s *State) ApplySort() {
	sessions := s.Sessions
	field := s.SortField
	reversed := s.SortReversed

	sort.Slice(s.FilteredIndices, func(x, y int) bool {
		a, b := s.FilteredIndices[x], s.FilteredIndices[y]
		var cmp int
		switch field {
		case SortDate:
			cmp = sessions[b].Modified.Compare(sessions[a].Modified)
		case SortSize:
			switch {
			case sessions[b].SizeBytes < sessions[a].SizeBytes:
				cmp = -1
			case sessions[b].SizeBytes > sessions[a].SizeBytes:
				cmp = 1
			}
		case SortProject:
			cmp = strings.Compare(sessions[a].Project, sessions[b].Project)
		default:
			cmp = strings.Compare(nameKey(&sessions[a]), nameKey(&sessions[b]))
		}
		if reversed {
			return cmp > 0
		}
		return cmp < 0
	})

	s.clampCursor()
}

func nameKey(sess *session.Session) string {
	if sess.Summary != "" {
		return sess.Summary
	}
	return sess.FirstMessage
}

// CycleSortField advances to the next sort field and re-sorts.
func (s *State) CycleSortField() {
	s.SortField = s.SortField.Next()
	s.ApplySort()
	s.SetStatus(fmt.Sprintf("Sort: %s %s", s.SortField, s.sortArrow()))
}

// ToggleSortDirection flips the order and re-sorts.
func (s *State) ToggleSortDirection() {
	s.SortReversed = !s.SortReversed
	s.ApplySort()
	s.SetStatus(fmt.Sprintf("Sort: %s %s", s.SortField, s.sortArrow()))
}

func (s *State) sortArrow() string {
	if s.SortReversed {
		return "↑"
	}
	return "↓"
}

// CycleProjectFilter advances through {All, project_1, ..., project_n} and
// reapplies filters.
func (s *State) CycleProjectFilter() {
	s.ProjectFilterIndex = (s.ProjectFilterIndex + 1) % (len(s.Projects) + 1)
	if s.ProjectFilterIndex == 0 {
		s.Filter.Project = ""
	} else {
		s.Filter.Project = s.Projects[s.ProjectFilterIndex-1]
	}
	s.ApplyFilters()
}

// CurrentProjectFilter is the display name of the active project filter.
func (s *State) CurrentProjectFilter() string {
	if s.ProjectFilterIndex == 0 {
		return "All"
	}
	return s.Projects[s.ProjectFilterIndex-1]
}

// RemoveSessions drops the given absolute indices from the collection, then
// re-establishes every invariant: selection cleared, filters reapplied,
// project list recomputed.
func (s *State) RemoveSessions(indices map[int]struct{}) {
	ordered := make([]int, 0, len(indices))
	for idx := range indices {
		ordered = append(ordered, idx)
	}
	// descending removal so lower indices stay valid mid-removal
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	for _, idx := range ordered {
		if idx < len(s.Sessions) {
			s.Sessions = append(s.Sessions[:idx], s.Sessions[idx+1:]...)
		}
	}

	s.ClearSelection()
	s.ApplyFilters()
	s.Projects = scan.ProjectNames(s.Sessions)

	// the project list may have shrunk; re-derive the filter index from the
	// active filter so the two never disagree
	s.ProjectFilterIndex = 0
	if s.Filter.Project != "" {
		for i, name := range s.Projects {
			if name == s.Filter.Project {
				s.ProjectFilterIndex = i + 1
				break
			}
		}
		if s.ProjectFilterIndex == 0 {
			s.Filter.Project = ""
			s.ApplyFilters()
		}
	}
}

func (s *State) clampCursor() {
	if s.Cursor >= len(s.FilteredIndices) {
		s.Cursor = len(s.FilteredIndices) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// ShowConfirm opens the confirmation dialog for a pending action.
func (s *State) ShowConfirm(message string, kind DialogKind, ageDays int) {
	s.DialogMessage = message
	s.DialogKind = kind
	s.DialogAgeDays = ageDays
	s.Mode = ModeConfirm
}

// ClearDialog dismisses the dialog and returns to the list.
func (s *State) ClearDialog() {
	s.DialogMessage = ""
	s.DialogKind = DialogNone
	s.DialogAgeDays = 0
	s.Mode = ModeList
}

func (s *State) SetStatus(message string) {
	s.StatusMessage = message
}

func (s *State) ClearStatus() {
	s.StatusMessage = ""
}
