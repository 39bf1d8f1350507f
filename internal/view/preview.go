package view

import "strings"

// PreviewState is the sub-state over the currently loaded preview buffer:
// scroll position plus an incremental substring search with wraparound
// navigation. It is reset whenever a preview is opened or closed.
type PreviewState struct {
	Lines  []string
	Scroll int

	Search       string
	SearchActive bool
	Matches      []int
	MatchIndex   int
}

// Open replaces the buffer with freshly materialized lines and resets all
// scroll and search state.
func (p *PreviewState) Open(lines []string) {
	p.Lines = lines
	p.Scroll = 0
	p.ClearSearch()
}

// Close discards the buffer; search state does not survive a close.
func (p *PreviewState) Close() {
	p.Lines = nil
	p.Scroll = 0
	p.ClearSearch()
}

func (p *PreviewState) ScrollUp(n int) {
	p.Scroll -= n
	if p.Scroll < 0 {
		p.Scroll = 0
	}
}

func (p *PreviewState) ScrollDown(n int) {
	max := len(p.Lines) - 1
	if max < 0 {
		max = 0
	}
	p.Scroll += n
	if p.Scroll > max {
		p.Scroll = max
	}
}

func (p *PreviewState) ScrollTop() {
	p.Scroll = 0
}

func (p *PreviewState) ScrollBottom() {
	if len(p.Lines) > 0 {
		p.Scroll = len(p.Lines) - 1
	}
}

// UpdateSearch recomputes the match list for the current query with a
// case-insensitive substring test per line. On a hit the scroll jumps to the
// first match; on a miss the scroll is left where it was.
func (p *PreviewState) UpdateSearch() {
	p.Matches = p.Matches[:0]
	p.MatchIndex = 0

	if p.Search == "" {
		return
	}

	query := strings.ToLower(p.Search)
	for i, line := range p.Lines {
		if strings.Contains(strings.ToLower(line), query) {
			p.Matches = append(p.Matches, i)
		}
	}

	if len(p.Matches) > 0 {
		p.Scroll = p.Matches[0]
	}
}

// NextMatch advances circularly through the match list.
func (p *PreviewState) NextMatch() {
	if len(p.Matches) == 0 {
		return
	}
	p.MatchIndex = (p.MatchIndex + 1) % len(p.Matches)
	p.Scroll = p.Matches[p.MatchIndex]
}

// PrevMatch retreats circularly through the match list.
func (p *PreviewState) PrevMatch() {
	if len(p.Matches) == 0 {
		return
	}
	if p.MatchIndex == 0 {
		p.MatchIndex = len(p.Matches) - 1
	} else {
		p.MatchIndex--
	}
	p.Scroll = p.Matches[p.MatchIndex]
}

// ClearSearch drops the query and match state.
func (p *PreviewState) ClearSearch() {
	p.Search = ""
	p.SearchActive = false
	p.Matches = nil
	p.MatchIndex = 0
}
