package engine

import (
	"github.com/dshills/editcore/internal/engine/history"
	"github.com/dshills/editcore/internal/engine/search"
)

// Find starts a search for query. The match at or after the cursor
// becomes current and is selected; with no match after the cursor the
// search wraps to the first match. Returns false if nothing matched.
func (e *Engine) Find(query string, caseSensitive bool) bool {
	e.searchState = search.NewState(e.buf, query, caseSensitive, e.cur.Position())
	return e.selectCurrentMatch()
}

// FindNext advances to the next match, wrapping at the end of the
// document. Returns false if no search is active or nothing matched.
func (e *Engine) FindNext() bool {
	if e.searchState == nil {
		return false
	}
	if _, ok := e.searchState.Next(); !ok {
		return false
	}
	return e.selectCurrentMatch()
}

// FindPrev moves to the previous match, wrapping at the start of the
// document. Returns false if no search is active or nothing matched.
func (e *Engine) FindPrev() bool {
	if e.searchState == nil {
		return false
	}
	if _, ok := e.searchState.Prev(); !ok {
		return false
	}
	return e.selectCurrentMatch()
}

// ClearSearch ends the active search.
func (e *Engine) ClearSearch() {
	e.searchState = nil
}

// SearchMatches returns the matches of the active search, or nil.
func (e *Engine) SearchMatches() []search.Match {
	if e.searchState == nil {
		return nil
	}
	return e.searchState.Matches()
}

// Replace substitutes the current match with replacement and moves the
// search to the next occurrence. Returns false if no match is current.
func (e *Engine) Replace(replacement string) (bool, error) {
	if e.searchState == nil {
		return false, nil
	}
	m, ok := e.searchState.Current()
	if !ok {
		return false, nil
	}
	query := e.searchState.Query()
	cs := e.searchState.CaseSensitive()

	span := m.Span()
	sel := e.cur.Selection()
	e.cur.SetSelection(Selection{Anchor: span.Start, Active: span.End})
	if err := e.replaceSelection(e.cur.Selection(), replacement); err != nil {
		e.cur.SetSelection(sel)
		return false, err
	}

	// Re-run the search; the buffer shifted under the match list.
	e.searchState = search.NewState(e.buf, query, cs, e.cur.Position())
	e.selectCurrentMatch()
	return true, nil
}

// ReplaceAll substitutes every occurrence of query as one undo group
// and returns the number of replacements. The cursor ends after the
// last replacement in document order.
func (e *Engine) ReplaceAll(query, replacement string, caseSensitive bool) (int, error) {
	matches := search.Find(e.buf, query, caseSensitive)
	if len(matches) == 0 {
		return 0, nil
	}

	before := e.cur.Selection()

	// Apply in document order, shifting each match's coordinates by the
	// size difference the replacements before it introduced. lineShift
	// carries across lines; colShift only applies within the line the
	// previous match started on.
	var end Position
	lineShift, colShift, prevLine := 0, 0, -1

	e.hist.BeginGroup(before)
	for _, m := range matches {
		if m.Line != prevLine {
			prevLine = m.Line
			colShift = 0
		}
		start := Position{Line: m.Line + lineShift, Column: m.StartCol + colShift}
		stop := Position{Line: m.Line + lineShift, Column: m.EndCol + colShift}

		removed, err := e.buf.Delete(start, stop)
		if err != nil {
			e.hist.EndGroup()
			e.finishEdit(e.buf.ClampPosition(e.cur.Position()))
			return 0, err
		}
		e.hist.Record(history.NewDelete(start, stop, removed), before)

		end = start
		if replacement != "" {
			ins := history.NewInsert(start, replacement)
			end, err = ins.Apply(e.buf)
			if err != nil {
				e.hist.EndGroup()
				e.finishEdit(e.buf.ClampPosition(e.cur.Position()))
				return 0, err
			}
			e.hist.Record(ins, before)
		}
		lineShift = end.Line - m.Line
		colShift = end.Column - m.EndCol
	}
	e.hist.EndGroup()

	e.finishEdit(end)
	return len(matches), nil
}

// selectCurrentMatch selects the search state's current match without
// disturbing history grouping beyond closing the typing group.
func (e *Engine) selectCurrentMatch() bool {
	if e.searchState == nil {
		return false
	}
	m, ok := e.searchState.Current()
	if !ok {
		return false
	}
	span := m.Span()
	e.hist.CloseGroup()
	e.cur.SetSelection(Selection{Anchor: span.Start, Active: span.End})
	e.revealCursor()
	return true
}
