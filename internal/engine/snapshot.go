package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/editcore/internal/engine/highlight"
	"github.com/dshills/editcore/internal/engine/viewport"
)

// SelectionSpan is the highlighted portion of one visible line.
// Columns are rune offsets, StartCol inclusive, EndCol exclusive.
type SelectionSpan struct {
	Line     int
	StartCol int
	EndCol   int
}

// Snapshot is an immutable view of everything a frontend needs to draw
// one frame. Line numbers are absolute; Lines[i] is line StartLine+i.
type Snapshot struct {
	Doc     uuid.UUID
	Version uint64

	StartLine int
	Lines     []string

	TopLine    int
	LeftColumn int
	Width      int
	Height     int

	CursorLine int
	CursorCol  int

	Selections []SelectionSpan
	Spans      []highlight.Span

	GutterWidth int
	Modified    bool
}

// Snapshot captures the current visible state for rendering.
func (e *Engine) Snapshot() Snapshot {
	start, end := e.view.VisibleLines()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, e.buf.LineText(i))
	}

	pos := e.cur.Position()
	snap := Snapshot{
		Doc:         e.doc,
		Version:     e.buf.Version(),
		StartLine:   start,
		Lines:       lines,
		TopLine:     e.view.TopLine(),
		LeftColumn:  e.view.LeftColumn(),
		Width:       e.view.Width(),
		Height:      e.view.Height(),
		CursorLine:  pos.Line,
		CursorCol:   pos.Column,
		Selections:  e.visibleSelections(start, end),
		GutterWidth: viewport.GutterWidth(e.buf.LineCount()),
		Modified:    e.hist.IsModified(),
	}

	version := e.buf.Version()
	for i := start; i < end; i++ {
		snap.Spans = append(snap.Spans, e.spans.SpansForLine(i, version)...)
	}
	return snap
}

// HighlightRequest builds a request for the visible line range at the
// current buffer version.
func (e *Engine) HighlightRequest() highlight.Request {
	start, end := e.view.VisibleLines()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, e.buf.LineText(i))
	}
	return highlight.Request{
		Doc:       e.doc,
		Version:   e.buf.Version(),
		Language:  e.language,
		StartLine: start,
		Lines:     lines,
	}
}

// ApplyHighlight merges an asynchronous highlight result. Results for a
// document or version the engine has moved past are discarded; the
// return value reports whether the result was applied.
func (e *Engine) ApplyHighlight(res highlight.Result) bool {
	if res.Doc != e.doc {
		return false
	}
	return e.spans.Apply(res, e.buf.Version())
}

// visibleSelections clips the selection to the visible line range, one
// span per line.
func (e *Engine) visibleSelections(start, end int) []SelectionSpan {
	sel := e.cur.Selection()
	if sel.IsEmpty() {
		return nil
	}

	selStart, selEnd := sel.Start(), sel.End()
	var spans []SelectionSpan
	for line := max(selStart.Line, start); line <= selEnd.Line && line < end; line++ {
		span := SelectionSpan{Line: line, EndCol: e.buf.LineLen(line)}
		if line == selStart.Line {
			span.StartCol = selStart.Column
		}
		if line == selEnd.Line {
			span.EndCol = selEnd.Column
		}
		spans = append(spans, span)
	}
	return spans
}
