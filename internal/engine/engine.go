package engine

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/dshills/editcore/internal/clipboard"
	"github.com/dshills/editcore/internal/config"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
	"github.com/dshills/editcore/internal/engine/highlight"
	"github.com/dshills/editcore/internal/engine/history"
	"github.com/dshills/editcore/internal/engine/search"
	"github.com/dshills/editcore/internal/engine/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/column position in rune columns.
	Position = buffer.Position

	// Span is a half-open position range.
	Span = buffer.Span

	// Selection is an anchor/active position pair.
	Selection = cursor.Selection

	// Direction identifies a cursor movement intent.
	Direction = cursor.Direction
)

// Re-export movement directions.
const (
	Left      = cursor.Left
	Right     = cursor.Right
	Up        = cursor.Up
	Down      = cursor.Down
	LineStart = cursor.LineStart
	LineEnd   = cursor.LineEnd
	DocStart  = cursor.DocStart
	DocEnd    = cursor.DocEnd
	PageUp    = cursor.PageUp
	PageDown  = cursor.PageDown
)

// Engine is the controller for one open document. All methods must be
// called from a single goroutine.
type Engine struct {
	doc      uuid.UUID
	buf      *buffer.Buffer
	cur      *cursor.State
	hist     *history.History
	view     *viewport.Viewport
	clip     clipboard.Clipboard
	spans    *highlight.Index
	language string

	searchState *search.State

	// creation-time settings consumed by New
	initContent string
	undoDepth   int
	viewWidth   int
	viewHeight  int
	marginRows  int
	marginCols  int
}

// New creates an engine for a document with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		doc:        uuid.New(),
		language:   "plain",
		undoDepth:  DefaultUndoDepth,
		viewWidth:  DefaultViewportWidth,
		viewHeight: DefaultViewportHeight,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.New(e.initContent)
	e.cur = cursor.NewState()
	e.hist = history.NewHistory(e.undoDepth)
	e.view = viewport.New(e.viewWidth, e.viewHeight)
	e.view.SetMargins(e.marginRows, e.marginCols)
	e.view.SetLineCount(e.buf.LineCount())
	e.spans = highlight.NewIndex()
	if e.clip == nil {
		e.clip = clipboard.NewMemory()
	}
	return e
}

// Doc returns the document identifier.
func (e *Engine) Doc() uuid.UUID {
	return e.doc
}

// Text returns the full document content.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Version returns the buffer version, incremented on every mutation.
func (e *Engine) Version() uint64 {
	return e.buf.Version()
}

// LineCount returns the number of lines. Always at least one.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineText returns the text of one line without its line break.
func (e *Engine) LineText(line int) string {
	return e.buf.LineText(line)
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.cur.Selection()
}

// CursorPosition returns the active cursor position.
func (e *Engine) CursorPosition() Position {
	return e.cur.Position()
}

// Language returns the language identifier for highlighting.
func (e *Engine) Language() string {
	return e.language
}

// SetLanguage changes the highlight language.
func (e *Engine) SetLanguage(language string) {
	if language != "" && language != e.language {
		e.language = language
		e.spans.Invalidate(e.buf.Version())
	}
}

// ApplyConfig applies a live-reloaded configuration. The undo depth
// only affects future growth; existing history is kept.
func (e *Engine) ApplyConfig(cfg config.Config) {
	e.view.SetMargins(cfg.ScrollMarginRows, cfg.ScrollMarginCols)
	e.SetLanguage(cfg.Language)
}

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool {
	return e.hist.CanRedo()
}

// MarkSaved records the current buffer state as the on-disk state.
func (e *Engine) MarkSaved() {
	e.hist.MarkSaved()
}

// IsModified reports whether the buffer differs from the last save
// point.
func (e *Engine) IsModified() bool {
	return e.hist.IsModified()
}

// MoveCursor applies one navigation intent. Movement ends the current
// typing group so the next character starts a fresh undo unit.
func (e *Engine) MoveCursor(dir Direction, extend bool) {
	e.hist.CloseGroup()
	e.cur.Move(e.buf, dir, extend, e.view.Height())
	e.revealCursor()
}

// SetSelection sets the selection explicitly, clamping both ends into
// the document.
func (e *Engine) SetSelection(anchor, active Position) {
	e.hist.CloseGroup()
	e.cur.SetSelection(cursor.NewSelection(e.buf.ClampPosition(anchor), e.buf.ClampPosition(active)))
	e.revealCursor()
}

// SelectAll selects the whole document, anchor at the start.
func (e *Engine) SelectAll() {
	e.SetSelection(Position{}, e.buf.EndPosition())
}

// SelectWord selects the identifier-like word under the cursor. With no
// word at the cursor the selection collapses in place.
func (e *Engine) SelectWord() {
	e.hist.CloseGroup()
	pos := e.cur.Position()
	line := []rune(e.buf.LineText(pos.Line))

	start, end := pos.Column, pos.Column
	for start > 0 && isWordRune(line[start-1]) {
		start--
	}
	for end < len(line) && isWordRune(line[end]) {
		end++
	}

	e.cur.SetSelection(cursor.NewSelection(
		Position{Line: pos.Line, Column: start},
		Position{Line: pos.Line, Column: end},
	))
	e.revealCursor()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// InsertRune types one character at the cursor, replacing the selection
// if one exists. Consecutive typed characters coalesce into one undo
// group.
func (e *Engine) InsertRune(r rune) error {
	return e.InsertText(string(r))
}

// InsertNewline splits the current line at the cursor.
func (e *Engine) InsertNewline() error {
	return e.InsertText("\n")
}

// InsertText inserts text at the cursor, replacing the selection if one
// exists. Line endings are normalized to LF.
func (e *Engine) InsertText(text string) error {
	if text == "" {
		return nil
	}
	text = normalizeLineEndings(text)

	sel := e.cur.Selection()
	if !sel.IsEmpty() {
		return e.replaceSelection(sel, text)
	}

	cmd := history.NewInsert(sel.Active, text)
	pos, err := cmd.Apply(e.buf)
	if err != nil {
		return err
	}
	e.hist.Record(cmd, sel)
	e.finishEdit(pos)
	return nil
}

// Backspace deletes the character before the cursor, or the selection
// if one exists. A no-op at the document start.
func (e *Engine) Backspace() error {
	sel := e.cur.Selection()
	if !sel.IsEmpty() {
		return e.DeleteSelection()
	}

	pos := sel.Active
	if pos == (Position{}) {
		e.hist.CloseGroup()
		return nil
	}

	var start Position
	if pos.Column > 0 {
		start = Position{Line: pos.Line, Column: pos.Column - 1}
	} else {
		start = Position{Line: pos.Line - 1, Column: e.buf.LineLen(pos.Line - 1)}
	}
	return e.deleteRange(start, pos, sel)
}

// DeleteForward deletes the character after the cursor, or the
// selection if one exists. A no-op at the document end.
func (e *Engine) DeleteForward() error {
	sel := e.cur.Selection()
	if !sel.IsEmpty() {
		return e.DeleteSelection()
	}

	pos := sel.Active
	if pos == e.buf.EndPosition() {
		e.hist.CloseGroup()
		return nil
	}

	var end Position
	if pos.Column < e.buf.LineLen(pos.Line) {
		end = Position{Line: pos.Line, Column: pos.Column + 1}
	} else {
		end = Position{Line: pos.Line + 1, Column: 0}
	}
	return e.deleteRange(pos, end, sel)
}

// DeleteSelection removes the selected text. A no-op on an empty
// selection.
func (e *Engine) DeleteSelection() error {
	sel := e.cur.Selection()
	if sel.IsEmpty() {
		return nil
	}
	return e.deleteRange(sel.Start(), sel.End(), sel)
}

// deleteRange removes [start, end) as one recorded command.
func (e *Engine) deleteRange(start, end Position, before Selection) error {
	removed, err := e.buf.Delete(start, end)
	if err != nil {
		return err
	}
	e.hist.Record(history.NewDelete(start, end, removed), before)
	e.finishEdit(start)
	return nil
}

// replaceSelection removes the selection and inserts text in its place
// as a single undo group.
func (e *Engine) replaceSelection(sel Selection, text string) error {
	start, end := sel.Start(), sel.End()

	e.hist.BeginGroup(sel)
	removed, err := e.buf.Delete(start, end)
	if err != nil {
		e.hist.EndGroup()
		return err
	}
	e.hist.Record(history.NewDelete(start, end, removed), sel)

	pos := start
	if text != "" {
		ins := history.NewInsert(start, text)
		pos, err = ins.Apply(e.buf)
		if err != nil {
			e.hist.EndGroup()
			e.finishEdit(start)
			return err
		}
		e.hist.Record(ins, sel)
	}
	e.hist.EndGroup()
	e.finishEdit(pos)
	return nil
}

// Copy writes the selected text to the clipboard. A no-op on an empty
// selection; the buffer is never touched.
func (e *Engine) Copy() error {
	sel := e.cur.Selection()
	if sel.IsEmpty() {
		return nil
	}
	text, err := e.buf.Slice(sel.Start(), sel.End())
	if err != nil {
		return err
	}
	return e.clip.SetText(text)
}

// Cut copies the selection to the clipboard and deletes it. When the
// clipboard write fails the buffer is left untouched.
func (e *Engine) Cut() error {
	sel := e.cur.Selection()
	if sel.IsEmpty() {
		return nil
	}
	text, err := e.buf.Slice(sel.Start(), sel.End())
	if err != nil {
		return err
	}
	if err := e.clip.SetText(text); err != nil {
		return err
	}
	return e.DeleteSelection()
}

// Paste inserts the clipboard contents at the cursor, replacing the
// selection if one exists. A clipboard read failure leaves the buffer
// untouched. Paste never merges with surrounding typing.
func (e *Engine) Paste() error {
	text, err := e.clip.GetText()
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	// Close the typing group on both sides: a paste is its own undo
	// unit even when it is a single character.
	e.hist.CloseGroup()
	if err := e.InsertText(text); err != nil {
		return err
	}
	e.hist.CloseGroup()
	return nil
}

// Undo reverses the most recent undo group and restores the selection
// from before it. Returns ErrNothingToUndo on an empty stack.
func (e *Engine) Undo() error {
	sel, err := e.hist.Undo(e.buf)
	if err != nil {
		return err
	}
	e.cur.SetSelection(sel)
	e.afterMutation()
	return nil
}

// Redo reapplies the most recently undone group and places the cursor
// after its last edit. Returns ErrNothingToRedo on an empty stack.
func (e *Engine) Redo() error {
	pos, err := e.hist.Redo(e.buf)
	if err != nil {
		return err
	}
	e.cur.SetPosition(pos)
	e.afterMutation()
	return nil
}

// Scroll moves the viewport without moving the cursor.
func (e *Engine) Scroll(deltaRows, deltaCols int) {
	e.view.ScrollBy(deltaRows, deltaCols)
}

// Resize updates the viewport dimensions and keeps the cursor visible.
func (e *Engine) Resize(width, height int) {
	e.view.Resize(width, height)
	e.revealCursor()
}

// finishEdit completes a buffer mutation: cursor to pos, stale state
// dropped, viewport following.
func (e *Engine) finishEdit(pos Position) {
	e.cur.SetPosition(pos)
	e.afterMutation()
}

// afterMutation invalidates version-dependent state after the buffer
// changed.
func (e *Engine) afterMutation() {
	e.searchState = nil
	e.spans.Invalidate(e.buf.Version())
	e.revealCursor()
}

func (e *Engine) revealCursor() {
	e.view.SetLineCount(e.buf.LineCount())
	pos := e.cur.Position()
	e.view.Reveal(pos.Line, pos.Column)
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
