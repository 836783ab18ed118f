package history

import (
	"errors"
	"testing"

	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
)

// record applies cmd to buf and records it, mirroring the controller's
// mutation pipeline.
func record(t *testing.T, h *History, buf *buffer.Buffer, cmd Command, before Selection) Position {
	t.Helper()
	pos, err := cmd.Apply(buf)
	if err != nil {
		t.Fatalf("apply %s: %v", cmd, err)
	}
	h.Record(cmd, before)
	return pos
}

// typeText records each rune of text as an adjacent single-rune insert
// starting at pos, the way sequential typing reaches the history.
func typeText(t *testing.T, h *History, buf *buffer.Buffer, pos Position, text string) Position {
	t.Helper()
	for _, r := range text {
		pos = record(t, h, buf, NewInsert(pos, string(r)), cursor.At(pos))
	}
	return pos
}

func TestCommandInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"single rune", NewInsert(Position{Line: 0, Column: 2}, "x")},
		{"word", NewInsert(Position{Line: 0, Column: 0}, "hello")},
		{"newline", NewInsert(Position{Line: 0, Column: 3}, "\n")},
		{"multiline", NewInsert(Position{Line: 0, Column: 1}, "a\nb\nc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.New("abc\ndef")
			before := buf.Text()

			if _, err := tt.cmd.Apply(buf); err != nil {
				t.Fatalf("apply: %v", err)
			}
			if _, err := tt.cmd.Invert().Apply(buf); err != nil {
				t.Fatalf("apply inverse: %v", err)
			}
			if buf.Text() != before {
				t.Errorf("expected %q, got %q", before, buf.Text())
			}
		})
	}
}

func TestDeleteInvertRestoresText(t *testing.T) {
	buf := buffer.New("hello\nworld")

	removed, err := buf.Slice(Position{Line: 0, Column: 3}, Position{Line: 1, Column: 2})
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	cmd := NewDelete(Position{Line: 0, Column: 3}, Position{Line: 1, Column: 2}, removed)

	if _, err := cmd.Apply(buf); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if buf.Text() != "helrld" {
		t.Fatalf("unexpected content %q", buf.Text())
	}

	if _, err := cmd.Invert().Apply(buf); err != nil {
		t.Fatalf("apply inverse: %v", err)
	}
	if buf.Text() != "hello\nworld" {
		t.Errorf("expected restore, got %q", buf.Text())
	}
}

func TestTypingMergesIntoOneGroup(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	typeText(t, h, buf, Position{Line: 0, Column: 0}, "hello")

	if h.UndoCount() != 1 {
		t.Fatalf("expected 1 group for sequential typing, got %d", h.UndoCount())
	}

	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if buf.Text() != "" {
		t.Errorf("expected all typed text removed as one unit, got %q", buf.Text())
	}
}

func TestCloseGroupSplitsTyping(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	pos := typeText(t, h, buf, Position{Line: 0, Column: 0}, "ab")
	h.CloseGroup() // navigation happened
	typeText(t, h, buf, pos, "cd")

	if h.UndoCount() != 2 {
		t.Fatalf("expected 2 groups, got %d", h.UndoCount())
	}

	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if buf.Text() != "ab" {
		t.Errorf("expected %q after first undo, got %q", "ab", buf.Text())
	}
	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if buf.Text() != "" {
		t.Errorf("expected empty after second undo, got %q", buf.Text())
	}
}

func TestNonAdjacentTypingDoesNotMerge(t *testing.T) {
	buf := buffer.New("abc")
	h := NewHistory(0)

	record(t, h, buf, NewInsert(Position{Line: 0, Column: 3}, "x"), cursor.At(Position{Line: 0, Column: 3}))
	// Typed at a different place than where the last insert ended.
	record(t, h, buf, NewInsert(Position{Line: 0, Column: 0}, "y"), cursor.At(Position{Line: 0, Column: 0}))

	if h.UndoCount() != 2 {
		t.Errorf("expected 2 groups for non-adjacent inserts, got %d", h.UndoCount())
	}
}

func TestNewlineAlwaysOwnGroup(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	pos := typeText(t, h, buf, Position{Line: 0, Column: 0}, "ab")
	pos = record(t, h, buf, NewInsert(pos, "\n"), cursor.At(pos))
	typeText(t, h, buf, pos, "cd")

	if h.UndoCount() != 3 {
		t.Errorf("expected 3 groups (typing, newline, typing), got %d", h.UndoCount())
	}
}

func TestDeleteClosesGroup(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	pos := typeText(t, h, buf, Position{Line: 0, Column: 0}, "abc")
	record(t, h, buf, NewDelete(Position{Line: 0, Column: 2}, pos, "c"), cursor.At(pos))
	typeText(t, h, buf, Position{Line: 0, Column: 2}, "z")

	if h.UndoCount() != 3 {
		t.Errorf("expected 3 groups, got %d", h.UndoCount())
	}
}

func TestUndoRestoresSelection(t *testing.T) {
	buf := buffer.New("abcdef")
	h := NewHistory(0)

	sel := cursor.NewSelection(Position{Line: 0, Column: 5}, Position{Line: 0, Column: 2})
	span := sel.Span()
	removed, err := buf.Slice(span.Start, span.End)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	record(t, h, buf, NewDelete(span.Start, span.End, removed), sel)

	if buf.Text() != "abf" {
		t.Fatalf("unexpected content %q", buf.Text())
	}

	restored, err := h.Undo(buf)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if buf.Text() != "abcdef" {
		t.Errorf("expected restore, got %q", buf.Text())
	}
	if restored != sel {
		t.Errorf("expected original selection %s (anchor preserved), got %s", sel, restored)
	}
}

func TestRedoReproducesState(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	end := typeText(t, h, buf, Position{Line: 0, Column: 0}, "hello")

	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	pos, err := h.Redo(buf)
	if err != nil {
		t.Fatalf("redo: %v", err)
	}
	if buf.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", buf.Text())
	}
	if pos != end {
		t.Errorf("expected cursor %s, got %s", end, pos)
	}
	if h.CanRedo() {
		t.Error("redo stack should be empty")
	}
}

func TestRecordClearsRedo(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	typeText(t, h, buf, Position{Line: 0, Column: 0}, "ab")
	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available")
	}

	typeText(t, h, buf, Position{Line: 0, Column: 0}, "x")
	if h.CanRedo() {
		t.Error("new edit should clear the redo stack")
	}
}

func TestUndoRedoEmptyStacks(t *testing.T) {
	buf := buffer.New("abc")
	h := NewHistory(0)

	if _, err := h.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if _, err := h.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
	if buf.Text() != "abc" {
		t.Errorf("buffer modified: %q", buf.Text())
	}
}

func TestCompoundGroupUndoneAsUnit(t *testing.T) {
	buf := buffer.New("abcdef")
	h := NewHistory(0)

	// Paste "XY" over selection [1,3): one delete and one insert,
	// reversed by a single undo.
	sel := cursor.NewSelection(Position{Line: 0, Column: 1}, Position{Line: 0, Column: 3})
	span := sel.Span()
	removed, _ := buf.Slice(span.Start, span.End)

	h.BeginGroup(sel)
	record(t, h, buf, NewDelete(span.Start, span.End, removed), sel)
	record(t, h, buf, NewInsert(span.Start, "XY"), sel)
	h.EndGroup()

	if buf.Text() != "aXYdef" {
		t.Fatalf("unexpected content %q", buf.Text())
	}
	if h.UndoCount() != 1 {
		t.Fatalf("expected 1 compound group, got %d", h.UndoCount())
	}

	restored, err := h.Undo(buf)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if buf.Text() != "abcdef" {
		t.Errorf("expected restore, got %q", buf.Text())
	}
	if restored != sel {
		t.Errorf("expected selection %s reinstated, got %s", sel, restored)
	}
}

func TestDepthBoundEvictsOldest(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(3)

	pos := Position{}
	for i := 0; i < 5; i++ {
		pos = record(t, h, buf, NewInsert(pos, "x"), cursor.At(pos))
		h.CloseGroup()
	}

	if h.UndoCount() != 3 {
		t.Fatalf("expected depth bound of 3, got %d", h.UndoCount())
	}

	// Only the 3 newest groups can be undone.
	for h.CanUndo() {
		if _, err := h.Undo(buf); err != nil {
			t.Fatalf("undo: %v", err)
		}
	}
	if buf.Text() != "xx" {
		t.Errorf("expected evicted edits to remain, got %q", buf.Text())
	}
}

func TestSavePoint(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	if h.IsModified() {
		t.Error("fresh history should not be modified")
	}

	typeText(t, h, buf, Position{Line: 0, Column: 0}, "ab")
	if !h.IsModified() {
		t.Error("expected modified after edit")
	}

	h.MarkSaved()
	if h.IsModified() {
		t.Error("expected unmodified at save point")
	}

	h.CloseGroup()
	typeText(t, h, buf, Position{Line: 0, Column: 2}, "c")
	if !h.IsModified() {
		t.Error("expected modified after further edit")
	}

	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if h.IsModified() {
		t.Error("undo back to save point should clear modified")
	}
}

func TestSavePointUnreachableAfterDivergence(t *testing.T) {
	buf := buffer.New("")
	h := NewHistory(0)

	pos := typeText(t, h, buf, Position{Line: 0, Column: 0}, "a")
	h.CloseGroup()
	typeText(t, h, buf, pos, "b")
	h.MarkSaved()

	// Undo below the save point, then edit: the save point is gone.
	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	typeText(t, h, buf, Position{Line: 0, Column: 1}, "z")

	if !h.IsModified() {
		t.Error("expected modified after diverging from save point")
	}
	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !h.IsModified() {
		t.Error("save point must stay unreachable")
	}
}
