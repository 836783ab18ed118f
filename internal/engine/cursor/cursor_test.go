package cursor

import (
	"testing"

	"github.com/dshills/editcore/internal/engine/buffer"
)

func newLines(content string) *buffer.Buffer {
	return buffer.New(content)
}

func TestMoveHorizontal(t *testing.T) {
	lines := newLines("abc\nde")

	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"right within line", Position{Line: 0, Column: 1}, Right, Position{Line: 0, Column: 2}},
		{"right at line end crosses", Position{Line: 0, Column: 3}, Right, Position{Line: 1, Column: 0}},
		{"right at doc end is no-op", Position{Line: 1, Column: 2}, Right, Position{Line: 1, Column: 2}},
		{"left within line", Position{Line: 0, Column: 2}, Left, Position{Line: 0, Column: 1}},
		{"left at column 0 crosses", Position{Line: 1, Column: 0}, Left, Position{Line: 0, Column: 3}},
		{"left at doc start is no-op", Position{Line: 0, Column: 0}, Left, Position{Line: 0, Column: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.SetPosition(tt.from)
			s.Move(lines, tt.dir, false, 1)
			if s.Position() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, s.Position())
			}
			if !s.Selection().IsEmpty() {
				t.Error("non-extending move should collapse selection")
			}
		})
	}
}

func TestMoveLineAndDocBounds(t *testing.T) {
	lines := newLines("abc\ndefgh")

	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"line start", Position{Line: 1, Column: 3}, LineStart, Position{Line: 1, Column: 0}},
		{"line end", Position{Line: 1, Column: 3}, LineEnd, Position{Line: 1, Column: 5}},
		{"doc start", Position{Line: 1, Column: 3}, DocStart, Position{Line: 0, Column: 0}},
		{"doc end", Position{Line: 0, Column: 1}, DocEnd, Position{Line: 1, Column: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.SetPosition(tt.from)
			s.Move(lines, tt.dir, false, 1)
			if s.Position() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, s.Position())
			}
		})
	}
}

func TestStickyColumn(t *testing.T) {
	lines := newLines("abcdef\nab\nabcdef")

	s := NewState()
	s.SetPosition(Position{Line: 0, Column: 5})

	s.Move(lines, Down, false, 1)
	if s.Position() != (Position{Line: 1, Column: 2}) {
		t.Errorf("expected clamp to (1:2), got %s", s.Position())
	}

	s.Move(lines, Down, false, 1)
	if s.Position() != (Position{Line: 2, Column: 5}) {
		t.Errorf("expected desired column restored at (2:5), got %s", s.Position())
	}
}

func TestStickyColumnResetOnHorizontalMove(t *testing.T) {
	lines := newLines("abcdef\nab\nabcdef")

	s := NewState()
	s.SetPosition(Position{Line: 0, Column: 5})
	s.Move(lines, Down, false, 1) // lands at (1:2), desired 5
	s.Move(lines, Left, false, 1) // horizontal move resets desired
	s.Move(lines, Down, false, 1)

	if s.Position() != (Position{Line: 2, Column: 1}) {
		t.Errorf("expected (2:1) after reset, got %s", s.Position())
	}
}

func TestStickyColumnResetOnSetPosition(t *testing.T) {
	lines := newLines("abcdef\nab\nabcdef")

	s := NewState()
	s.SetPosition(Position{Line: 0, Column: 5})
	s.Move(lines, Down, false, 1)
	s.SetPosition(s.Position())
	s.Move(lines, Down, false, 1)

	if s.Position() != (Position{Line: 2, Column: 2}) {
		t.Errorf("expected (2:2), got %s", s.Position())
	}
}

func TestVerticalClampAtDocumentEdges(t *testing.T) {
	lines := newLines("abc\ndef")

	s := NewState()
	s.SetPosition(Position{Line: 0, Column: 1})
	s.Move(lines, Up, false, 1)
	if s.Position() != (Position{Line: 0, Column: 1}) {
		t.Errorf("expected no move past first line, got %s", s.Position())
	}

	s.SetPosition(Position{Line: 1, Column: 1})
	s.Move(lines, Down, false, 1)
	if s.Position() != (Position{Line: 1, Column: 1}) {
		t.Errorf("expected no move past last line, got %s", s.Position())
	}
}

func TestPageMovement(t *testing.T) {
	content := ""
	for i := 0; i < 100; i++ {
		if i > 0 {
			content += "\n"
		}
		content += "line"
	}
	lines := newLines(content)

	s := NewState()
	s.SetPosition(Position{Line: 50, Column: 2})

	s.Move(lines, PageDown, false, 20)
	if s.Position().Line != 70 {
		t.Errorf("expected line 70, got %d", s.Position().Line)
	}

	s.Move(lines, PageUp, false, 20)
	if s.Position().Line != 50 {
		t.Errorf("expected line 50, got %d", s.Position().Line)
	}

	s.Move(lines, PageDown, false, 200)
	if s.Position().Line != 99 {
		t.Errorf("expected clamp to line 99, got %d", s.Position().Line)
	}
}

func TestExtendKeepsAnchor(t *testing.T) {
	lines := newLines("abcdef")

	s := NewState()
	s.SetPosition(Position{Line: 0, Column: 3})

	s.Move(lines, Right, true, 1)
	s.Move(lines, Right, true, 1)

	sel := s.Selection()
	if sel.Anchor != (Position{Line: 0, Column: 3}) {
		t.Errorf("anchor moved to %s", sel.Anchor)
	}
	if sel.Active != (Position{Line: 0, Column: 5}) {
		t.Errorf("expected active (0:5), got %s", sel.Active)
	}

	// Extending back past the anchor keeps the original anchor.
	for i := 0; i < 4; i++ {
		s.Move(lines, Left, true, 1)
	}
	sel = s.Selection()
	if sel.Anchor != (Position{Line: 0, Column: 3}) {
		t.Errorf("anchor moved to %s after flip", sel.Anchor)
	}
	if sel.Active != (Position{Line: 0, Column: 1}) {
		t.Errorf("expected active (0:1), got %s", sel.Active)
	}
	if sel.IsForward() {
		t.Error("expected backward selection")
	}
}

func TestSelectionSpanNormalizes(t *testing.T) {
	sel := NewSelection(Position{Line: 0, Column: 5}, Position{Line: 0, Column: 2})

	span := sel.Span()
	if span.Start != (Position{Line: 0, Column: 2}) || span.End != (Position{Line: 0, Column: 5}) {
		t.Errorf("expected [2,5), got %s", span)
	}
	if sel.Anchor != (Position{Line: 0, Column: 5}) {
		t.Error("normalization must not disturb the anchor")
	}
}
