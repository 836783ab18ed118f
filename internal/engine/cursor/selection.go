package cursor

import (
	"fmt"

	"github.com/dshills/editcore/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Span is an alias for buffer.Span for convenience.
type Span = buffer.Span

// Selection represents a range of selected text.
// Anchor is where the selection started; Active is the current cursor
// position (where typing occurs). When Anchor == Active, this represents
// a cursor with no selection. Selection is an immutable value type.
type Selection struct {
	Anchor Position // Where the selection started
	Active Position // Current cursor position
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Position) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// At creates a collapsed selection (bare cursor) at the given position.
func At(pos Position) Selection {
	return Selection{Anchor: pos, Active: pos}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Span returns the selection normalized to document order
// (Start <= End), discarding direction.
func (s Selection) Span() Span {
	if s.Anchor.Compare(s.Active) <= 0 {
		return Span{Start: s.Anchor, End: s.Active}
	}
	return Span{Start: s.Active, End: s.Anchor}
}

// Start returns the lower bound of the selection in document order.
func (s Selection) Start() Position {
	return s.Span().Start
}

// End returns the upper bound of the selection in document order.
func (s Selection) End() Position {
	return s.Span().End
}

// IsForward returns true if the selection extends forward
// (active >= anchor in document order).
func (s Selection) IsForward() bool {
	return s.Active.Compare(s.Anchor) >= 0
}

// Extend returns a selection with the active position moved and the
// anchor unchanged.
func (s Selection) Extend(pos Position) Selection {
	return Selection{Anchor: s.Anchor, Active: pos}
}

// Collapse collapses the selection to a cursor at the given position.
func (s Selection) Collapse(pos Position) Selection {
	return Selection{Anchor: pos, Active: pos}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Active)
	}
	return fmt.Sprintf("Selection(%s..%s)", s.Anchor, s.Active)
}
