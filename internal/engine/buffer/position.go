package buffer

import "fmt"

// Position represents a line and column position in the buffer.
// Both Line and Column are 0-indexed. Column is measured in runes from
// the start of the line and may equal the line length, meaning "after
// the last character".
type Position struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed rune offset within line
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other
// in document order.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// Span represents a region of the buffer between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Span struct {
	Start Position // Inclusive start position
	End   Position // Exclusive end position
}

// NewSpan creates a span from start and end positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%s:%s)", s.Start, s.End)
}

// IsEmpty returns true if the span covers no text.
func (s Span) IsEmpty() bool {
	return s.Start.Compare(s.End) == 0
}

// IsValid returns true if Start <= End in document order.
func (s Span) IsValid() bool {
	return s.Start.Compare(s.End) <= 0
}

// Contains returns true if the position is within the span.
func (s Span) Contains(p Position) bool {
	return p.Compare(s.Start) >= 0 && p.Compare(s.End) < 0
}

// IsSingleLine returns true if the span starts and ends on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Normalize returns a span with Start <= End in document order.
func (s Span) Normalize() Span {
	if s.IsValid() {
		return s
	}
	return Span{Start: s.End, End: s.Start}
}
