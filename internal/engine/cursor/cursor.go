package cursor

// Direction identifies a navigation intent.
type Direction uint8

// Navigation directions.
const (
	Left Direction = iota
	Right
	Up
	Down
	LineStart
	LineEnd
	DocStart
	DocEnd
	PageUp
	PageDown
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case LineStart:
		return "line-start"
	case LineEnd:
		return "line-end"
	case DocStart:
		return "doc-start"
	case DocEnd:
		return "doc-end"
	case PageUp:
		return "page-up"
	case PageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// Lines is the buffer geometry needed for navigation.
type Lines interface {
	LineCount() int
	LineLen(line int) int
}

// noDesired marks the sticky desired column as unset.
const noDesired = -1

// State holds the live cursor/selection plus the sticky desired column
// used by vertical movement.
type State struct {
	sel     Selection
	desired int
}

// NewState creates a state with a collapsed selection at the document
// start.
func NewState() *State {
	return &State{desired: noDesired}
}

// Selection returns the current selection.
func (s *State) Selection() Selection {
	return s.sel
}

// Position returns the active (cursor) position.
func (s *State) Position() Position {
	return s.sel.Active
}

// SetPosition collapses the selection to the given position and forgets
// the desired column.
func (s *State) SetPosition(pos Position) {
	s.sel = At(pos)
	s.desired = noDesired
}

// SetSelection sets anchor and active explicitly and forgets the desired
// column.
func (s *State) SetSelection(sel Selection) {
	s.sel = sel
	s.desired = noDesired
}

// Move applies one navigation intent. When extend is true only the
// active position moves; otherwise the selection collapses to the new
// position. page is the number of rows a page covers (viewport height).
func (s *State) Move(lines Lines, dir Direction, extend bool, page int) {
	pos := s.sel.Active

	switch dir {
	case Left:
		pos = moveLeft(lines, pos)
		s.desired = noDesired
	case Right:
		pos = moveRight(lines, pos)
		s.desired = noDesired
	case LineStart:
		pos.Column = 0
		s.desired = noDesired
	case LineEnd:
		pos.Column = lines.LineLen(pos.Line)
		s.desired = noDesired
	case DocStart:
		pos = Position{}
		s.desired = noDesired
	case DocEnd:
		last := lines.LineCount() - 1
		pos = Position{Line: last, Column: lines.LineLen(last)}
		s.desired = noDesired
	case Up:
		pos = s.moveVertical(lines, pos, -1)
	case Down:
		pos = s.moveVertical(lines, pos, 1)
	case PageUp:
		if page < 1 {
			page = 1
		}
		pos = s.moveVertical(lines, pos, -page)
	case PageDown:
		if page < 1 {
			page = 1
		}
		pos = s.moveVertical(lines, pos, page)
	}

	if extend {
		s.sel = s.sel.Extend(pos)
	} else {
		s.sel = s.sel.Collapse(pos)
	}
}

// moveVertical moves by delta rows, clamped to the document, keeping the
// sticky desired column.
func (s *State) moveVertical(lines Lines, pos Position, delta int) Position {
	if s.desired == noDesired {
		s.desired = pos.Column
	}

	line := pos.Line + delta
	if line < 0 {
		line = 0
	}
	if max := lines.LineCount() - 1; line > max {
		line = max
	}

	col := s.desired
	if lineLen := lines.LineLen(line); col > lineLen {
		col = lineLen
	}
	return Position{Line: line, Column: col}
}

// moveLeft moves one character left, crossing to the end of the previous
// line at column 0. A no-op at document start.
func moveLeft(lines Lines, pos Position) Position {
	if pos.Column > 0 {
		pos.Column--
		return pos
	}
	if pos.Line > 0 {
		return Position{Line: pos.Line - 1, Column: lines.LineLen(pos.Line - 1)}
	}
	return pos
}

// moveRight moves one character right, crossing to column 0 of the next
// line at end-of-line. A no-op at document end.
func moveRight(lines Lines, pos Position) Position {
	if pos.Column < lines.LineLen(pos.Line) {
		pos.Column++
		return pos
	}
	if pos.Line+1 < lines.LineCount() {
		return Position{Line: pos.Line + 1, Column: 0}
	}
	return pos
}
