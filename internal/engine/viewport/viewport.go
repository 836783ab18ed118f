// Package viewport derives the visible line/column window from buffer
// geometry, cursor position, and viewport dimensions.
package viewport

// Viewport tracks the visible sub-rectangle of the document. The top
// line and left column are adjusted minimally to keep the cursor inside
// the configured scroll margins.
type Viewport struct {
	topLine    int
	leftColumn int

	// Size in rows/columns, always >= 1.
	height int
	width  int

	// Scroll margins: rows/columns kept visible around the cursor
	// when possible.
	marginRows int
	marginCols int

	lineCount int
}

// New creates a viewport with the given size. Dimensions are clamped to
// a minimum of 1 row/column.
func New(width, height int) *Viewport {
	v := &Viewport{lineCount: 1}
	v.Resize(width, height)
	return v
}

// Resize updates the viewport size, clamping to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
	v.clamp()
}

// SetMargins sets the scroll margins in rows and columns. Negative
// values are treated as 0.
func (v *Viewport) SetMargins(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	v.marginRows = rows
	v.marginCols = cols
}

// SetLineCount informs the viewport of the buffer's line count so the
// visible range stays clamped to [0, lineCount).
func (v *Viewport) SetLineCount(n int) {
	if n < 1 {
		n = 1
	}
	v.lineCount = n
	v.clamp()
}

// Width returns the viewport width in columns.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height in rows.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// VisibleLines returns the visible line range [start, end), clamped to
// the buffer.
func (v *Viewport) VisibleLines() (start, end int) {
	start = v.topLine
	end = v.topLine + v.height
	if end > v.lineCount {
		end = v.lineCount
	}
	return start, end
}

// Reveal scrolls minimally so the given cursor position is visible,
// keeping the scroll margins around it when possible.
func (v *Viewport) Reveal(line, col int) {
	margin := v.marginRows
	if line < v.topLine+margin {
		v.topLine = line - margin
		if v.topLine < 0 {
			v.topLine = 0
		}
	} else if line >= v.topLine+v.height-margin {
		v.topLine = line - v.height + margin + 1
	}

	margin = v.marginCols
	if col < v.leftColumn+margin {
		v.leftColumn = col - margin
		if v.leftColumn < 0 {
			v.leftColumn = 0
		}
	} else if col >= v.leftColumn+v.width-margin {
		v.leftColumn = col - v.width + margin + 1
	}

	v.clamp()
}

// ScrollBy scrolls by row/column deltas without moving the cursor.
func (v *Viewport) ScrollBy(deltaRows, deltaCols int) {
	v.topLine += deltaRows
	v.leftColumn += deltaCols
	v.clamp()
}

// ScreenPosition converts a buffer position to viewport-relative
// row/column. ok is false when the position is outside the viewport.
func (v *Viewport) ScreenPosition(line, col int) (row, screenCol int, ok bool) {
	row = line - v.topLine
	screenCol = col - v.leftColumn
	if row < 0 || row >= v.height || screenCol < 0 || screenCol >= v.width {
		return row, screenCol, false
	}
	return row, screenCol, true
}

// clamp keeps topLine within [0, lineCount) and leftColumn >= 0.
func (v *Viewport) clamp() {
	if v.topLine > v.lineCount-1 {
		v.topLine = v.lineCount - 1
	}
	if v.topLine < 0 {
		v.topLine = 0
	}
	if v.leftColumn < 0 {
		v.leftColumn = 0
	}
}
