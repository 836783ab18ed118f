package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editcore/internal/engine"
	"github.com/dshills/editcore/internal/engine/highlight"
)

var (
	styleDefault   = tcell.StyleDefault
	styleGutter    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Reverse(true)

	tokenStyles = map[highlight.TokenType]tcell.Style{
		highlight.TokenKeyword: tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
		highlight.TokenString:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		highlight.TokenNumber:  tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		highlight.TokenComment: tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true),
	}
)

func (a *app) draw() {
	a.screen.Clear()
	snap := a.eng.Snapshot()

	gutter := snap.GutterWidth
	textLeft := gutter + 1

	for row, text := range snap.Lines {
		line := snap.StartLine + row

		number := fmt.Sprintf("%*d", gutter, line+1)
		for x, r := range number {
			a.screen.SetContent(x, row, r, nil, styleGutter)
		}

		runes := []rune(text)
		for col := snap.LeftColumn; col < len(runes); col++ {
			x := textLeft + col - snap.LeftColumn
			if x >= snap.Width {
				break
			}
			a.screen.SetContent(x, row, runes[col], nil, a.cellStyle(snap.Spans, snap.Selections, line, col))
		}
	}

	a.drawStatus(snap.Height)

	if a.mode == modeFind {
		a.screen.HideCursor()
	} else {
		cursorX := textLeft + snap.CursorCol - snap.LeftColumn
		cursorY := snap.CursorLine - snap.TopLine
		if cursorY >= 0 && cursorY < snap.Height && cursorX >= textLeft {
			a.screen.ShowCursor(cursorX, cursorY)
		} else {
			a.screen.HideCursor()
		}
	}

	a.screen.Show()
}

func (a *app) cellStyle(spans []highlight.Span, selections []engine.SelectionSpan, line, col int) tcell.Style {
	for _, sel := range selections {
		if sel.Line == line && col >= sel.StartCol && col < sel.EndCol {
			return styleSelection
		}
	}
	for _, span := range spans {
		if span.Line == line && col >= span.StartCol && col < span.EndCol {
			if style, ok := tokenStyles[span.Type]; ok {
				return style
			}
		}
	}
	return styleDefault
}

func (a *app) drawStatus(row int) {
	snap := a.eng.Snapshot()
	width := snap.Width

	var left string
	if a.mode == modeFind {
		left = "find: " + string(a.findQuery)
	} else {
		name := a.filePath
		if name == "" {
			name = "[scratch]"
		}
		modified := ""
		if snap.Modified {
			modified = " [+]"
		}
		left = name + modified
		if a.status != "" {
			left += "  " + a.status
		}
	}
	right := fmt.Sprintf("%d:%d", snap.CursorLine+1, snap.CursorCol+1)

	for x := 0; x < width; x++ {
		a.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	for x, r := range []rune(left) {
		if x >= width {
			break
		}
		a.screen.SetContent(x, row, r, nil, styleStatus)
	}
	for i, r := range []rune(right) {
		x := width - len([]rune(right)) + i
		if x >= 0 {
			a.screen.SetContent(x, row, r, nil, styleStatus)
		}
	}
}
