package buffer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrSpanInvalid        = errors.New("invalid span")
	ErrInvalidEncoding    = errors.New("text is not valid UTF-8")
)

// Buffer is a line-structured text store. Lines are held as rune slices
// so column arithmetic is always in characters, and lines are addressed
// by a contiguous zero-based index.
type Buffer struct {
	lines   [][]rune
	version uint64
}

// New creates a buffer with initial content. Line endings are normalized
// to LF before splitting; an empty string produces a single empty line.
func New(content string) *Buffer {
	content = normalizeLineEndings(content)

	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}

	return &Buffer{lines: lines}
}

// normalizeLineEndings converts CRLF and bare CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Version returns the buffer version. It increases by one on every
// committed mutation and is used to invalidate asynchronously computed
// results such as syntax highlighting.
func (b *Buffer) Version() uint64 {
	return b.version
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of a line in runes, or 0 if the line index
// is out of range.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// LineText returns the text of a line (without newline), or "" if the
// line index is out of range.
func (b *Buffer) LineText(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return string(b.lines[line])
}

// Text returns the full buffer content with LF line endings.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// EndPosition returns the position after the last character of the
// document.
func (b *Buffer) EndPosition() Position {
	last := len(b.lines) - 1
	return Position{Line: last, Column: len(b.lines[last])}
}

// ValidatePosition returns ErrPositionOutOfRange if the position violates
// the position invariant.
func (b *Buffer) ValidatePosition(p Position) error {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return ErrPositionOutOfRange
	}
	if p.Column < 0 || p.Column > len(b.lines[p.Line]) {
		return ErrPositionOutOfRange
	}
	return nil
}

// ClampPosition returns the nearest valid position to p. It is used at
// the public API boundary, where out-of-range requests from navigation
// are clamped rather than rejected.
func (b *Buffer) ClampPosition(p Position) Position {
	if p.Line < 0 {
		return Position{}
	}
	if p.Line >= len(b.lines) {
		return b.EndPosition()
	}
	if p.Column < 0 {
		p.Column = 0
	} else if p.Column > len(b.lines[p.Line]) {
		p.Column = len(b.lines[p.Line])
	}
	return p
}

// Insert inserts text at the given position and returns the position
// immediately after the inserted text. Text containing line breaks
// splits the line at the insertion point and may increase LineCount.
// The buffer is unchanged on error.
func (b *Buffer) Insert(pos Position, text string) (Position, error) {
	if err := b.ValidatePosition(pos); err != nil {
		return Position{}, err
	}
	if !utf8.ValidString(text) {
		return Position{}, ErrInvalidEncoding
	}
	if text == "" {
		return pos, nil
	}

	text = normalizeLineEndings(text)
	segs := strings.Split(text, "\n")

	line := b.lines[pos.Line]
	head := line[:pos.Column]
	tail := line[pos.Column:]

	if len(segs) == 1 {
		ins := []rune(segs[0])
		merged := make([]rune, 0, len(head)+len(ins)+len(tail))
		merged = append(merged, head...)
		merged = append(merged, ins...)
		merged = append(merged, tail...)
		b.lines[pos.Line] = merged
		b.version++
		return Position{Line: pos.Line, Column: pos.Column + len(ins)}, nil
	}

	// Multi-line insert: the first segment joins the head, the last
	// segment takes the tail, segments between become whole lines.
	first := append(append(make([]rune, 0, len(head)+len(segs[0])), head...), []rune(segs[0])...)
	lastSeg := []rune(segs[len(segs)-1])
	last := append(append(make([]rune, 0, len(lastSeg)+len(tail)), lastSeg...), tail...)

	inserted := make([][]rune, 0, len(segs)-1)
	for _, seg := range segs[1 : len(segs)-1] {
		inserted = append(inserted, []rune(seg))
	}
	inserted = append(inserted, last)

	b.lines[pos.Line] = first
	rest := make([][]rune, 0, len(b.lines)+len(inserted))
	rest = append(rest, b.lines[:pos.Line+1]...)
	rest = append(rest, inserted...)
	rest = append(rest, b.lines[pos.Line+1:]...)
	b.lines = rest
	b.version++

	return Position{Line: pos.Line + len(segs) - 1, Column: len(lastSeg)}, nil
}

// Delete removes the text in [start, end) and returns exactly the text
// that was removed, with LF joining any removed line breaks. A delete
// spanning lines joins the surrounding partial lines into one. The
// buffer is unchanged on error.
func (b *Buffer) Delete(start, end Position) (string, error) {
	if err := b.ValidatePosition(start); err != nil {
		return "", err
	}
	if err := b.ValidatePosition(end); err != nil {
		return "", err
	}
	if start.After(end) {
		return "", ErrSpanInvalid
	}

	removed := b.slice(start, end)

	if start.Line == end.Line {
		line := b.lines[start.Line]
		merged := make([]rune, 0, len(line)-(end.Column-start.Column))
		merged = append(merged, line[:start.Column]...)
		merged = append(merged, line[end.Column:]...)
		b.lines[start.Line] = merged
		b.version++
		return removed, nil
	}

	head := b.lines[start.Line][:start.Column]
	tail := b.lines[end.Line][end.Column:]
	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)

	b.lines[start.Line] = merged
	b.lines = append(b.lines[:start.Line+1], b.lines[end.Line+1:]...)
	b.version++

	return removed, nil
}

// Slice returns the text in [start, end) without modifying the buffer.
func (b *Buffer) Slice(start, end Position) (string, error) {
	if err := b.ValidatePosition(start); err != nil {
		return "", err
	}
	if err := b.ValidatePosition(end); err != nil {
		return "", err
	}
	if start.After(end) {
		return "", ErrSpanInvalid
	}
	return b.slice(start, end), nil
}

// slice extracts [start, end) assuming both positions are valid.
func (b *Buffer) slice(start, end Position) string {
	if start.Line == end.Line {
		return string(b.lines[start.Line][start.Column:end.Column])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line][start.Column:]))
	for line := start.Line + 1; line < end.Line; line++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[line]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line][:end.Column]))
	return sb.String()
}

// EndOfInsertion computes the position after inserting text at pos
// without applying the edit. It mirrors the arithmetic of Insert and is
// used by the history package to build inverse commands.
func EndOfInsertion(pos Position, text string) Position {
	text = normalizeLineEndings(text)
	segs := strings.Split(text, "\n")
	if len(segs) == 1 {
		return Position{Line: pos.Line, Column: pos.Column + utf8.RuneCountInString(segs[0])}
	}
	return Position{
		Line:   pos.Line + len(segs) - 1,
		Column: utf8.RuneCountInString(segs[len(segs)-1]),
	}
}
