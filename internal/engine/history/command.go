package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/editcore/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Kind identifies the command variant.
type Kind uint8

const (
	// KindInsert inserts Text at Start.
	KindInsert Kind = iota
	// KindDelete removes [Start, End), with the removed text captured
	// in Removed.
	KindDelete
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Command is a reversible description of one atomic buffer mutation.
// Command is a value type; once built it carries everything needed to
// apply itself, invert itself, and recompute the post-apply cursor.
type Command struct {
	Kind    Kind
	Start   Position
	End     Position // Delete only; exclusive
	Text    string   // Insert only
	Removed string   // Delete only, captured at build time
}

// NewInsert creates an insert command.
func NewInsert(at Position, text string) Command {
	return Command{Kind: KindInsert, Start: at, Text: text}
}

// NewDelete creates a delete command. removed must be exactly the text
// occupying [start, end) so the inverse is self-contained.
func NewDelete(start, end Position, removed string) Command {
	return Command{Kind: KindDelete, Start: start, End: end, Removed: removed}
}

// Apply performs the command against the buffer and returns the
// deterministic post-apply cursor position: the end of inserted text for
// an insert, the start of the removed span for a delete.
func (c Command) Apply(buf *buffer.Buffer) (Position, error) {
	switch c.Kind {
	case KindInsert:
		end, err := buf.Insert(c.Start, c.Text)
		if err != nil {
			return Position{}, fmt.Errorf("apply insert at %s: %w", c.Start, err)
		}
		return end, nil
	case KindDelete:
		if _, err := buf.Delete(c.Start, c.End); err != nil {
			return Position{}, fmt.Errorf("apply delete %s..%s: %w", c.Start, c.End, err)
		}
		return c.Start, nil
	default:
		return Position{}, fmt.Errorf("apply command: unknown kind %d", c.Kind)
	}
}

// Invert returns the command that exactly undoes this one.
func (c Command) Invert() Command {
	switch c.Kind {
	case KindInsert:
		return NewDelete(c.Start, buffer.EndOfInsertion(c.Start, c.Text), c.Text)
	case KindDelete:
		return NewInsert(c.Start, c.Removed)
	default:
		return c
	}
}

// IsRuneInsert returns true if the command inserts exactly one rune that
// is not a line break. Only such commands participate in typing merges.
func (c Command) IsRuneInsert() bool {
	if c.Kind != KindInsert {
		return false
	}
	r, size := utf8.DecodeRuneInString(c.Text)
	return size == len(c.Text) && size > 0 && r != '\n'
}

// EndPosition returns the position after this command's affected text:
// the end of inserted text for an insert, End for a delete.
func (c Command) EndPosition() Position {
	if c.Kind == KindInsert {
		return buffer.EndOfInsertion(c.Start, c.Text)
	}
	return c.End
}

// String returns a human-readable description of the command.
func (c Command) String() string {
	switch c.Kind {
	case KindInsert:
		if c.Text == "\n" {
			return "Insert newline"
		}
		if utf8.RuneCountInString(c.Text) == 1 {
			return fmt.Sprintf("Type %q", c.Text)
		}
		return fmt.Sprintf("Insert %d characters", utf8.RuneCountInString(c.Text))
	case KindDelete:
		return fmt.Sprintf("Delete %d characters", utf8.RuneCountInString(c.Removed))
	default:
		return "unknown command"
	}
}
