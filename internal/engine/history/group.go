package history

import (
	"time"

	"github.com/dshills/editcore/internal/engine/cursor"
)

// Selection is an alias for cursor.Selection for convenience.
type Selection = cursor.Selection

// Group is a non-empty ordered sequence of commands applied as one
// atomic undo/redo unit, tagged with the selection state from before the
// group began.
type Group struct {
	Commands []Command
	Before   Selection // Selection at group open, restored by undo
	openedAt time.Time
}

// newGroup creates a group opened now with the given pre-group
// selection.
func newGroup(before Selection) *Group {
	return &Group{Before: before, openedAt: time.Now()}
}

// append adds a command to the group.
func (g *Group) append(cmd Command) {
	g.Commands = append(g.Commands, cmd)
}

// IsEmpty returns true if the group holds no commands.
func (g *Group) IsEmpty() bool {
	return len(g.Commands) == 0
}

// Last returns the most recently appended command. Valid only for a
// non-empty group.
func (g *Group) Last() Command {
	return g.Commands[len(g.Commands)-1]
}

// OpenedAt returns when the group was opened.
func (g *Group) OpenedAt() time.Time {
	return g.openedAt
}
