package history

import (
	"errors"

	"github.com/dshills/editcore/internal/engine/buffer"
)

// Common errors for history operations. Callers that want silent no-op
// semantics check for these and swallow them.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// unreachable marks a save point that can no longer be returned to.
const unreachable = -1

// History manages the undo and redo stacks of command groups.
type History struct {
	undo []*Group
	redo []*Group

	// open is the group still accepting typing merges, always the top
	// of the undo stack when non-nil.
	open *Group

	// compound collects commands between BeginGroup and EndGroup.
	compound *Group

	maxDepth int
	savedAt  int // undo depth at the last save point
}

// NewHistory creates a history bounded to maxDepth groups per stack.
func NewHistory(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = 1000
	}
	return &History{maxDepth: maxDepth}
}

// Record adds a command that has already been applied to the buffer.
// before is the selection state from before the command; it tags the
// group if this command opens one. Recording clears the redo stack.
//
// A single-rune insert merges into the open group when the group's last
// command is also a single-rune insert ending exactly where the new one
// starts. Everything else starts a fresh group, and only single-rune
// inserts leave their group open for future merges.
func (h *History) Record(cmd Command, before Selection) {
	h.redo = nil

	if h.compound != nil {
		h.compound.append(cmd)
		return
	}

	if h.open != nil && cmd.IsRuneInsert() {
		last := h.open.Last()
		if last.IsRuneInsert() && last.EndPosition() == cmd.Start {
			if h.savedAt == len(h.undo) {
				h.savedAt = unreachable
			}
			h.open.append(cmd)
			return
		}
	}

	g := newGroup(before)
	g.append(cmd)
	h.push(g)

	if cmd.IsRuneInsert() {
		h.open = g
	} else {
		h.open = nil
	}
}

// CloseGroup ends the open typing group. Navigation, undo/redo, and any
// non-edit intent call this so the next typed character starts a new
// undo unit.
func (h *History) CloseGroup() {
	h.open = nil
}

// BeginGroup starts collecting commands into one explicit undo unit,
// for operations that decompose into several commands (paste over a
// selection, replace-all). Nested calls are ignored.
func (h *History) BeginGroup(before Selection) {
	if h.compound != nil {
		return
	}
	h.open = nil
	h.compound = newGroup(before)
}

// EndGroup commits the explicit group. An empty group is discarded.
func (h *History) EndGroup() {
	g := h.compound
	h.compound = nil
	if g == nil || g.IsEmpty() {
		return
	}
	h.push(g)
}

// push appends a group to the undo stack, evicting the oldest group
// when at capacity.
func (h *History) push(g *Group) {
	if len(h.undo) < h.savedAt {
		// Edits diverged below the save point; it cannot be reached
		// again by undoing.
		h.savedAt = unreachable
	}

	h.undo = append(h.undo, g)

	if len(h.undo) > h.maxDepth {
		excess := len(h.undo) - h.maxDepth
		h.undo = h.undo[excess:]
		if h.savedAt != unreachable {
			h.savedAt -= excess
			if h.savedAt < 0 {
				h.savedAt = unreachable
			}
		}
	}
}

// Undo reverses the most recent group: each command's inverse is applied
// in reverse order, and the selection recorded at group-open time is
// returned for the caller to restore. The group moves to the redo stack.
func (h *History) Undo(buf *buffer.Buffer) (Selection, error) {
	h.open = nil

	if len(h.undo) == 0 {
		return Selection{}, ErrNothingToUndo
	}

	g := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	for i := len(g.Commands) - 1; i >= 0; i-- {
		if _, err := g.Commands[i].Invert().Apply(buf); err != nil {
			h.undo = append(h.undo, g)
			return Selection{}, err
		}
	}

	h.redo = append(h.redo, g)
	if len(h.redo) > h.maxDepth {
		h.redo = h.redo[1:]
	}
	return g.Before, nil
}

// Redo reapplies the most recently undone group in forward order and
// returns the post-apply cursor position of its last command. The group
// moves back to the undo stack; the redo stack is otherwise untouched.
func (h *History) Redo(buf *buffer.Buffer) (Position, error) {
	h.open = nil

	if len(h.redo) == 0 {
		return Position{}, ErrNothingToRedo
	}

	g := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	var pos Position
	for i, cmd := range g.Commands {
		p, err := cmd.Apply(buf)
		if err != nil {
			// Roll back the partially reapplied prefix.
			for j := i - 1; j >= 0; j-- {
				_, _ = g.Commands[j].Invert().Apply(buf)
			}
			h.redo = append(h.redo, g)
			return Position{}, err
		}
		pos = p
	}

	h.undo = append(h.undo, g)
	return pos, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the number of undo groups available.
func (h *History) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the number of redo groups available.
func (h *History) RedoCount() int {
	return len(h.redo)
}

// MaxDepth returns the configured depth bound.
func (h *History) MaxDepth() int {
	return h.maxDepth
}

// Clear removes all history and the save point.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.open = nil
	h.compound = nil
	h.savedAt = 0
}

// MarkSaved records the current position in history as the saved state.
func (h *History) MarkSaved() {
	h.savedAt = len(h.undo)
}

// IsModified returns true if the buffer has diverged from the last save
// point.
func (h *History) IsModified() bool {
	return h.savedAt != len(h.undo)
}
