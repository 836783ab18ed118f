// Package history provides reversible edit commands and the undo/redo
// stacks that group them.
//
// Every content mutation is described by exactly one Command before it is
// applied. A delete captures the removed text eagerly, so the inverse of
// any command is self-contained: applying a command and then its inverse
// reproduces identical buffer content.
//
// Commands are grouped into atomic undo units. Consecutive single-rune
// inserts merge into the open group while they remain adjacent
// (uninterrupted typing); a delete, a multi-character insert, a newline,
// navigation, or undo/redo closes the group. Each group records the
// selection state from before it began, which undo restores.
//
// The stacks are depth-bounded; the oldest group is evicted when a new
// group would exceed the configured maximum. Any recorded edit that is
// not itself an undo or redo clears the redo stack.
package history
