// Package buffer provides the line-structured text store at the core of
// the editing engine.
//
// A Buffer holds an ordered sequence of lines, each line an ordered
// sequence of Unicode scalar values. Columns are character offsets, never
// byte offsets, so multi-byte runes occupy a single column. The buffer
// always contains at least one line; an empty document is a single empty
// line.
//
// Positions passed to buffer operations must already satisfy the position
// invariant (0 <= line < LineCount, 0 <= column <= LineLen(line)). The
// buffer fails fast with ErrPositionOutOfRange rather than clamping,
// because an out-of-range position reaching this layer is a caller bug:
// external input is clamped by the cursor and viewport layers before it
// gets here.
//
// Every mutation returns enough information to reverse it exactly: Insert
// returns the end position of the inserted text, Delete returns the
// removed text. The history package builds its inverse-command contract
// on top of these guarantees.
//
// Buffer is not safe for concurrent use. The engine has exactly one
// mutator; asynchronous collaborators work from versioned snapshots and
// never touch the buffer directly.
package buffer
