// Package engine is the facade over the editing core. It owns one
// document: the text buffer, the cursor and selection, undo/redo
// history, the viewport, search state, and the highlight span index.
//
// Frontends drive the engine through intent methods (InsertRune,
// MoveCursor, Paste, Undo, ...) and read back an immutable Snapshot for
// rendering. The engine is deliberately single-threaded: a frontend
// calls it from one goroutine, and asynchronous work (syntax
// highlighting) re-enters through versioned results that are discarded
// when stale.
package engine
