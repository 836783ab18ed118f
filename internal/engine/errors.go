package engine

import (
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/history"
)

// Re-export the sentinel errors callers are expected to check for.
var (
	// ErrNothingToUndo is returned by Undo on an empty undo stack.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo is returned by Redo on an empty redo stack.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrInvalidEncoding is returned when inserted text is not valid
	// UTF-8.
	ErrInvalidEncoding = buffer.ErrInvalidEncoding
)
