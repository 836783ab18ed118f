package engine

import (
	"github.com/dshills/editcore/internal/clipboard"
	"github.com/dshills/editcore/internal/config"
)

// Default configuration values.
const (
	DefaultUndoDepth      = 1000
	DefaultViewportWidth  = 80
	DefaultViewportHeight = 24
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial document content.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithClipboard sets the clipboard implementation. Defaults to an
// in-memory clipboard.
func WithClipboard(clip clipboard.Clipboard) Option {
	return func(e *Engine) {
		if clip != nil {
			e.clip = clip
		}
	}
}

// WithUndoDepth bounds the undo and redo stacks.
func WithUndoDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.undoDepth = depth
		}
	}
}

// WithLanguage sets the language identifier used for highlight
// requests.
func WithLanguage(language string) Option {
	return func(e *Engine) {
		if language != "" {
			e.language = language
		}
	}
}

// WithViewportSize sets the initial viewport dimensions in cells.
func WithViewportSize(width, height int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.viewWidth = width
		}
		if height > 0 {
			e.viewHeight = height
		}
	}
}

// WithScrollMargins keeps the cursor the given number of rows and
// columns away from the viewport edges.
func WithScrollMargins(rows, cols int) Option {
	return func(e *Engine) {
		if rows >= 0 {
			e.marginRows = rows
		}
		if cols >= 0 {
			e.marginCols = cols
		}
	}
}

// WithConfig applies the loaded configuration's engine settings.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		WithUndoDepth(cfg.UndoDepth)(e)
		WithScrollMargins(cfg.ScrollMarginRows, cfg.ScrollMarginCols)(e)
		WithLanguage(cfg.Language)(e)
	}
}
