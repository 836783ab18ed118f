// Package clipboard abstracts clipboard access behind a small
// interface so the engine can run against the system clipboard or an
// in-memory one for tests and headless environments.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the clipboard cannot be accessed.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes clipboard text. Implementations may fail
// at any time; callers decide how to degrade.
type Clipboard interface {
	// GetText returns the current clipboard contents.
	GetText() (string, error)

	// SetText replaces the clipboard contents.
	SetText(text string) error
}

// System is the OS clipboard.
type System struct{}

// NewSystem creates a system clipboard. It returns ErrUnavailable when
// no clipboard mechanism exists on this platform (e.g. a headless
// Linux session without xclip or xsel).
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

// GetText returns the OS clipboard contents.
func (s *System) GetText() (string, error) {
	return clipboard.ReadAll()
}

// SetText replaces the OS clipboard contents.
func (s *System) SetText(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard. It is safe for concurrent use and
// supports failure injection for testing degraded behavior.
type Memory struct {
	mu      sync.Mutex
	text    string
	failGet bool
	failSet bool
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// GetText returns the stored text, or ErrUnavailable if read failures
// are enabled.
func (m *Memory) GetText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return "", ErrUnavailable
	}
	return m.text, nil
}

// SetText stores text, or returns ErrUnavailable if write failures are
// enabled.
func (m *Memory) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return ErrUnavailable
	}
	m.text = text
	return nil
}

// FailReads toggles read failure injection.
func (m *Memory) FailReads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failGet = fail
}

// FailWrites toggles write failure injection.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSet = fail
}
