package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editcore/internal/clipboard"
	"github.com/dshills/editcore/internal/config"
	"github.com/dshills/editcore/internal/engine"
	"github.com/dshills/editcore/internal/engine/highlight"
)

// mode is the input mode of the frontend.
type mode int

const (
	modeEdit mode = iota
	modeFind
)

// app wires the engine to a tcell screen. The event loop is the single
// goroutine that touches the engine; highlight results and config
// reloads re-enter through channels.
type app struct {
	screen tcell.Screen
	eng    *engine.Engine
	svc    *highlight.Service

	filePath string

	watcher  *config.Watcher
	reloadCh chan config.Config

	mode      mode
	findQuery []rune

	status string
}

func newApp(configPath, filePath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var content string
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("opening %s: %w", filePath, err)
		}
		content = string(data)
	}

	var clip clipboard.Clipboard
	if sys, err := clipboard.NewSystem(); err == nil {
		clip = sys
	} else {
		clip = clipboard.NewMemory()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnablePaste()

	width, height := screen.Size()
	a := &app{
		screen:   screen,
		filePath: filePath,
		svc:      highlight.NewService(highlight.DefaultRegistry()),
		reloadCh: make(chan config.Config, 1),
		eng: engine.New(
			engine.WithContent(content),
			engine.WithConfig(cfg),
			engine.WithClipboard(clip),
			engine.WithViewportSize(width, height-1),
			engine.WithLanguage(languageForFile(filePath, cfg.Language)),
		),
	}

	w, err := config.NewWatcher(configPath, func(cfg config.Config) {
		select {
		case a.reloadCh <- cfg:
		default:
		}
	})
	if err == nil {
		a.watcher = w
	}

	return a, nil
}

// Shutdown releases the terminal and background workers.
func (a *app) Shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	a.svc.Close()
	a.screen.Fini()
}

// Run drives the event loop until quit.
func (a *app) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	a.requestHighlight()
	a.draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			done, err := a.handleEvent(ev)
			if err != nil {
				a.status = err.Error()
			}
			if done {
				return nil
			}
			a.requestHighlight()
			a.draw()

		case res := <-a.svc.Results():
			if a.eng.ApplyHighlight(res) {
				a.draw()
			}

		case cfg := <-a.reloadCh:
			a.eng.ApplyConfig(cfg)
			a.status = "config reloaded"
			a.requestHighlight()
			a.draw()
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		width, height := ev.Size()
		a.eng.Resize(width, height-1)
		a.screen.Sync()
	case *tcell.EventKey:
		if a.mode == modeFind {
			return false, a.handleFindKey(ev)
		}
		return a.handleEditKey(ev)
	}
	return false, nil
}

func (a *app) handleEditKey(ev *tcell.EventKey) (bool, error) {
	extend := ev.Modifiers()&tcell.ModShift != 0
	a.status = ""

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true, nil
	case tcell.KeyCtrlS:
		return false, a.save()
	case tcell.KeyCtrlZ:
		return false, ignoreEmptyHistory(a.eng.Undo())
	case tcell.KeyCtrlY:
		return false, ignoreEmptyHistory(a.eng.Redo())
	case tcell.KeyCtrlA:
		a.eng.SelectAll()
	case tcell.KeyCtrlC:
		return false, a.eng.Copy()
	case tcell.KeyCtrlX:
		return false, a.eng.Cut()
	case tcell.KeyCtrlV:
		return false, a.eng.Paste()
	case tcell.KeyCtrlF:
		a.mode = modeFind
		a.findQuery = nil
	case tcell.KeyCtrlN:
		a.eng.FindNext()
	case tcell.KeyCtrlP:
		a.eng.FindPrev()
	case tcell.KeyLeft:
		a.eng.MoveCursor(engine.Left, extend)
	case tcell.KeyRight:
		a.eng.MoveCursor(engine.Right, extend)
	case tcell.KeyUp:
		a.eng.MoveCursor(engine.Up, extend)
	case tcell.KeyDown:
		a.eng.MoveCursor(engine.Down, extend)
	case tcell.KeyHome:
		a.eng.MoveCursor(engine.LineStart, extend)
	case tcell.KeyEnd:
		a.eng.MoveCursor(engine.LineEnd, extend)
	case tcell.KeyPgUp:
		a.eng.MoveCursor(engine.PageUp, extend)
	case tcell.KeyPgDn:
		a.eng.MoveCursor(engine.PageDown, extend)
	case tcell.KeyEnter:
		return false, a.eng.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return false, a.eng.Backspace()
	case tcell.KeyDelete:
		return false, a.eng.DeleteForward()
	case tcell.KeyEscape:
		a.eng.ClearSearch()
	case tcell.KeyRune:
		return false, a.eng.InsertRune(ev.Rune())
	}
	return false, nil
}

func (a *app) handleFindKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.mode = modeEdit
		a.findQuery = nil
	case tcell.KeyEnter:
		a.mode = modeEdit
		if !a.eng.Find(string(a.findQuery), true) {
			a.status = "no matches"
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.findQuery) > 0 {
			a.findQuery = a.findQuery[:len(a.findQuery)-1]
		}
	case tcell.KeyRune:
		a.findQuery = append(a.findQuery, ev.Rune())
	}
	return nil
}

// ignoreEmptyHistory drops the empty-stack sentinels so Ctrl+Z/Ctrl+Y
// on exhausted history stay silent instead of filling the status bar.
func ignoreEmptyHistory(err error) error {
	if errors.Is(err, engine.ErrNothingToUndo) || errors.Is(err, engine.ErrNothingToRedo) {
		return nil
	}
	return err
}

func (a *app) save() error {
	if a.filePath == "" {
		a.status = "no file to save"
		return nil
	}
	if err := os.WriteFile(a.filePath, []byte(a.eng.Text()), 0o644); err != nil {
		return err
	}
	a.eng.MarkSaved()
	a.status = "saved " + a.filePath
	return nil
}

func (a *app) requestHighlight() {
	a.svc.Submit(a.eng.HighlightRequest())
}

func languageForFile(path, fallback string) string {
	if filepath.Ext(path) == ".go" {
		return "go"
	}
	return fallback
}
