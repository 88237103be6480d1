package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/event"
)

// HandleEvent routes one terminal event by application phase
// Returns false when the editor should exit
func (e *Editor) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKey(ev)
	case *tcell.EventMouse:
		if e.Screens.AppState() == core.StateInApp {
			e.Camera.HandleMouse(ev)
		}
	}
	return !e.quit
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		e.quit = true
		return
	}

	switch e.Screens.AppState() {
	case core.StateMenu:
		if ev.Key() == tcell.KeyEscape {
			// Escape backs out of options, quits from the main menu
			if e.Screens.MenuState() == core.MenuOptions {
				e.Screens.Fire(event.EventBackPressed)
			} else {
				e.quit = true
			}
			return
		}
		e.Arena.HandleKey(ev)

	case core.StateInApp:
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			e.quit = true
			return
		}
		e.Camera.HandleKey(ev)
	}
}
