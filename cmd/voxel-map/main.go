package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/voxel-map/config"
	"github.com/lixenwraith/voxel-map/engine"
	"github.com/lixenwraith/voxel-map/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log, logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the crash
	crash := func(where string, r any) {
		screen.Fini()
		log.Error().Interface("panic", r).Str("where", where).Msg("crashed")
		fmt.Fprintf(os.Stderr, "\n\x1b[31mVOXEL-MAP %s CRASHED: %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash("EDITOR", r)
		}
	}()
	defer screen.Fini()

	editor, err := engine.New(cfg, screen, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "editor: %v\n", err)
		os.Exit(1)
	}
	if err := editor.StartAudio(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without cues")
	}
	defer editor.Close()

	run(editor, screen, cfg, crash)
	log.Info().Msg("exit")
}

// run owns the editor from the main goroutine; the poller only forwards events
func run(editor *engine.Editor, screen tcell.Screen, cfg config.Config, crash func(string, any)) {
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	tickTicker := time.NewTicker(cfg.Render.Tick)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(cfg.Render.Frame)
	defer frameTicker.Stop()

	last := time.Now()
	editor.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			if !editor.HandleEvent(ev) {
				return
			}

		case now := <-tickTicker.C:
			editor.Tick(now.Sub(last))
			last = now
			if editor.Quit() {
				return
			}

		case <-frameTicker.C:
			editor.Draw()
		}
	}
}
