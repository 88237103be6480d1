package lifecycle

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/voxel-map/asset"
	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/event"
	"github.com/lixenwraith/voxel-map/field"
	"github.com/lixenwraith/voxel-map/fsm"
	"github.com/lixenwraith/voxel-map/status"
	"github.com/lixenwraith/voxel-map/ui"
)

// Screen names used by BuildScreen actions in the state graph
const (
	ScreenMainMenu = "MainMenu"
	ScreenOptions  = "Options"
)

// Screens drives menu navigation and the application phase
// Builds and tears down canvases on state entry/exit and keeps the field registry in step with the options screen
type Screens struct {
	arena    *ui.Arena
	registry *field.Registry
	machine  *fsm.Machine[*Screens]
	log      zerolog.Logger

	// Canvas root of the current menu screen, NoWidget outside menus
	root   core.WidgetID
	inputs [len(field.Kinds) + 1]core.WidgetID

	// OnEnterEditor runs when the editor state is entered
	OnEnterEditor func()

	statAppState  *status.AtomicString
	statMenuState *status.AtomicString
}

// New creates the lifecycle with the default state graph
func New(arena *ui.Arena, registry *field.Registry, statusReg *status.Registry, log zerolog.Logger) (*Screens, error) {
	return NewWithGraph(arena, registry, statusReg, log, []byte(asset.DefaultEditorFSM))
}

// NewWithGraph creates the lifecycle from a TOML state graph
func NewWithGraph(arena *ui.Arena, registry *field.Registry, statusReg *status.Registry, log zerolog.Logger, graph []byte) (*Screens, error) {
	s := &Screens{
		arena:         arena,
		registry:      registry,
		machine:       fsm.NewMachine[*Screens](),
		log:           log.With().Str("component", "lifecycle").Logger(),
		statAppState:  statusReg.Strings.Get(status.AppState),
		statMenuState: statusReg.Strings.Get(status.MenuState),
	}

	s.machine.RegisterAction("BuildScreen", (*Screens).actionBuildScreen)
	s.machine.RegisterAction("TeardownScreen", (*Screens).actionTeardown)
	s.machine.RegisterAction("Announce", (*Screens).actionAnnounce)
	s.machine.RegisterAction("EnterEditor", (*Screens).actionEnterEditor)
	s.machine.OnTransition = func(from, to string) {
		s.log.Info().Str("from", from).Str("to", to).Msg("state transition")
		s.publishState()
	}

	if err := s.machine.LoadConfig(graph); err != nil {
		return nil, fmt.Errorf("load state graph: %w", err)
	}
	return s, nil
}

// Start enters the initial state
func (s *Screens) Start() error {
	if err := s.machine.Init(s); err != nil {
		return err
	}
	s.publishState()
	return nil
}

// Fire offers ev to the state graph; returns true if it caused a transition
func (s *Screens) Fire(ev event.EventType) bool {
	handled := s.machine.HandleEvent(s, ev)
	if !handled {
		s.log.Debug().Stringer("event", ev).Str("state", s.machine.ActiveState()).Msg("event ignored")
	}
	return handled
}

// OnGenerationRequest moves the application from Menu to Generating
// Returns false for requests arriving after the menu was left; those must not be materialized
// Tiles are left to the scene layer, which consumes the same request
func (s *Screens) OnGenerationRequest(req *event.GenerationRequest) bool {
	from := s.AppState()
	if !s.Fire(event.EventGenerationRequested) {
		s.log.Warn().Str("request", req.ID.String()).Stringer("state", from).Msg("generation request outside menu")
		return false
	}
	s.log.Info().
		Str("request", req.ID.String()).
		Stringer("from", from).
		Stringer("to", s.AppState()).
		Msg("generation started")
	return true
}

// HandlePress maps a button action onto navigation
// Returns true if the action asks the application to quit
func (s *Screens) HandlePress(p event.ButtonPress) (quit bool) {
	switch p.Action {
	case core.ActionStart:
		s.Fire(event.EventStartPressed)
	case core.ActionSettings:
		s.Fire(event.EventSettingsPressed)
	case core.ActionBack:
		s.Fire(event.EventBackPressed)
	case core.ActionSubmit:
		n := s.arena.Flush()
		s.log.Debug().Int("fields", n).Msg("submit flushed")
	case core.ActionQuit:
		return true
	}
	return false
}

// Update advances the state graph clock and evaluates Tick transitions
func (s *Screens) Update(dt time.Duration) {
	s.machine.Update(s, dt)
}

// AppState derives the application phase from the active state path
func (s *Screens) AppState() core.AppState {
	switch {
	case s.machine.InState("Menu"):
		return core.StateMenu
	case s.machine.InState("Generating"):
		return core.StateGenerating
	case s.machine.InState("InApp"):
		return core.StateInApp
	default:
		return core.StateLoading
	}
}

// MenuState derives the menu sub-state, MenuNone outside the menu
func (s *Screens) MenuState() core.MenuState {
	switch {
	case s.machine.InState(ScreenMainMenu):
		return core.MenuMain
	case s.machine.InState(ScreenOptions):
		return core.MenuOptions
	default:
		return core.MenuNone
	}
}

// ActiveState returns the leaf state name
func (s *Screens) ActiveState() string {
	return s.machine.ActiveState()
}

// Root returns the canvas root of the current menu screen
func (s *Screens) Root() core.WidgetID {
	return s.root
}

// Input returns the widget bound to kind on the options screen
func (s *Screens) Input(kind field.Kind) core.WidgetID {
	if !kind.Valid() {
		return core.NoWidget
	}
	return s.inputs[kind]
}

func (s *Screens) publishState() {
	s.statAppState.Store(s.AppState().String())
	s.statMenuState.Store(s.MenuState().String())
}
