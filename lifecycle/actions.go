package lifecycle

import (
	"github.com/lixenwraith/voxel-map/asset"
	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/field"
	"github.com/lixenwraith/voxel-map/fsm"
)

func (s *Screens) actionBuildScreen(args fsm.ActionArgs) {
	switch args.Screen {
	case ScreenMainMenu:
		s.buildMainMenu()
	case ScreenOptions:
		s.buildOptions()
	default:
		s.log.Error().Str("screen", args.Screen).Msg("unknown screen")
	}
}

func (s *Screens) buildMainMenu() {
	root := s.arena.Canvas(asset.Title)
	start, _ := s.arena.Button(root, "Start", core.ActionStart)
	_, _ = s.arena.Button(root, "Settings", core.ActionSettings)
	_, _ = s.arena.Button(root, "Quit", core.ActionQuit)
	s.arena.SetFocus(start)
	s.root = root
	s.log.Debug().Str("root", root.String()).Msg("main menu built")
}

// buildOptions creates one input per dimension kind and registers each
// The registry is cleared first so revisits never accumulate entries
func (s *Screens) buildOptions() {
	s.registry.Clear()

	root := s.arena.Canvas("Options")
	_, _ = s.arena.Label(root, "Map dimensions")
	for _, kind := range field.Kinds {
		id, err := s.arena.TextInput(root, kind.String())
		if err != nil {
			s.log.Error().Err(err).Stringer("kind", kind).Msg("input create failed")
			continue
		}
		if err := s.registry.Register(id, kind); err != nil {
			s.log.Error().Err(err).Msg("field register failed")
			continue
		}
		s.inputs[kind] = id
	}
	_, _ = s.arena.Button(root, "Submit", core.ActionSubmit)
	_, _ = s.arena.Button(root, "Back", core.ActionBack)
	s.arena.SetFocus(s.inputs[field.KindWidth])
	s.root = root
	s.log.Debug().Str("root", root.String()).Int("fields", s.registry.Len()).Msg("options built")
}

// actionTeardown destroys the tracked canvas with all children and clears the registry
func (s *Screens) actionTeardown(fsm.ActionArgs) {
	if !s.root.IsZero() {
		if err := s.arena.Destroy(s.root); err != nil {
			s.log.Warn().Err(err).Msg("teardown of dead canvas")
		}
	}
	s.registry.Clear()
	s.root = core.NoWidget
	s.inputs = [len(field.Kinds) + 1]core.WidgetID{}
}

func (s *Screens) actionAnnounce(args fsm.ActionArgs) {
	s.log.Info().Stringer("event", args.Event).Msg("announce")
}

func (s *Screens) actionEnterEditor(fsm.ActionArgs) {
	if s.OnEnterEditor != nil {
		s.OnEnterEditor()
	}
}
