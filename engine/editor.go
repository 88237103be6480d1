package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/voxel-map/audio"
	"github.com/lixenwraith/voxel-map/config"
	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/event"
	"github.com/lixenwraith/voxel-map/field"
	"github.com/lixenwraith/voxel-map/grid"
	"github.com/lixenwraith/voxel-map/lifecycle"
	"github.com/lixenwraith/voxel-map/render"
	"github.com/lixenwraith/voxel-map/router"
	"github.com/lixenwraith/voxel-map/scene"
	"github.com/lixenwraith/voxel-map/status"
	"github.com/lixenwraith/voxel-map/ui"
)

// Queue capacities sized for a burst of keystrokes between ticks
const (
	submissionQueueCap = 16
	pressQueueCap      = 8
)

// Editor holds all editor state and runs the tick phases
type Editor struct {
	// ===== Immutable After Init =====
	Config   config.Config
	Status   *status.Registry
	Registry *field.Registry
	Arena    *ui.Arena
	Router   *router.Router
	Screens  *lifecycle.Screens
	Spawner  *scene.Spawner
	Camera   *scene.Camera
	Audio    *audio.Player
	Renderer *render.Renderer

	submissions *event.Queue[event.Submission]
	presses     *event.Queue[event.ButtonPress]
	requests    *event.Broadcast[*event.GenerationRequest]
	log         zerolog.Logger

	// ===== Main-Loop Exclusive =====
	quit    bool
	message string
	// Request the lifecycle accepted; later requests in the same dispatch are not materialized
	accepted *event.GenerationRequest

	statTicks *atomic.Int64
	statLayer *atomic.Int64
	statCues  *atomic.Int64
	statAudio *atomic.Bool
}

// New wires every subsystem onto screen and enters the initial state
// Audio output is not opened; call StartAudio from the host
func New(cfg config.Config, screen tcell.Screen, log zerolog.Logger) (*Editor, error) {
	e := &Editor{
		Config:      cfg,
		Status:      status.NewRegistry(),
		Registry:    field.NewRegistry(),
		Camera:      &scene.Camera{},
		submissions: event.NewQueue[event.Submission](submissionQueueCap),
		presses:     event.NewQueue[event.ButtonPress](pressQueueCap),
		requests:    event.NewBroadcast[*event.GenerationRequest](),
		log:         log.With().Str("component", "editor").Logger(),
	}
	e.statTicks = e.Status.Ints.Get(status.Ticks)
	e.statLayer = e.Status.Ints.Get(status.Layer)
	e.statCues = e.Status.Ints.Get(status.Cues)
	e.statAudio = e.Status.Bools.Get(status.AudioEnabled)

	e.Arena = ui.NewArena(e.submissions, e.presses)

	e.Router = router.New(e.Registry, grid.Builder{Center: cfg.CenterMode()}, e.requests, e.Status, log)
	e.Router.Strict = cfg.Debug
	e.Router.OnReject = e.onReject

	screens, err := lifecycle.New(e.Arena, e.Registry, e.Status, log)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: %w", err)
	}
	e.Screens = screens
	e.Screens.OnEnterEditor = func() {
		e.message = fmt.Sprintf("map %s ready", e.Spawner.Map().Dimensions)
	}

	e.Spawner = scene.NewSpawner(scene.LoadAssets(cfg.TileGlyph()), e.Status, log)
	e.Spawner.OnMaterialized = e.onMaterialized

	e.Audio = audio.NewPlayer(cfg.Audio.Enabled, cfg.Audio.Volume, log)

	// Subscriber order is dispatch order; lifecycle decides which request the others see
	e.requests.Subscribe("lifecycle", e.onGenerationRequest)
	e.requests.Subscribe("spawner", func(req *event.GenerationRequest) {
		if e.isAccepted(req) {
			e.Spawner.Consume(req)
		}
	})
	e.requests.Subscribe("audio", func(req *event.GenerationRequest) {
		if e.isAccepted(req) {
			e.playCue(audio.CueGenerate)
		}
	})

	if screen != nil {
		e.Renderer = render.NewRenderer(screen, e.Arena, e.Spawner, e.Camera, e.Status)
	}

	if err := e.Screens.Start(); err != nil {
		return nil, fmt.Errorf("start lifecycle: %w", err)
	}
	e.log.Info().
		Strs("subscribers", e.requests.Subscribers()).
		Str("center", cfg.Grid.Center).
		Bool("strict", cfg.Debug).
		Msg("editor initialized")
	return e, nil
}

// StartAudio opens the speaker; failure leaves the editor silent
func (e *Editor) StartAudio() error {
	err := e.Audio.Init()
	e.statAudio.Store(e.Audio.Enabled())
	return err
}

// Close releases audio output
func (e *Editor) Close() {
	e.Audio.Close()
}

// Tick runs one editor step
// Phase order: button presses, submission routing, request dispatch, state clock
// The first tick leaves Loading for the main menu
func (e *Editor) Tick(dt time.Duration) {
	if e.Screens.AppState() == core.StateLoading {
		e.Screens.Fire(event.EventStartup)
	}

	for _, p := range e.presses.Drain() {
		if e.Screens.HandlePress(p) {
			e.log.Info().Msg("quit requested")
			e.quit = true
		}
	}

	e.Router.Drain(e.submissions)
	e.requests.Dispatch()
	e.Screens.Update(dt)

	e.statTicks.Add(1)
	e.statLayer.Store(int64(e.Camera.Layer))
}

// Draw renders the current frame; no-op without a screen
func (e *Editor) Draw() {
	if e.Renderer == nil {
		return
	}
	e.Renderer.Draw(render.Frame{
		App:     e.Screens.AppState(),
		Menu:    e.Screens.MenuState(),
		Message: e.message,
	})
}

// Quit reports whether the editor asked to exit
func (e *Editor) Quit() bool {
	return e.quit
}

// Message returns the status bar message
func (e *Editor) Message() string {
	return e.message
}

// Submissions exposes the inbound queue for hosts that inject text directly
func (e *Editor) Submissions() *event.Queue[event.Submission] {
	return e.submissions
}

func (e *Editor) onReject(sub event.Submission, err error) {
	e.message = fmt.Sprintf("rejected %s: %v", sub.Widget, err)
	e.playCue(audio.CueReject)
}

func (e *Editor) onGenerationRequest(req *event.GenerationRequest) {
	if e.Screens.OnGenerationRequest(req) {
		e.accepted = req
		return
	}
	e.log.Warn().
		Str("request", req.ID.String()).
		Stringer("dims", req.Dimensions).
		Msg("request dropped, map already chosen")
}

func (e *Editor) isAccepted(req *event.GenerationRequest) bool {
	return req != nil && req == e.accepted
}

func (e *Editor) onMaterialized(req *event.GenerationRequest) {
	e.Camera.Fit(req.Dimensions.Height)
	e.Screens.Fire(event.EventMapMaterialized)
}

func (e *Editor) playCue(c audio.Cue) {
	e.statCues.Add(1)
	e.Audio.Play(c)
}
