package render

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/scene"
	"github.com/lixenwraith/voxel-map/status"
	"github.com/lixenwraith/voxel-map/ui"
)

// Frame is the per-frame view state supplied by the engine
type Frame struct {
	App     core.AppState
	Menu    core.MenuState
	Message string
}

// Renderer draws menus, the tile layer and the status bar onto a tcell screen
type Renderer struct {
	screen  tcell.Screen
	arena   *ui.Arena
	spawner *scene.Spawner
	camera  *scene.Camera

	statSubmissions *atomic.Int64
	statRejected    *atomic.Int64
	statRequests    *atomic.Int64
	statInstances   *atomic.Int64
	statTicks       *atomic.Int64
	statLastDims    *status.AtomicString
}

// NewRenderer binds a renderer to its screen and model
func NewRenderer(screen tcell.Screen, arena *ui.Arena, spawner *scene.Spawner, camera *scene.Camera, statusReg *status.Registry) *Renderer {
	return &Renderer{
		screen:          screen,
		arena:           arena,
		spawner:         spawner,
		camera:          camera,
		statSubmissions: statusReg.Ints.Get(status.Submissions),
		statRejected:    statusReg.Ints.Get(status.Rejected),
		statRequests:    statusReg.Ints.Get(status.Requests),
		statInstances:   statusReg.Ints.Get(status.Instances),
		statTicks:       statusReg.Ints.Get(status.Ticks),
		statLastDims:    statusReg.Strings.Get(status.LastDimensions),
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(f Frame) {
	s := r.screen
	s.SetStyle(styleBase)
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 1 {
		s.Show()
		return
	}

	switch f.App {
	case core.StateMenu:
		for _, root := range r.arena.Roots() {
			r.drawCanvas(root, w, h-1)
		}
	case core.StateGenerating:
		msg := "Generating map..."
		drawText(s, centerX(w, msg), (h-1)/2, w, msg, styleDim)
	case core.StateInApp:
		r.drawLayer(w, h-1)
	default:
		msg := "Loading..."
		drawText(s, centerX(w, msg), (h-1)/2, w, msg, styleDim)
	}

	r.drawStatusBar(f, w, h-1)
	s.Show()
}

// drawCanvas lays out a canvas' children as a centred vertical list below its title
func (r *Renderer) drawCanvas(id core.WidgetID, w, h int) {
	canvas, ok := r.arena.Get(id)
	if !ok {
		return
	}
	s := r.screen
	focus := r.arena.Focus()

	y := 2
	drawText(s, centerX(w, canvas.Label), y, w, canvas.Label, styleTitle)
	y += 2

	for _, childID := range canvas.Children {
		if y >= h {
			return
		}
		child, ok := r.arena.Get(childID)
		if !ok {
			continue
		}
		focused := childID == focus

		switch child.Kind {
		case core.WidgetLabel:
			drawText(s, centerX(w, child.Label), y, w, child.Label, styleDim)
		case core.WidgetButton:
			caption := "[ " + child.Label + " ]"
			style := styleButton
			if focused {
				style = styleButtonFocus
			}
			drawText(s, centerX(w, caption), y, w, caption, style)
		case core.WidgetTextInput:
			r.drawInput(child, focused, w, y)
		case core.WidgetCanvas:
			r.drawCanvas(childID, w, h)
		}
		y += 2
	}
}

// drawInput renders "Prompt: [value___]" with a cursor cell when focused
func (r *Renderer) drawInput(wd *ui.Widget, focused bool, w, y int) {
	s := r.screen
	boxW := wd.Field.MaxLen
	if boxW <= 0 {
		boxW = 9
	}
	prompt := fmt.Sprintf("%-7s", wd.Label+":")
	total := len(prompt) + 1 + boxW
	x := (w - total) / 2
	if x < 0 {
		x = 0
	}

	x = drawText(s, x, y, w, prompt, styleBase) + 1
	style := styleInput
	if focused {
		style = styleInputFocus
	}
	for i := 0; i < boxW && x+i < w; i++ {
		ch := ' '
		if i < len(wd.Field.Text) {
			ch = wd.Field.Text[i]
		}
		cellStyle := style
		if focused && i == wd.Field.Cursor {
			cellStyle = styleCursor
		}
		s.SetContent(x+i, y, ch, nil, cellStyle)
	}
}

// drawLayer draws the camera's Z layer top-down, one cell per tile, centred on screen
func (r *Renderer) drawLayer(w, h int) {
	s := r.screen
	cx, cy := w/2-r.camera.OffsetX, h/2-r.camera.OffsetY
	for _, inst := range r.spawner.Layer(r.camera.Layer) {
		x := cx + int(math.Floor(float64(inst.Transform.X)))
		y := cy + int(math.Floor(float64(inst.Transform.Y)))
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		s.SetContent(x, y, inst.Mesh.Glyph, nil, MaterialStyle(inst.Material))
	}
}

func (r *Renderer) drawStatusBar(f Frame, w, y int) {
	s := r.screen
	fillRow(s, y, w, styleStatus)

	state := f.App.String()
	if f.Menu != core.MenuNone {
		state += "/" + f.Menu.String()
	}
	parts := []string{
		state,
		fmt.Sprintf("sub %d rej %d req %d", r.statSubmissions.Load(), r.statRejected.Load(), r.statRequests.Load()),
	}
	if dims := r.statLastDims.Load(); dims != "" {
		parts = append(parts, dims)
	}
	if f.App == core.StateInApp {
		d := r.spawner.Map().Dimensions
		parts = append(parts, fmt.Sprintf("tiles %d z %d/%d", r.statInstances.Load(), r.camera.Layer, int(d.Height)-1))
	}
	if f.Message != "" {
		parts = append(parts, f.Message)
	}
	drawText(s, 1, y, w, strings.Join(parts, " | "), styleStatus)
}
