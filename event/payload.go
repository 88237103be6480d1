package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/grid"
)

// Submission carries the text of one input widget when the user submits it
// Producer: ui.Arena on Enter or Flush | Consumer: router.Router
type Submission struct {
	Widget core.WidgetID
	Text   string
}

// GenerationRequest announces a validated grid to every subscriber
// Producer: router.Router | Consumers: lifecycle, scene spawner, audio
// Shared by pointer across subscribers; treat as immutable after publish
type GenerationRequest struct {
	ID         uuid.UUID
	Dimensions grid.Dimensions
	Tiles      []grid.Tile
}

// NewGenerationRequest stamps a fresh request id onto the tile sequence
func NewGenerationRequest(d grid.Dimensions, tiles []grid.Tile) *GenerationRequest {
	return &GenerationRequest{
		ID:         uuid.New(),
		Dimensions: d,
		Tiles:      tiles,
	}
}

// Magnitude returns the tile count
func (r *GenerationRequest) Magnitude() int {
	return len(r.Tiles)
}

// ButtonPress reports activation of a button widget
// Producer: ui.Arena | Consumer: engine, mapped to state machine events
type ButtonPress struct {
	Widget core.WidgetID
	Action core.ButtonAction
}
