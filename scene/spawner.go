package scene

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/voxel-map/event"
	"github.com/lixenwraith/voxel-map/grid"
	"github.com/lixenwraith/voxel-map/status"
)

// Instance is one renderable tile
type Instance struct {
	Mesh      *Mesh
	Material  *Material
	Transform grid.Tile
}

// Map is the most recently materialized grid
type Map struct {
	RequestID  uuid.UUID
	Dimensions grid.Dimensions
}

// Spawner materializes generation requests into instances
type Spawner struct {
	assets    *Assets
	instances []Instance
	current   Map
	log       zerolog.Logger

	// OnMaterialized runs after every tile of a request has been spawned
	OnMaterialized func(req *event.GenerationRequest)

	statInstances    *atomic.Int64
	statMaterialized *atomic.Int64
}

// NewSpawner creates a spawner using the shared assets
func NewSpawner(assets *Assets, statusReg *status.Registry, log zerolog.Logger) *Spawner {
	return &Spawner{
		assets:           assets,
		log:              log.With().Str("component", "spawner").Logger(),
		statInstances:    statusReg.Ints.Get(status.Instances),
		statMaterialized: statusReg.Ints.Get(status.Materialized),
	}
}

// Consume spawns one instance per tile in request order and returns the count
func (s *Spawner) Consume(req *event.GenerationRequest) int {
	s.instances = s.instances[:0]
	for _, tile := range req.Tiles {
		s.instances = append(s.instances, Instance{
			Mesh:      s.assets.Mesh,
			Material:  s.assets.Material,
			Transform: tile,
		})
	}
	s.current = Map{RequestID: req.ID, Dimensions: req.Dimensions}

	n := len(s.instances)
	s.statInstances.Store(int64(n))
	s.statMaterialized.Add(1)
	s.log.Info().Str("request", req.ID.String()).Int("instances", n).Msg("map materialized")

	if s.OnMaterialized != nil {
		s.OnMaterialized(req)
	}
	return n
}

// Instances returns the spawned instances in spawn order; callers must not modify them
func (s *Spawner) Instances() []Instance {
	return s.instances
}

// Map returns the current map, zero before the first request
func (s *Spawner) Map() Map {
	return s.current
}

// Layer returns the instances with Z == z
// Instances are height-major so each layer is a contiguous run
func (s *Spawner) Layer(z int) []Instance {
	d := s.current.Dimensions
	if z < 0 || uint32(z) >= d.Height || len(s.instances) == 0 {
		return nil
	}
	size := int(d.Width) * int(d.Length)
	return s.instances[z*size : (z+1)*size]
}
