package scene

import "github.com/lixenwraith/voxel-map/asset"

// Mesh is a loaded tile shape
type Mesh struct {
	Path  string
	Glyph rune
}

// Material is a flat tile colour
type Material struct {
	R, G, B uint8
}

// Assets holds the handles shared by every spawned instance
type Assets struct {
	Mesh     *Mesh
	Material *Material
}

// LoadAssets creates the shared mesh and material; glyph 0 selects the default
func LoadAssets(glyph rune) *Assets {
	if glyph == 0 {
		glyph = asset.TileGlyph
	}
	return &Assets{
		Mesh:     &Mesh{Path: asset.TileMeshPath, Glyph: glyph},
		Material: &Material{R: asset.TileColor[0], G: asset.TileColor[1], B: asset.TileColor[2]},
	}
}
