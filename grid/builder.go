package grid

// Build returns width*length*height tiles using width-based centering
// Order is height outermost, then length, then width innermost
func Build(width, length, height uint32) []Tile {
	return Builder{}.Build(Dimensions{Width: width, Length: length, Height: height})
}

// Builder generates tile sequences for a fixed centering mode
// Zero value centers with CenterWidth
type Builder struct {
	Center CenterMode
}

// Build returns the ordered tile sequence for d
// Any zero extent, or a tile count that overflows 64 bits, yields an empty, nil sequence
// Pure: identical inputs produce identical output
func (b Builder) Build(d Dimensions) []Tile {
	magnitude, ok := d.Magnitude()
	if d.IsEmpty() || !ok {
		return nil
	}

	halfX := float32(d.Width) / 2
	halfY := halfX
	if b.Center == CenterExtent {
		halfY = float32(d.Length) / 2
	}

	tiles := make([]Tile, 0, magnitude)
	for z := uint32(0); z < d.Height; z++ {
		for y := uint32(0); y < d.Length; y++ {
			for x := uint32(0); x < d.Width; x++ {
				tiles = append(tiles, Tile{
					X: float32(x) - halfX,
					Y: float32(y) - halfY,
					Z: float32(z),
				})
			}
		}
	}
	return tiles
}

// Index returns the position of grid cell (x, y, z) in a Build sequence
// Caller guarantees the cell lies inside d
func Index(d Dimensions, x, y, z uint32) int {
	return int((uint64(z)*uint64(d.Length)+uint64(y))*uint64(d.Width) + uint64(x))
}
