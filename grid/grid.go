package grid

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrMagnitudeOverflow is returned when width*length*height does not fit in 64 bits
var ErrMagnitudeOverflow = errors.New("tile count overflows 64 bits")

// Dimensions is an immutable width/length/height triple in tiles
type Dimensions struct {
	Width  uint32
	Length uint32
	Height uint32
}

// Magnitude returns the tile count width*length*height
// ok is false when the product exceeds 64 bits; the count is then meaningless
func (d Dimensions) Magnitude() (n uint64, ok bool) {
	hi, area := bits.Mul64(uint64(d.Width), uint64(d.Length))
	if hi != 0 {
		return 0, false
	}
	hi, n = bits.Mul64(area, uint64(d.Height))
	return n, hi == 0
}

// Check reports ErrMagnitudeOverflow for grids whose tile count cannot be represented
func (d Dimensions) Check() error {
	if _, ok := d.Magnitude(); !ok {
		return fmt.Errorf("dimensions %s: %w", d, ErrMagnitudeOverflow)
	}
	return nil
}

// IsEmpty reports whether any extent is zero
func (d Dimensions) IsEmpty() bool {
	return d.Width == 0 || d.Length == 0 || d.Height == 0
}

// String formats as WxLxH
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Width, d.Length, d.Height)
}

// Tile is one grid cell position in world units
type Tile struct {
	X, Y, Z float32
}

// CenterMode selects which extent centres the Y axis
type CenterMode uint8

const (
	// CenterWidth offsets both X and Y by width/2
	CenterWidth CenterMode = iota
	// CenterExtent offsets X by width/2 and Y by length/2
	CenterExtent
)

// String returns the config spelling of the mode
func (m CenterMode) String() string {
	switch m {
	case CenterWidth:
		return "width"
	case CenterExtent:
		return "extent"
	default:
		return "unknown"
	}
}

// ParseCenterMode accepts "width" or "extent"
func ParseCenterMode(s string) (CenterMode, error) {
	switch s {
	case "width", "":
		return CenterWidth, nil
	case "extent":
		return CenterExtent, nil
	default:
		return CenterWidth, fmt.Errorf("unknown center mode %q (want width or extent)", s)
	}
}
