package scene

import "github.com/gdamore/tcell/v2"

// Camera is the view over the materialized map
// Offset pans the layer view in tile units; Layer selects the visible Z slice
type Camera struct {
	OffsetX, OffsetY int
	Layer            int
	maxLayer         int
}

// Fit resets the camera for a map of the given height
func (c *Camera) Fit(height uint32) {
	c.OffsetX, c.OffsetY = 0, 0
	c.Layer = 0
	c.maxLayer = int(height) - 1
	if c.maxLayer < 0 {
		c.maxLayer = 0
	}
}

// Pan shifts the view
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// Scroll pans by a wheel delta; vertical wheel moves along Y, horizontal along X
func (c *Camera) Scroll(dx, dy int) {
	c.Pan(dx, dy)
}

// LayerUp selects the next layer, clamped to the map height
func (c *Camera) LayerUp() {
	if c.Layer < c.maxLayer {
		c.Layer++
	}
}

// LayerDown selects the previous layer, clamped at 0
func (c *Camera) LayerDown() {
	if c.Layer > 0 {
		c.Layer--
	}
}

// HandleKey applies navigation keys, returns true if consumed
func (c *Camera) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		c.Pan(-1, 0)
	case tcell.KeyRight:
		c.Pan(1, 0)
	case tcell.KeyUp:
		c.Pan(0, -1)
	case tcell.KeyDown:
		c.Pan(0, 1)
	case tcell.KeyPgUp:
		c.LayerUp()
	case tcell.KeyPgDn:
		c.LayerDown()
	case tcell.KeyHome:
		c.OffsetX, c.OffsetY = 0, 0
	default:
		return false
	}
	return true
}

// HandleMouse pans on wheel events, returns true if consumed
func (c *Camera) HandleMouse(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		c.Scroll(0, -1)
	case buttons&tcell.WheelDown != 0:
		c.Scroll(0, 1)
	case buttons&tcell.WheelLeft != 0:
		c.Scroll(-1, 0)
	case buttons&tcell.WheelRight != 0:
		c.Scroll(1, 0)
	default:
		return false
	}
	return true
}
