package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-map/scene"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Default foreground
	RgbTitle      = tcell.NewRGBColor(124, 144, 255) // Matches tile material
	RgbDim        = tcell.NewRGBColor(100, 100, 110) // Placeholders and hints

	RgbButtonBg      = tcell.NewRGBColor(50, 52, 70)
	RgbButtonFocusBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbInputBg       = tcell.NewRGBColor(30, 30, 40)
	RgbInputFocusBg  = tcell.NewRGBColor(60, 60, 80)
	RgbCursorBg      = tcell.NewRGBColor(200, 200, 200)

	RgbStatusBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
)

var (
	styleBase        = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	styleTitle       = styleBase.Foreground(RgbTitle).Bold(true)
	styleDim         = styleBase.Foreground(RgbDim)
	styleButton      = tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbText)
	styleButtonFocus = tcell.StyleDefault.Background(RgbButtonFocusBg).Foreground(RgbStatusText).Bold(true)
	styleInput       = tcell.StyleDefault.Background(RgbInputBg).Foreground(RgbText)
	styleInputFocus  = tcell.StyleDefault.Background(RgbInputFocusBg).Foreground(RgbText)
	styleCursor      = tcell.StyleDefault.Background(RgbCursorBg).Foreground(RgbStatusText)
	styleStatus      = tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
)

// MaterialStyle returns the tile style for a material over the base background
func MaterialStyle(m *scene.Material) tcell.Style {
	return styleBase.Foreground(tcell.NewRGBColor(int32(m.R), int32(m.G), int32(m.B)))
}
