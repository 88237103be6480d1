package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s from (x, y), clipped at maxX; returns the column after the last cell
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// centerX returns the column that centres text in a screen of width w
func centerX(w int, text string) int {
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// fillRow paints row y with style
func fillRow(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
