package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Blit copies fb to screen with its top-left at (x0, y0)
func Blit(screen tcell.Screen, fb *FrameBuffer, pal *Palette, x0, y0 int) {
	base := tcell.StyleDefault.Background(tcell.ColorReset)
	for y := range fb.Height() {
		for x := range fb.Width() {
			c := fb.cells[y*fb.width+x]
			screen.SetContent(x0+x, y0+y, c.Rune, nil, base.Foreground(pal.Color(c.Color)))
		}
	}
}

// DrawText writes s starting at (x, y), clipped at maxX; returns the column after the last cell written
func DrawText(screen tcell.Screen, x, y, maxX int, style tcell.Style, s string) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// FillRow blanks columns [x, maxX) of row y
func FillRow(screen tcell.Screen, x, y, maxX int, style tcell.Style) {
	for ; x < maxX; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
