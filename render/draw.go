package render

import (
	"github.com/lixenwraith/wordcosmo/engine"
	"github.com/lixenwraith/wordcosmo/parameter"
)

// Draw rasterizes trails, then words, then effects into fb
// The focused word renders red; heavier words win contested cells, effects win all
func Draw(fb *FrameBuffer, cam Camera, words []engine.WordSnapshot, effects []engine.Effect, focus engine.WordID) {
	fb.Clear()
	w, h := fb.Width(), fb.Height()

	for i := range words {
		drawTrail(fb, cam, &words[i])
	}

	for i := range words {
		ws := &words[i]
		sx, sy := cam.ToScreen(ws.Pos, w, h)
		if sy < 0 || sy >= h {
			continue
		}
		color := WordColor(ws)
		if focus != 0 && ws.ID == focus {
			color = engine.ColorRed
		}

		runes := []rune(engine.DisplayText(ws.Text))
		// A cut just after a separator would leave a dangling dash
		if ws.Truncated && len(runes) > 0 && string(runes[len(runes)-1]) == parameter.DisplaySeparator {
			runes = runes[:len(runes)-1]
		}
		for i, r := range runes {
			fb.Set(sx+i, sy, r, ws.MassVisible, color)
		}
	}

	for i := range effects {
		e := &effects[i]
		sx, sy := cam.ToScreen(e.Pos, w, h)
		fb.Set(sx, sy, e.Glyph, parameter.EffectDrawPriority, e.Color)
	}
}

// drawTrail walks the raw ring newest first, fading priority with age
func drawTrail(fb *FrameBuffer, cam Camera, ws *engine.WordSnapshot) {
	n := min(ws.TrailLen, len(ws.Trail))
	if n == 0 {
		return
	}
	w, h := fb.Width(), fb.Height()
	for i := range n {
		idx := (ws.TrailHead - i + len(ws.Trail)) % len(ws.Trail)
		sx, sy := cam.ToScreen(ws.Trail[idx], w, h)
		age := float64(i) / float64(n)
		glyph := parameter.TrailGlyphOld
		if age < parameter.TrailFreshAge {
			glyph = parameter.TrailGlyphFresh
		}
		mass := ws.MassVisible * parameter.TrailMassFactor * (1 - age)
		fb.Set(sx, sy, glyph, mass, engine.ColorTrail)
	}
}
