package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordcosmo/engine"
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// WordColor classifies a word by dust ratio, speed, then visible mass
func WordColor(w *engine.WordSnapshot) engine.ColorID {
	dustRatio := 0.0
	if w.MassTotal > 0 {
		dustRatio = math.Min(w.MassDust/w.MassTotal, 1)
	}
	switch {
	case dustRatio > parameter.ColorDustRatio:
		return engine.ColorGray
	case vmath.V2Mag(w.Vel) > parameter.ColorFastSpeed:
		return engine.ColorCyan
	case w.MassVisible > parameter.ColorHeavyMass:
		return engine.ColorYellow
	case w.MassVisible > parameter.ColorMediumMass:
		return engine.ColorMagenta
	case w.MassVisible > parameter.ColorLightMass:
		return engine.ColorBlue
	default:
		return engine.ColorWhite
	}
}

// Palette resolves palette slots to terminal colours
type Palette [engine.ColorSpark + 1]tcell.Color

// DefaultPalette uses the 16 ANSI colours so it works on any terminal
var DefaultPalette = Palette{
	engine.ColorWhite:   tcell.ColorWhite,
	engine.ColorCyan:    tcell.ColorAqua,
	engine.ColorBlue:    tcell.ColorBlue,
	engine.ColorYellow:  tcell.ColorYellow,
	engine.ColorMagenta: tcell.ColorFuchsia,
	engine.ColorRed:     tcell.ColorRed,
	engine.ColorGray:    tcell.ColorGray,
	engine.ColorTrail:   tcell.ColorGray,
	engine.ColorSpark:   tcell.ColorLightYellow,
}

// TrueColorPalette is used when the terminal reports 24-bit support
var TrueColorPalette = Palette{
	engine.ColorWhite:   tcell.NewRGBColor(230, 230, 230),
	engine.ColorCyan:    tcell.NewRGBColor(80, 220, 255),
	engine.ColorBlue:    tcell.NewRGBColor(90, 140, 255),
	engine.ColorYellow:  tcell.NewRGBColor(255, 215, 60),
	engine.ColorMagenta: tcell.NewRGBColor(230, 90, 230),
	engine.ColorRed:     tcell.NewRGBColor(255, 70, 70),
	engine.ColorGray:    tcell.NewRGBColor(120, 120, 120),
	engine.ColorTrail:   tcell.NewRGBColor(80, 80, 90),
	engine.ColorSpark:   tcell.NewRGBColor(255, 250, 170),
}

// Color returns the terminal colour for id, white for unknown slots
func (p *Palette) Color(id engine.ColorID) tcell.Color {
	if int(id) >= len(p) {
		return tcell.ColorWhite
	}
	return p[id]
}

// PaletteFor picks a palette by mode: "truecolor", "ansi" or "auto"
func PaletteFor(mode string, colors int) *Palette {
	switch mode {
	case "truecolor":
		return &TrueColorPalette
	case "ansi":
		return &DefaultPalette
	}
	if colors >= 1<<24 {
		return &TrueColorPalette
	}
	return &DefaultPalette
}
