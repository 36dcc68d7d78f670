package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/game"
)

// Pad colors at full brightness
var padBright = [4]core.RGB{
	game.Green:  {R: 40, G: 230, B: 80},
	game.Red:    {R: 255, G: 60, B: 60},
	game.Yellow: {R: 255, G: 230, B: 40},
	game.Blue:   {R: 70, G: 140, B: 255},
}

// dimFactor is the brightness an idle pad keeps
const dimFactor = 0.35

var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbDisplayBg   = tcell.NewRGBColor(10, 10, 10)    // Near-black LED panel
	RgbDisplayText = tcell.NewRGBColor(255, 50, 50)   // Red LED digits
	RgbLightOff    = tcell.NewRGBColor(70, 70, 70)    // Unlit indicator
	RgbPowerOn     = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbStrictOn    = tcell.NewRGBColor(255, 200, 0)   // Amber
	RgbText        = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbPadLabel    = tcell.NewRGBColor(0, 0, 0)       // Dark text on pads
)

// PadBright returns the lit color of a pad
func PadBright(c game.Color) core.RGB {
	if !c.Valid() {
		return core.Black
	}
	return padBright[c]
}

// PadDim returns the idle color of a pad
func PadDim(c game.Color) core.RGB {
	return PadBright(c).Dim(dimFactor)
}

// PadShade returns the pad color for a lit level between 0 (idle) and 1 (lit)
func PadShade(c game.Color, level float64) core.RGB {
	return PadDim(c).Lerp(PadBright(c), level)
}

// toTcell converts an RGB triple to a tcell color
func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
