package core

import "math"

// RGB is a terminal-independent 24-bit color
type RGB struct {
	R, G, B uint8
}

// Black is the zero color
var Black = RGB{}

// Lerp moves from c toward target by t, where 0 keeps c and 1 yields target
// Channels are rounded to the nearest value; t is clamped to [0, 1]
func (c RGB) Lerp(target RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: mixChannel(c.R, target.R, t),
		G: mixChannel(c.G, target.G, t),
		B: mixChannel(c.B, target.B, t),
	}
}

// Dim darkens c toward black, keeping fraction of its brightness
func (c RGB) Dim(fraction float64) RGB {
	return Black.Lerp(c, fraction)
}

func mixChannel(from, to uint8, t float64) uint8 {
	return uint8(math.Round(float64(from) + (float64(to)-float64(from))*t))
}

func clamp01(t float64) float64 {
	switch {
	case t < 0 || math.IsNaN(t):
		return 0
	case t > 1:
		return 1
	}
	return t
}
