package constants

import "time"

// UI Layout Constants
const (
	// PadWidth and PadHeight are the cell size of one color pad
	PadWidth  = 14
	PadHeight = 5

	// PadGap is the spacing between pads
	PadGap = 2

	// DisplayWidth is the width of the score display box
	DisplayWidth = 6

	// MinScreenWidth and MinScreenHeight below which a resize hint is drawn
	MinScreenWidth  = 2*PadWidth + PadGap + 4
	MinScreenHeight = 2*PadHeight + PadGap + 8
)

// UI Timing Constants
const (
	// FrameInterval is the redraw cadence of the terminal presenter
	FrameInterval = 33 * time.Millisecond
)

// Journal Constants
const (
	// TraceCapacity bounds the effect trace kept for the debug pane
	TraceCapacity = 256

	// LogDir and LogFileName locate the debug log
	LogDir      = "logs"
	LogFileName = "simon.log"
)
