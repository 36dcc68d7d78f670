package render

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/engine"
	"github.com/lixenwraith/simon/game"
)

// padFade is the tail of a blink during which a pad dims back to idle
const padFade = 150 * time.Millisecond

// Board geometry relative to the board origin
const (
	boardWidth  = 2*constants.PadWidth + constants.PadGap
	padRowGap   = constants.PadGap / 2
	padsTop     = 2
	panelTop    = padsTop + 2*constants.PadHeight + padRowGap + 1
	boardHeight = panelTop + 4
)

// view is the state written by game.Presentation calls and read by Draw
type view struct {
	litUntil [4]time.Time
	display  string
	power    bool
	strict   bool
	locked   bool
	status   string
}

// TerminalPresenter implements game.Presentation on a tcell screen
// Presentation calls only update the view; Draw paints it
type TerminalPresenter struct {
	mu     sync.Mutex
	screen tcell.Screen
	clock  engine.TimeProvider
	view   view
	legend string

	originX int
	originY int
}

// PresenterOption configures a TerminalPresenter
type PresenterOption func(*TerminalPresenter)

// WithClock sets the clock used to time pad blinks
func WithClock(clock engine.TimeProvider) PresenterOption {
	return func(p *TerminalPresenter) { p.clock = clock }
}

// WithLegend sets the key help line drawn under the board
func WithLegend(legend string) PresenterOption {
	return func(p *TerminalPresenter) { p.legend = legend }
}

// NewTerminalPresenter creates a presenter drawing to screen
func NewTerminalPresenter(screen tcell.Screen, opts ...PresenterOption) *TerminalPresenter {
	p := &TerminalPresenter{
		screen: screen,
		clock:  engine.NewMonotonicTimeProvider(),
		view:   view{locked: true},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Blink lights pad c for d
func (p *TerminalPresenter) Blink(c game.Color, d time.Duration) {
	if !c.Valid() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.litUntil[c] = p.clock.Now().Add(d)
}

// ClearAll turns every pad off
func (p *TerminalPresenter) ClearAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.litUntil = [4]time.Time{}
}

func (p *TerminalPresenter) LockInput() {
	p.mu.Lock()
	p.view.locked = true
	p.mu.Unlock()
}

func (p *TerminalPresenter) UnlockInput() {
	p.mu.Lock()
	p.view.locked = false
	p.mu.Unlock()
}

func (p *TerminalPresenter) RenderScore(s game.Score) {
	p.ShowMessage(s.String())
}

// RenderPower switches the power light; the display goes dark with it
func (p *TerminalPresenter) RenderPower(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.power = on
	if on {
		p.view.display = game.Score{}.String()
	} else {
		p.view.display = ""
	}
}

func (p *TerminalPresenter) RenderStrict(on bool) {
	p.mu.Lock()
	p.view.strict = on
	p.mu.Unlock()
}

// Flash shows the first frame; the blank/message frames arrive via ShowMessage
func (p *TerminalPresenter) Flash(message string, repeats int, interval time.Duration) {
	p.ShowMessage(message)
}

// ShowMessage replaces the display text
func (p *TerminalPresenter) ShowMessage(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.display = text
}

// SetStatus sets the free-form status line
func (p *TerminalPresenter) SetStatus(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.status = text
}

// Status returns the status line text
func (p *TerminalPresenter) Status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view.status
}

// Display returns the current display text
func (p *TerminalPresenter) Display() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view.display
}

// Lit reports whether pad c is lit at now
func (p *TerminalPresenter) Lit(c game.Color, now time.Time) bool {
	if !c.Valid() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return now.Before(p.view.litUntil[c])
}

// HitTest maps a screen cell to the pad under it, using the last drawn layout
func (p *TerminalPresenter) HitTest(x, y int) (game.Color, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range game.AllColors {
		px, py := padOrigin(c)
		px += p.originX
		py += p.originY
		if x >= px && x < px+constants.PadWidth && y >= py && y < py+constants.PadHeight {
			return c, true
		}
	}
	return 0, false
}

// padOrigin returns the top-left cell of pad c relative to the board origin
// Layout: green/red on top, yellow/blue below
func padOrigin(c game.Color) (int, int) {
	col := int(c) % 2
	row := int(c) / 2
	return col * (constants.PadWidth + constants.PadGap), padsTop + row*(constants.PadHeight+padRowGap)
}

// padLevel returns 1 while fully lit, fading to 0 across padFade
func padLevel(until, now time.Time) float64 {
	remaining := until.Sub(now)
	if remaining <= 0 {
		return 0
	}
	if remaining >= padFade {
		return 1
	}
	return float64(remaining) / float64(padFade)
}

// Draw renders the full frame at now and shows it
func (p *TerminalPresenter) Draw(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.screen
	bg := tcell.StyleDefault.Background(RgbBackground)
	s.Fill(' ', bg)

	w, h := s.Size()
	if w < constants.MinScreenWidth || h < constants.MinScreenHeight {
		p.drawText(0, 0, "terminal too small", bg.Foreground(RgbText))
		s.Show()
		return
	}

	p.originX = (w - boardWidth) / 2
	p.originY = (h - boardHeight) / 2

	p.drawCentered(0, "S I M O N", bg.Foreground(RgbText).Bold(true))
	for _, c := range game.AllColors {
		p.drawPad(c, padLevel(p.view.litUntil[c], now))
	}
	p.drawPanel(bg)

	s.Show()
}

func (p *TerminalPresenter) drawPad(c game.Color, level float64) {
	px, py := padOrigin(c)
	px += p.originX
	py += p.originY

	style := tcell.StyleDefault.Background(toTcell(PadShade(c, level))).Foreground(RgbPadLabel)
	for y := 0; y < constants.PadHeight; y++ {
		for x := 0; x < constants.PadWidth; x++ {
			p.screen.SetContent(px+x, py+y, ' ', nil, style)
		}
	}

	label := strings.ToUpper(c.String())
	lx := px + (constants.PadWidth-len(label))/2
	p.drawText(lx, py+constants.PadHeight/2, label, style)
}

func (p *TerminalPresenter) drawPanel(bg tcell.Style) {
	y := p.originY + panelTop

	// Score display box, blank while powered off
	text := p.view.display
	if !p.view.power {
		text = ""
	}
	box := centerPad(text, constants.DisplayWidth)
	dx := p.originX + (boardWidth-constants.DisplayWidth)/2
	p.drawText(dx, y, box, tcell.StyleDefault.Background(RgbDisplayBg).Foreground(RgbDisplayText).Bold(true))

	lights := bg.Foreground(RgbText)
	powerLight := bg.Foreground(RgbLightOff)
	if p.view.power {
		powerLight = bg.Foreground(RgbPowerOn)
	}
	strictLight := bg.Foreground(RgbLightOff)
	if p.view.strict {
		strictLight = bg.Foreground(RgbStrictOn)
	}
	p.drawText(p.originX, y, "●", powerLight)
	p.drawText(p.originX+2, y, "POWER", lights)
	p.drawText(p.originX+boardWidth-8, y, "STRICT", lights)
	p.drawText(p.originX+boardWidth-1, y, "●", strictLight)

	hint := "OFF"
	switch {
	case p.view.power && p.view.locked:
		hint = "LOCKED"
	case p.view.power:
		hint = "YOUR TURN"
	}
	p.drawCentered(panelTop+1, hint, lights.Bold(!p.view.locked))

	if p.view.status != "" {
		p.drawCentered(panelTop+2, p.view.status, lights.Dim(true))
	}
	if p.legend != "" {
		p.drawCentered(panelTop+3, p.legend, lights.Dim(true))
	}
}

// drawCentered draws text horizontally centered on the board at board row y
func (p *TerminalPresenter) drawCentered(y int, text string, style tcell.Style) {
	x := p.originX + (boardWidth-len([]rune(text)))/2
	if x < 0 {
		x = 0
	}
	p.drawText(x, p.originY+y, text, style)
}

func (p *TerminalPresenter) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		p.screen.SetContent(x+i, y, r, nil, style)
	}
}

// centerPad centers text in a field of width cells
func centerPad(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-n-left)
}
