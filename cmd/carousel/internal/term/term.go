// Package term is an interactive terminal frontend for a carousel. Mouse
// drags are fed to the carousel as pointer events, scaled from cells to
// pixels, so swipes behave as they would on screen.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/carousel/cmd/carousel/internal/raster"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/gestures"
)

const (
	// CellWidth and CellHeight approximate a terminal cell in pixels.
	CellWidth  = 8
	CellHeight = 16

	frameInterval = 16 * time.Millisecond
	mousePointer  = 1
)

// Preview draws a carousel into a tcell screen and drives it from terminal
// input.
type Preview struct {
	screen  tcell.Screen
	c       *carousel.Carousel
	title   string
	clicker Clicker

	pressed  bool
	pressX   int
	pressY   int
	lastX    int
	lastY    int
	removeFn func()
}

// New mounts items in a carousel sized to the screen. opts.Viewport is
// replaced with the screen width in pixels. clicker may be nil.
func New(screen tcell.Screen, title string, items []carousel.SlideItem, opts carousel.Options, clicker Clicker) *Preview {
	p := &Preview{screen: screen, title: title, clicker: clicker}
	opts.Viewport = p.viewportWidth
	p.c = carousel.New(items, opts)
	p.removeFn = p.c.OnChange(func(int) {
		if p.clicker != nil {
			p.clicker.Click()
		}
	})
	return p
}

// Carousel returns the carousel being previewed.
func (p *Preview) Carousel() *carousel.Carousel {
	return p.c
}

// Close unmounts the carousel. The screen is left to the caller.
func (p *Preview) Close() {
	p.removeFn()
	p.c.Close()
}

func (p *Preview) viewportWidth() float64 {
	w, _ := p.screen.Size()
	return float64(w * CellWidth)
}

// Run polls input and redraws at about 60 frames per second until ctx is
// done or the user quits.
func (p *Preview) Run(ctx context.Context) error {
	p.screen.EnableMouse()
	defer p.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !p.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			p.c.Tick()
			p.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		p.handleMouse(x, y, ev.Buttons()&tcell.Button1 != 0, ev.When())
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *Preview) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		p.c.GoPrev()
	case tcell.KeyRight:
		p.c.GoNext()
	case tcell.KeyHome:
		p.c.GoTo(0)
	case tcell.KeyEnd:
		p.c.GoTo(p.c.Count() - 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			p.c.GoPrev()
		case 'l':
			p.c.GoNext()
		}
	}
	return true
}

// handleMouse turns tcell's button state into pointer phases. A release
// that did not move off the press cell counts as a click on the buttons or
// dots beneath it.
func (p *Preview) handleMouse(x, y int, down bool, when time.Time) {
	switch {
	case down && !p.pressed:
		p.pressed = true
		p.pressX, p.pressY = x, y
		p.lastX, p.lastY = x, y
		p.send(gestures.PointerPhaseDown, x, y, when)
	case down && p.pressed:
		if x == p.lastX && y == p.lastY {
			return
		}
		p.lastX, p.lastY = x, y
		p.send(gestures.PointerPhaseMove, x, y, when)
	case !down && p.pressed:
		p.pressed = false
		p.send(gestures.PointerPhaseUp, x, y, when)
		if x == p.pressX && y == p.pressY {
			p.click(x, y)
		}
	}
}

func (p *Preview) send(phase gestures.PointerPhase, x, y int, when time.Time) {
	p.c.HandlePointer(&gestures.PointerEvent{
		PointerID: mousePointer,
		Position:  cellToPixel(x, y),
		Phase:     phase,
		Timestamp: when,
	})
}

func (p *Preview) click(x, y int) {
	w, h := p.screen.Size()
	l := layoutFor(w, h, p.c.Count())
	switch {
	case y == l.buttonRow && x <= l.prevCol+1:
		p.c.GoPrev()
	case y == l.buttonRow && x >= l.nextCol-1:
		p.c.GoNext()
	case y == l.dotRow:
		if i, ok := l.dotAt(x); ok {
			p.c.GoTo(i)
		}
	}
}

func cellToPixel(x, y int) gestures.Offset {
	return gestures.Offset{
		X: float64(x*CellWidth + CellWidth/2),
		Y: float64(y*CellHeight + CellHeight/2),
	}
}

// layout places chrome within a w x h cell screen.
type layout struct {
	titleRow  int
	buttonRow int
	dotRow    int
	prevCol   int
	nextCol   int
	dotStart  int
	count     int
}

func layoutFor(w, h, count int) layout {
	return layout{
		titleRow:  0,
		buttonRow: h / 2,
		dotRow:    h - 1,
		prevCol:   1,
		nextCol:   w - 2,
		dotStart:  w/2 - count,
		count:     count,
	}
}

// Dots are drawn two cells apart.
func (l layout) dotCol(i int) int {
	return l.dotStart + 2*i
}

func (l layout) dotAt(x int) (int, bool) {
	if x < l.dotStart || (x-l.dotStart)%2 != 0 {
		return 0, false
	}
	i := (x - l.dotStart) / 2
	return i, i < l.count
}

// Draw renders the current frame.
func (p *Preview) Draw() {
	s := p.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	f := p.c.Snapshot()
	l := layoutFor(w, h, f.Count)
	base := tcell.StyleDefault.Background(toColor(raster.Background))

	width := float64(w * CellWidth)
	for x := range w {
		px := float64(x*CellWidth) - f.TrackOffsetPixels(width)
		i := int(px / width)
		style := base
		if px >= 0 && i < f.Count {
			style = tcell.StyleDefault.Background(toColor(raster.PlaceholderColor(i, f.Count)))
		}
		for y := range h {
			s.SetContent(x, y, ' ', nil, style)
		}
	}

	for i, slide := range f.Slides {
		left := int(f.SlideX(i, width)) / CellWidth
		label := slide.Item.Alt
		if label == "" {
			label = slide.Item.Source
		}
		label = runewidth.Truncate(label, w-6, "…")
		col := left + (w-runewidth.StringWidth(label))/2
		p.print(col, l.buttonRow, label, tcell.StyleDefault.
			Background(toColor(raster.PlaceholderColor(i, f.Count))).
			Foreground(tcell.ColorWhite).Bold(true))
	}

	p.print(1, l.titleRow, fmt.Sprintf("%s  %d/%d", p.title, f.Index+1, f.Count), base.Foreground(tcell.ColorWhite))
	if f.Count > 0 {
		s.SetContent(l.prevCol, l.buttonRow, '‹', nil, buttonStyle(base, f.CanGoPrev))
		s.SetContent(l.nextCol, l.buttonRow, '›', nil, buttonStyle(base, f.CanGoNext))
	}
	for i, active := range f.Dots {
		r := '○'
		if active {
			r = '●'
		}
		s.SetContent(l.dotCol(i), l.dotRow, r, nil, base.Foreground(tcell.ColorWhite))
	}
	s.Show()
}

// print writes text starting at column x, skipping cells off screen.
func (p *Preview) print(x, y int, text string, style tcell.Style) {
	w, _ := p.screen.Size()
	for _, r := range text {
		if x >= 0 && x < w {
			p.screen.SetContent(x, y, r, nil, style)
		}
		x += runewidth.RuneWidth(r)
	}
}

func buttonStyle(base tcell.Style, enabled bool) tcell.Style {
	if enabled {
		return base.Foreground(tcell.ColorWhite).Bold(true)
	}
	return base.Foreground(tcell.ColorGray).Dim(true)
}

func toColor(c gg.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}
