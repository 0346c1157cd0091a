// Package window is a desktop and touch frontend for a carousel built on
// ebiten. Frames are drawn with the raster package and uploaded as pixels.
package window

import (
	stderrors "errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/carousel/cmd/carousel/internal/raster"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/gestures"
)

// mousePointer is the pointer ID of the mouse; touches are offset past it.
const mousePointer = 0

var errUnexpectedImage = stderrors.New("renderer returned a non-RGBA image")

// Game implements ebiten.Game for one carousel.
type Game struct {
	c        *carousel.Carousel
	renderer *raster.Renderer
	pointers *pointerTracker
	width    int
	height   int

	last  carousel.Frame
	dirty bool
	pix   *image.RGBA
}

// NewGame mounts items in a width x height window. opts.Viewport is
// replaced with the window width.
func NewGame(items []carousel.SlideItem, opts carousel.Options, width, height int) *Game {
	g := &Game{
		renderer: raster.New(width, height),
		pointers: newPointerTracker(),
		width:    width,
		height:   height,
		dirty:    true,
	}
	opts.Viewport = func() float64 { return float64(g.width) }
	g.c = carousel.New(items, opts)
	return g
}

// Carousel returns the mounted carousel.
func (g *Game) Carousel() *carousel.Carousel {
	return g.c
}

// Close unmounts the carousel.
func (g *Game) Close() {
	g.c.Close()
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}

// Update polls input and advances the animation by one tick.
func (g *Game) Update() error {
	now := time.Now()
	if !ebiten.IsFocused() {
		g.pointers.cancelAll(now, g.dispatch)
	} else {
		g.pointers.update(pollPointers(), now, g.dispatch, g.click)
	}
	g.handleKeys()
	g.c.Tick()
	return nil
}

func (g *Game) dispatch(ev *gestures.PointerEvent) {
	g.c.HandlePointer(ev)
}

func (g *Game) click(at gestures.Offset) {
	f := g.c.Snapshot()
	switch target, i := raster.HitTest(f, float64(g.width), float64(g.height), at.X, at.Y); target {
	case raster.TargetPrev:
		g.c.GoPrev()
	case raster.TargetNext:
		g.c.GoNext()
	case raster.TargetDot:
		g.c.GoTo(i)
	}
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.c.GoPrev()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.c.GoNext()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.c.GoTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.c.GoTo(g.c.Count() - 1)
	}
}

// pollPointers reads the mouse and every active touch.
func pollPointers() []pointerSample {
	var samples []pointerSample
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		samples = append(samples, pointerSample{id: mousePointer, position: gestures.Offset{X: float64(x), Y: float64(y)}})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		samples = append(samples, pointerSample{id: int64(id) + 1, position: gestures.Offset{X: float64(x), Y: float64(y)}})
	}
	return samples
}

// Draw uploads the current frame, re-rendering only when it changed.
func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.frame(); img != nil {
		screen.WritePixels(img.Pix)
	}
}

// frame returns the rendered pixels for the current state, or nil when
// rendering failed.
func (g *Game) frame() *image.RGBA {
	f := g.c.Snapshot()
	if !g.dirty && sameFrame(f, g.last) {
		return g.pix
	}
	dc, err := g.renderer.Render(f)
	if err != nil {
		return g.pix
	}
	defer dc.Close()
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		errors.Report(errors.New("window.frame", errors.KindRender, "", errUnexpectedImage))
		return g.pix
	}
	g.pix, g.last, g.dirty = img, f, false
	return g.pix
}

// Layout fixes the logical screen to the configured viewport.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func sameFrame(a, b carousel.Frame) bool {
	return a.Offset == b.Offset && a.Index == b.Index && a.Count == b.Count &&
		a.Dragging == b.Dragging && a.CanGoPrev == b.CanGoPrev && a.CanGoNext == b.CanGoNext
}
