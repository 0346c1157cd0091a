// Package raster draws carousel frames into images with gogpu/gg.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"net/url"
	"os"

	// Decoders for slide images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

const (
	buttonRadius = 16
	buttonInset  = 24
	dotRadius    = 4
	dotSpacing   = 16
	dotInset     = 16
)

// Background is the viewport color behind letterboxed slides.
var Background = gg.Hex("#111418")

// Renderer draws frames at a fixed viewport size. Images are decoded once
// and cached by source; sources that fail to load are drawn as placeholders.
type Renderer struct {
	Width  int
	Height int

	images map[string]*gg.ImageBuf
}

// New creates a renderer for a width x height viewport.
func New(width, height int) *Renderer {
	return &Renderer{
		Width:  width,
		Height: height,
		images: make(map[string]*gg.ImageBuf),
	}
}

// Render draws f into a new context. The caller owns the context and must
// Close it.
func (r *Renderer) Render(f carousel.Frame) (*gg.Context, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, errors.Report(errors.New("raster.Render", errors.KindRender, "",
			fmt.Errorf("invalid viewport %dx%d", r.Width, r.Height)))
	}
	dc := gg.NewContext(r.Width, r.Height)
	dc.ClearWithColor(Background)

	w, h := float64(r.Width), float64(r.Height)
	for i, slide := range f.Slides {
		x := f.SlideX(i, w)
		if x >= w || x+w <= 0 {
			continue
		}
		r.drawSlide(dc, i, len(f.Slides), slide, x, w, h)
	}

	if f.Count > 0 {
		drawButton(dc, buttonInset, h/2, -1, f.CanGoPrev)
		drawButton(dc, w-buttonInset, h/2, 1, f.CanGoNext)
	}
	drawDots(dc, f.Dots, w, h)
	return dc, nil
}

// WritePNG renders f and encodes it as PNG.
func (r *Renderer) WritePNG(out io.Writer, f carousel.Frame) error {
	dc, err := r.Render(f)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(out); err != nil {
		return errors.Report(errors.New("raster.WritePNG", errors.KindRender, "", err))
	}
	return nil
}

// SavePNG renders f to a PNG file at path.
func (r *Renderer) SavePNG(path string, f carousel.Frame) error {
	dc, err := r.Render(f)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return errors.Report(errors.New("raster.SavePNG", errors.KindRender, path, err))
	}
	return nil
}

// PlaceholderColor is the fill for slide i of n when its image is not
// available locally.
func PlaceholderColor(i, n int) gg.RGBA {
	if n <= 0 {
		n = 1
	}
	return gg.HSL(float64(i)*360/float64(n), 0.45, 0.55)
}

// FitRect returns the largest box with the slide's aspect ratio centered in
// a w x h cell. Slides without dimensions fill the cell.
func FitRect(view carousel.SlideView, w, h float64) (x, y, fw, fh float64) {
	if !view.HasAspectRatio {
		return 0, 0, w, h
	}
	fw, fh = w, w/view.AspectRatio
	if fh > h {
		fw, fh = h*view.AspectRatio, h
	}
	return (w - fw) / 2, (h - fh) / 2, fw, fh
}

func (r *Renderer) drawSlide(dc *gg.Context, i, n int, view carousel.SlideView, x, w, h float64) {
	fx, fy, fw, fh := FitRect(view, w, h)
	if img := r.image(view.Item.Source); img != nil {
		dc.DrawImageEx(img, gg.DrawImageOptions{
			X:         x + fx,
			Y:         fy,
			DstWidth:  fw,
			DstHeight: fh,
		})
		return
	}
	c := PlaceholderColor(i, n)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.DrawRectangle(x+fx, fy, fw, fh)
	_ = dc.Fill()
}

func (r *Renderer) image(src string) *gg.ImageBuf {
	if img, ok := r.images[src]; ok {
		return img
	}
	var img *gg.ImageBuf
	if path, ok := localPath(src); ok {
		decoded, err := decode(path)
		if err != nil {
			errors.Report(errors.New("raster.image", errors.KindDecode, src, err))
		} else {
			img = gg.ImageBufFromImage(decoded)
		}
	}
	r.images[src] = img
	return img
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func drawButton(dc *gg.Context, cx, cy, dir float64, enabled bool) {
	alpha := 0.85
	if !enabled {
		alpha = 0.3
	}
	dc.SetRGBA(1, 1, 1, alpha)
	dc.DrawCircle(cx, cy, buttonRadius)
	_ = dc.Fill()

	// Chevron pointing in dir.
	const arm = 5.0
	dc.SetRGBA(0, 0, 0, alpha)
	dc.SetLineWidth(2)
	dc.MoveTo(cx-dir*arm/2, cy-arm)
	dc.LineTo(cx+dir*arm/2, cy)
	dc.LineTo(cx-dir*arm/2, cy+arm)
	_ = dc.Stroke()
}

func drawDots(dc *gg.Context, dots []bool, w, h float64) {
	if len(dots) == 0 {
		return
	}
	for i, active := range dots {
		if active {
			dc.SetRGBA(1, 1, 1, 1)
		} else {
			dc.SetRGBA(1, 1, 1, 0.4)
		}
		x, y := DotCenter(i, len(dots), w, h)
		dc.DrawCircle(x, y, dotRadius)
		_ = dc.Fill()
	}
}

// DotCenter returns the center of indicator dot i of n in a w x h viewport.
func DotCenter(i, n int, w, h float64) (x, y float64) {
	span := float64(n-1) * dotSpacing
	return w/2 - span/2 + float64(i)*dotSpacing, h - dotInset
}

func localPath(src string) (string, bool) {
	u, err := url.Parse(src)
	if err != nil {
		return src, true
	}
	switch {
	case u.Scheme == "file":
		return u.Path, true
	case len(u.Scheme) > 1:
		return "", false
	default:
		return src, true
	}
}

// Letterbox reports how much of the viewport a slide leaves empty, as a
// fraction of the cell area.
func Letterbox(view carousel.SlideView, w, h float64) float64 {
	_, _, fw, fh := FitRect(view, w, h)
	return math.Max(0, 1-(fw*fh)/(w*h))
}
