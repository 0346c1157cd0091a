package carousel

// SlideView is the per-slide rendering information.
type SlideView struct {
	Item SlideItem
	// AspectRatio is width/height, valid when HasAspectRatio is true.
	AspectRatio    float64
	HasAspectRatio bool
	// Active is true for the current slide; dots use it for styling.
	Active bool
}

// Frame is everything a presentation layer needs to draw the carousel.
type Frame struct {
	// Offset is the track offset in percent of viewport width.
	Offset    float64
	Index     int
	Count     int
	CanGoPrev bool
	CanGoNext bool
	// Dots holds one entry per slide, true for the active one.
	Dots      []bool
	Slides    []SlideView
	Dragging  bool
	Animating bool
}

// Snapshot captures the current rendering state.
func (c *Carousel) Snapshot() Frame {
	f := Frame{
		Offset:    c.track.Offset(),
		Index:     c.nav.Index(),
		Count:     c.nav.Count(),
		CanGoPrev: c.nav.CanGoPrev(),
		CanGoNext: c.nav.CanGoNext(),
		Dots:      make([]bool, len(c.items)),
		Slides:    make([]SlideView, len(c.items)),
		Dragging:  c.IsDragging(),
		Animating: c.IsAnimating(),
	}
	for i, item := range c.items {
		active := c.nav.IsActive(i)
		ratio, ok := item.AspectRatio()
		f.Dots[i] = active
		f.Slides[i] = SlideView{
			Item:           item,
			AspectRatio:    ratio,
			HasAspectRatio: ok,
			Active:         active,
		}
	}
	return f
}

// TrackOffsetPixels converts the frame's offset to pixels for a viewport
// of the given width.
func (f Frame) TrackOffsetPixels(viewportWidth float64) float64 {
	return f.Offset / 100 * viewportWidth
}

// SlideX returns the left edge of slide i in viewport pixels.
func (f Frame) SlideX(i int, viewportWidth float64) float64 {
	return float64(i)*viewportWidth + f.TrackOffsetPixels(viewportWidth)
}
