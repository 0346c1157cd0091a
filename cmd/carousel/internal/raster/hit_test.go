package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/carousel/pkg/carousel"
	carouseltest "github.com/go-drift/carousel/pkg/testing"
)

func TestHitTest(t *testing.T) {
	f := frameFor(t, carouseltest.Slides(3))
	dx, dy := DotCenter(2, 3, testW, testH)

	tests := []struct {
		name   string
		x, y   float64
		target Target
		index  int
	}{
		{"prev button", buttonInset, testH / 2, TargetPrev, 0},
		{"next button edge", testW - buttonInset + buttonRadius - 1, testH / 2, TargetNext, 0},
		{"dot", dx + 2, dy, TargetDot, 2},
		{"slide", testW / 2, testH / 2, TargetNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, index := HitTest(f, testW, testH, tt.x, tt.y)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.index, index)
		})
	}

	target, _ := HitTest(carousel.Frame{}, testW, testH, buttonInset, testH/2)
	assert.Equal(t, TargetNone, target, "empty carousel has no controls")
}
