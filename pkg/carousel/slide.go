package carousel

// SlideItem describes one slide. Width and Height are the intrinsic image
// dimensions used to reserve layout space; zero means unknown.
type SlideItem struct {
	Source string `yaml:"src" json:"src"`
	Alt    string `yaml:"alt" json:"alt"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height int    `yaml:"height,omitempty" json:"height,omitempty"`
}

// AspectRatio returns width/height. ok is false when either dimension is
// missing or not positive, in which case no space should be reserved.
func (s SlideItem) AspectRatio() (ratio float64, ok bool) {
	if s.Width <= 0 || s.Height <= 0 {
		return 0, false
	}
	return float64(s.Width) / float64(s.Height), true
}
