package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/carousel/cmd/carousel/internal/config"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/manifest"
)

// project is a resolved configuration plus its loaded slides.
type project struct {
	cfg    *config.Resolved
	title  string
	slides []carousel.SlideItem
}

// sourceFlags are shared by commands that need slides.
type sourceFlags struct {
	manifest string
	slides   int
}

// parse consumes --manifest and --slides from args and returns the rest.
func (f *sourceFlags) parse(args []string) ([]string, error) {
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--manifest":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--manifest requires a file path")
			}
			f.manifest = args[i+1]
			i++
		case strings.HasPrefix(arg, "--manifest="):
			f.manifest = strings.TrimPrefix(arg, "--manifest=")
		case arg == "--slides":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--slides requires a count")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("--slides: invalid count %q", args[i+1])
			}
			f.slides = n
			i++
		default:
			rest = append(rest, arg)
		}
	}
	return rest, nil
}

// loadProject resolves carousel.yaml in the project directory and loads the
// slides: placeholders when --slides is given, the manifest otherwise.
func loadProject(flags sourceFlags) (*project, error) {
	cfg, err := config.Resolve(projectDir)
	if err != nil {
		return nil, err
	}
	p := &project{cfg: cfg, title: cfg.Title}

	if flags.slides > 0 {
		p.slides = placeholderSlides(flags.slides)
		return p, nil
	}

	path := cfg.Manifest
	if flags.manifest != "" {
		path = flags.manifest
	}
	m, err := manifest.Load(path, manifest.Options{})
	if err != nil {
		return nil, err
	}
	if m.Title != "" {
		p.title = m.Title
	}
	p.slides = m.Slides
	return p, nil
}

func placeholderSlides(n int) []carousel.SlideItem {
	items := make([]carousel.SlideItem, n)
	for i := range items {
		items[i] = carousel.SlideItem{
			Source: fmt.Sprintf("placeholder:%d", i),
			Alt:    fmt.Sprintf("Slide %d", i+1),
			Width:  16,
			Height: 9,
		}
	}
	return items
}
