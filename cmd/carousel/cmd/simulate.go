package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-drift/carousel/cmd/carousel/internal/raster"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/gestures"
)

const (
	simFrame     = 16 * time.Millisecond
	simSettleMax = 10 * time.Second
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Run a scripted sequence of navigation and swipes",
		Long: `Run actions against a carousel on a simulated clock and print the state
after each one. Time only passes during "wait"; after the last action the
carousel is run until it settles.

Actions:
  next            Activate the next button
  prev            Activate the previous button
  goto N          Activate indicator dot N (0-based)
  home, end       Jump to the first or last slide
  drag DX [DY]    Press at the viewport center, move by DX,DY pixels, release
  wait MS         Advance the clock by MS milliseconds in 16ms frames

Flags:
  --manifest FILE   Slide manifest (default from carousel.yaml)
  --slides N        Use N placeholder slides instead of a manifest
  --frames DIR      Write a PNG of the frame after each action into DIR`,
		Usage: "carousel simulate [--slides N] [--frames DIR] <action>...",
		Run:   runSimulate,
	})
}

// action is one parsed simulate step.
type action struct {
	name string
	n    int
	dx   float64
	dy   float64
}

func (a action) String() string {
	switch a.name {
	case "goto":
		return fmt.Sprintf("goto %d", a.n)
	case "wait":
		return fmt.Sprintf("wait %d", a.n)
	case "drag":
		if a.dy != 0 {
			return fmt.Sprintf("drag %g %g", a.dx, a.dy)
		}
		return fmt.Sprintf("drag %g", a.dx)
	default:
		return a.name
	}
}

func parseActions(args []string) ([]action, error) {
	var actions []action
	for i := 0; i < len(args); i++ {
		name := strings.ToLower(args[i])
		switch name {
		case "next", "prev", "home", "end":
			actions = append(actions, action{name: name})
		case "goto", "wait":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a number", name)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return nil, fmt.Errorf("%s: invalid number %q", name, args[i+1])
			}
			if name == "wait" && n < 0 {
				return nil, fmt.Errorf("wait: duration cannot be negative")
			}
			actions = append(actions, action{name: name, n: n})
			i++
		case "drag":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("drag requires DX")
			}
			dx, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("drag: invalid DX %q", args[i+1])
			}
			a := action{name: name, dx: dx}
			i++
			if i+1 < len(args) {
				if dy, err := strconv.ParseFloat(args[i+1], 64); err == nil {
					a.dy = dy
					i++
				}
			}
			actions = append(actions, a)
		default:
			return nil, fmt.Errorf("unknown action %q", args[i])
		}
	}
	return actions, nil
}

// stepClock is advanced explicitly by the simulation.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// simulation runs actions against a carousel on a stepClock.
type simulation struct {
	c      *carousel.Carousel
	clock  *stepClock
	width  float64
	height float64
	next   int64
}

func newSimulation(items []carousel.SlideItem, opts carousel.Options, width, height int) *simulation {
	s := &simulation{
		clock:  &stepClock{now: time.Unix(0, 0)},
		width:  float64(width),
		height: float64(height),
	}
	opts.Clock = s.clock
	opts.Viewport = func() float64 { return s.width }
	s.c = carousel.New(items, opts)
	return s
}

func (s *simulation) apply(a action) {
	switch a.name {
	case "next":
		s.c.GoNext()
	case "prev":
		s.c.GoPrev()
	case "home":
		s.c.GoTo(0)
	case "end":
		s.c.GoTo(s.c.Count() - 1)
	case "goto":
		s.c.GoTo(a.n)
	case "wait":
		s.pump(time.Duration(a.n) * time.Millisecond)
	case "drag":
		s.drag(a.dx, a.dy)
	}
}

func (s *simulation) drag(dx, dy float64) {
	s.next++
	start := gestures.Offset{X: s.width / 2, Y: s.height / 2}
	end := gestures.Offset{X: start.X + dx, Y: start.Y + dy}
	for _, ev := range []gestures.PointerEvent{
		{Phase: gestures.PointerPhaseDown, Position: start},
		{Phase: gestures.PointerPhaseMove, Position: end},
		{Phase: gestures.PointerPhaseUp, Position: end},
	} {
		ev.PointerID = s.next
		ev.Timestamp = s.clock.Now()
		s.c.HandlePointer(&ev)
	}
}

func (s *simulation) pump(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += simFrame {
		s.clock.advance(simFrame)
		s.c.Tick()
	}
}

func (s *simulation) settle() {
	for elapsed := time.Duration(0); s.c.IsAnimating() && elapsed < simSettleMax; elapsed += simFrame {
		s.pump(simFrame)
	}
}

func formatFrame(label string, f carousel.Frame) string {
	return fmt.Sprintf("%-12s index=%d offset=%.2f prev=%t next=%t dragging=%t animating=%t",
		label, f.Index, f.Offset, f.CanGoPrev, f.CanGoNext, f.Dragging, f.Animating)
}

func runSimulate(args []string) error {
	var flags sourceFlags
	args, err := flags.parse(args)
	if err != nil {
		return err
	}

	var framesDir string
	var rest []string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--frames":
			if i+1 >= len(args) {
				return fmt.Errorf("--frames requires a directory")
			}
			framesDir = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--frames="):
			framesDir = strings.TrimPrefix(args[i], "--frames=")
		default:
			rest = append(rest, args[i])
		}
	}

	actions, err := parseActions(rest)
	if err != nil {
		return err
	}

	p, err := loadProject(flags)
	if err != nil {
		return err
	}

	sim := newSimulation(p.slides, p.cfg.Options, p.cfg.Width, p.cfg.Height)
	defer sim.c.Close()

	var renderer *raster.Renderer
	if framesDir != "" {
		if err := os.MkdirAll(framesDir, 0o755); err != nil {
			return fmt.Errorf("failed to create frames directory: %w", err)
		}
		renderer = raster.New(p.cfg.Width, p.cfg.Height)
	}
	emit := func(step int, label string) error {
		f := sim.c.Snapshot()
		fmt.Fprintln(stdout, formatFrame(label, f))
		if renderer == nil {
			return nil
		}
		return renderer.SavePNG(filepath.Join(framesDir, fmt.Sprintf("frame-%03d.png", step)), f)
	}

	if err := emit(0, "start"); err != nil {
		return err
	}
	for i, a := range actions {
		sim.apply(a)
		if err := emit(i+1, a.String()); err != nil {
			return err
		}
	}
	sim.settle()
	return emit(len(actions)+1, "settled")
}
