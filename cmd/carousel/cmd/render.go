package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/carousel/cmd/carousel/internal/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a slide to PNG",
		Long: `Render the carousel at rest on one slide, including the prev/next
buttons and indicator dots, to a PNG file at the configured viewport size.

Flags:
  --manifest FILE   Slide manifest (default from carousel.yaml)
  --slides N        Use N placeholder slides instead of a manifest
  --index N         Slide to show (default 0)
  --out FILE        Output path (default carousel.png)`,
		Usage: "carousel render [--index N] [--out FILE]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	var flags sourceFlags
	args, err := flags.parse(args)
	if err != nil {
		return err
	}

	index := 0
	out := "carousel.png"
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--index" || arg == "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			if arg == "--out" {
				out = args[i+1]
			} else if index, err = strconv.Atoi(args[i+1]); err != nil {
				return fmt.Errorf("--index: invalid number %q", args[i+1])
			}
			i++
		case strings.HasPrefix(arg, "--out="):
			out = strings.TrimPrefix(arg, "--out=")
		default:
			return fmt.Errorf("unknown flag: %s", arg)
		}
	}

	p, err := loadProject(flags)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(p.slides) {
		return fmt.Errorf("--index %d out of range (%d slides)", index, len(p.slides))
	}

	sim := newSimulation(p.slides, p.cfg.Options, p.cfg.Width, p.cfg.Height)
	defer sim.c.Close()
	sim.c.GoTo(index)
	sim.settle()

	if err := raster.New(p.cfg.Width, p.cfg.Height).SavePNG(out, sim.c.Snapshot()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%dx%d, slide %d of %d)\n", out, p.cfg.Width, p.cfg.Height, index+1, len(p.slides))
	return nil
}
