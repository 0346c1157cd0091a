package cmd

import (
	"fmt"

	"github.com/go-drift/carousel/cmd/carousel/internal/window"
)

func init() {
	RegisterCommand(&Command{
		Name:  "window",
		Short: "Open the carousel in a desktop window",
		Long: `Open the carousel in a native window at the configured viewport size.

Drag with the mouse or a touch screen to swipe between slides. Click the
prev/next buttons or a dot to navigate. Arrow keys, Home and End also work.

Flags:
  --manifest FILE   Slide manifest (default from carousel.yaml)
  --slides N        Use N placeholder slides instead of a manifest`,
		Usage: "carousel window [--manifest FILE | --slides N]",
		Run:   runWindow,
	})
}

func runWindow(args []string) error {
	var flags sourceFlags
	args, err := flags.parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unknown flag: %s", args[0])
	}

	p, err := loadProject(flags)
	if err != nil {
		return err
	}

	g := window.NewGame(p.slides, p.cfg.Options, p.cfg.Width, p.cfg.Height)
	defer g.Close()
	return g.Run(p.title)
}
