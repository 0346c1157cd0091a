package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/carousel/cmd/carousel/internal/term"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Interactive terminal preview",
		Long: `Show the carousel in the terminal. Drag with the mouse to swipe, click
the arrows or dots, or use the keyboard:

  Left/Right, h/l   Previous / next slide
  Home/End          First / last slide
  q, Esc            Quit

A short click sounds on every slide change unless carousel.yaml sets
"sound: false".

Flags:
  --manifest FILE   Slide manifest (default from carousel.yaml)
  --slides N        Use N placeholder slides instead of a manifest`,
		Usage: "carousel preview [--manifest FILE]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	var flags sourceFlags
	rest, err := flags.parse(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q", rest[0])
	}

	p, err := loadProject(flags)
	if err != nil {
		return err
	}

	var clicker term.Clicker
	if p.cfg.Sound {
		spk, err := term.NewSpeaker()
		if err != nil {
			// Non-fatal, the preview works without sound
			slog.Warn("audio initialization failed", "err", err)
		} else {
			defer spk.Close()
			clicker = spk
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	preview := term.New(screen, p.title, p.slides, p.cfg.Options, clicker)
	defer preview.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := preview.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
