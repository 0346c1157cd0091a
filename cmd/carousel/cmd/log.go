package cmd

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

// setupLogging routes carousel and renderer logs and reported errors to w.
// Verbose enables debug records and stack traces on reported errors.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	slog.SetDefault(logger)
	carousel.SetLogger(logger)
	gg.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
}
