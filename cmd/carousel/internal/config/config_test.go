package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

type discardHandler struct{}

func (discardHandler) HandleError(*errors.CarouselError) {}
func (discardHandler) HandlePanic(*errors.PanicError)    {}

func quietErrors(t *testing.T) {
	t.Helper()
	errors.SetHandler(discardHandler{})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolve_Defaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "harbor")
	require.NoError(t, os.Mkdir(dir, 0o755))

	res, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "harbor", res.Title)
	assert.Equal(t, "", res.ModulePath)
	assert.Equal(t, filepath.Join(dir, "slides.yaml"), res.Manifest)
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 450, res.Height)
	assert.True(t, res.Sound)
	assert.Equal(t, carousel.DefaultNavigationDuration, res.Options.NavigationDuration)
	assert.Equal(t, carousel.DefaultSnapBackDuration, res.Options.SnapBackDuration)
	assert.Equal(t, carousel.DefaultSwipeThreshold, res.Options.SwipeThreshold)
}

func TestResolve_TitleFromModulePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/galleries/harbor/v2\n\ngo 1.25\n")

	res, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/galleries/harbor/v2", res.ModulePath)
	assert.Equal(t, "harbor", res.Title)
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
title: Harbor at dawn
manifest: gallery/list.yaml
viewport:
  width: 1024
  height: 576
timing:
  navigation: 250ms
  snap_back: 0.2s
swipe_threshold: 0.3
sound: false
`)

	res, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Harbor at dawn", res.Title)
	assert.Equal(t, filepath.Join(dir, "gallery", "list.yaml"), res.Manifest)
	assert.Equal(t, 1024, res.Width)
	assert.Equal(t, 576, res.Height)
	assert.Equal(t, 250*time.Millisecond, res.Options.NavigationDuration)
	assert.Equal(t, 200*time.Millisecond, res.Options.SnapBackDuration)
	assert.Equal(t, 0.3, res.Options.SwipeThreshold)
	assert.False(t, res.Sound)
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "viewport: [\n"},
		{"negative width", "viewport:\n  width: -5\n"},
		{"bad duration", "timing:\n  navigation: soon\n"},
		{"zero duration", "timing:\n  snap_back: 0s\n"},
		{"threshold too large", "swipe_threshold: 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quietErrors(t)
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)

			_, err := Resolve(dir)
			require.Error(t, err)
			var cerr *errors.CarouselError
			require.True(t, stderrors.As(err, &cerr))
			assert.Equal(t, errors.KindConfig, cerr.Kind)
		})
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}
