package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

// FileName is the optional per-project configuration file.
const FileName = "carousel.yaml"

const (
	defaultManifest = "slides.yaml"
	defaultWidth    = 800
	defaultHeight   = 450
)

// Config represents the optional carousel.yaml configuration.
type Config struct {
	Title          string         `yaml:"title,omitempty"`
	Manifest       string         `yaml:"manifest,omitempty"`
	Viewport       ViewportConfig `yaml:"viewport"`
	Timing         TimingConfig   `yaml:"timing"`
	SwipeThreshold float64        `yaml:"swipe_threshold,omitempty"`
	Sound          *bool          `yaml:"sound,omitempty"`
}

// ViewportConfig sets the frontend viewport size in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// TimingConfig holds animation durations as Go duration strings ("400ms").
type TimingConfig struct {
	Navigation string `yaml:"navigation,omitempty"`
	SnapBack   string `yaml:"snap_back,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	Manifest   string
	Width      int
	Height     int
	Sound      bool
	Options    carousel.Options
}

// LoadOptional reads carousel.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads carousel.yaml (if present) and resolves defaults. Invalid
// values are reported as config errors.
func Resolve(dir string) (*Resolved, error) {
	res, err := resolve(dir)
	if err != nil {
		return nil, errors.Report(errors.New("config.Resolve", errors.KindConfig, filepath.Join(dir, FileName), err))
	}
	return res, nil
}

func resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	manifest := strings.TrimSpace(cfg.Manifest)
	if manifest == "" {
		manifest = defaultManifest
	}
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(dir, manifest)
	}

	width, height := cfg.Viewport.Width, cfg.Viewport.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("viewport must be positive (got %dx%d)", width, height)
	}

	navigation, err := parseDuration("timing.navigation", cfg.Timing.Navigation, carousel.DefaultNavigationDuration)
	if err != nil {
		return nil, err
	}
	snapBack, err := parseDuration("timing.snap_back", cfg.Timing.SnapBack, carousel.DefaultSnapBackDuration)
	if err != nil {
		return nil, err
	}

	threshold := cfg.SwipeThreshold
	if threshold == 0 {
		threshold = carousel.DefaultSwipeThreshold
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("swipe_threshold must be between 0 and 1 (got %v)", threshold)
	}

	sound := true
	if cfg.Sound != nil {
		sound = *cfg.Sound
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		Manifest:   manifest,
		Width:      width,
		Height:     height,
		Sound:      sound,
		Options: carousel.Options{
			NavigationDuration: navigation,
			SnapBackDuration:   snapBack,
			SwipeThreshold:     threshold,
		},
	}, nil
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive (got %s)", field, value)
	}
	return d, nil
}

// modulePath returns the module path from dir/go.mod, or "" when dir is not
// a Go module. Slide projects need not be.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	return modfile.ModulePath(data), nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "carousel"
	}
	return base
}
