package manifest

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/errors"
)

// CurrentVersion is the newest manifest schema understood by this package.
// Manifests with the same major version are accepted.
const CurrentVersion = "v1.0.0"

// Manifest is a parsed slide list.
type Manifest struct {
	Version string               `yaml:"version,omitempty"`
	Title   string               `yaml:"title,omitempty"`
	Slides  []carousel.SlideItem `yaml:"slides"`

	// Dir is the directory relative sources were resolved against.
	Dir string `yaml:"-"`
}

// Options controls how a manifest is loaded.
type Options struct {
	// SkipProbe leaves missing dimensions at zero instead of reading image
	// headers.
	SkipProbe bool
}

// Load reads and validates the manifest at path.
func Load(path string, opts Options) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Report(errors.New("manifest.Load", errors.KindManifest, path, err))
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest directory: %w", err)
	}
	m, err := Parse(data, dir, opts)
	if err != nil {
		var cerr *errors.CarouselError
		if stderrors.As(err, &cerr) && cerr.Source == "" {
			cerr.Source = path
		}
		return nil, err
	}
	return m, nil
}

// Parse decodes manifest YAML, resolving relative sources against dir.
func Parse(data []byte, dir string, opts Options) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Report(errors.New("manifest.Parse", errors.KindManifest, "", fmt.Errorf("failed to parse manifest: %w", err)))
	}
	m.Dir = dir

	version, err := checkVersion(m.Version)
	if err != nil {
		return nil, errors.Report(errors.New("manifest.Parse", errors.KindManifest, "", err))
	}
	m.Version = version

	for i := range m.Slides {
		m.Slides[i].Source = resolve(strings.TrimSpace(m.Slides[i].Source), dir)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Report(errors.New("manifest.Parse", errors.KindManifest, "", err))
	}

	if !opts.SkipProbe {
		m.probeMissing()
	}
	return &m, nil
}

// Validate checks slide sources and dimensions.
func (m *Manifest) Validate() error {
	seen := make(map[string]int, len(m.Slides))
	for i, s := range m.Slides {
		if s.Source == "" {
			return fmt.Errorf("slide %d: src is required", i)
		}
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("slide %d (%s): dimensions cannot be negative (%dx%d)", i, s.Source, s.Width, s.Height)
		}
		if prev, ok := seen[s.Source]; ok {
			return fmt.Errorf("slide %d: duplicate src %q (first used by slide %d)", i, s.Source, prev)
		}
		seen[s.Source] = i
	}
	return nil
}

// probeMissing fills in unknown dimensions from local image headers.
// Failures are reported and leave the slide without an aspect ratio.
func (m *Manifest) probeMissing() {
	for i := range m.Slides {
		s := &m.Slides[i]
		if s.Width > 0 && s.Height > 0 {
			continue
		}
		path, ok := localPath(s.Source)
		if !ok {
			continue
		}
		info, err := Probe(path)
		if err != nil {
			errors.Report(errors.New("manifest.probe", errors.KindDecode, s.Source, err))
			continue
		}
		if s.Width == 0 {
			s.Width = info.Width
		}
		if s.Height == 0 {
			s.Height = info.Height
		}
	}
}

func checkVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return CurrentVersion, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid manifest version %q", v)
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return "", fmt.Errorf("unsupported manifest version %s (want %s.x)", v, semver.Major(CurrentVersion))
	}
	return semver.Canonical(v), nil
}

// resolve makes a relative file source absolute. URLs and absolute paths
// are returned unchanged.
func resolve(src, dir string) string {
	if src == "" || isRemote(src) || filepath.IsAbs(src) || dir == "" {
		return src
	}
	return filepath.Join(dir, filepath.FromSlash(src))
}

func isRemote(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	// Single-letter schemes are Windows drive letters.
	return len(u.Scheme) > 1
}

func localPath(src string) (string, bool) {
	if u, err := url.Parse(src); err == nil && u.Scheme == "file" {
		return u.Path, true
	}
	if isRemote(src) {
		return "", false
	}
	return src, true
}
