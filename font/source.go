package font

import (
	"fmt"
	"os"

	"github.com/gogpu/vgtext/curve"
)

// FontSource represents a loaded font file. It is heavyweight and should
// be shared across the application; create Faces from it rather than
// re-parsing the font data.
//
// FontSource must not be copied after creation. Copying is detected by a
// self-referential pointer and causes a panic on the next method call,
// the same pattern as the teacher's text.FontSource.
type FontSource struct {
	addr *FontSource

	data    []byte
	backend Backend
	name    string
	config  sourceConfig
}

// sourceConfig holds FontSource configuration.
type sourceConfig struct {
	backendName string
	cubicConfig curve.Config
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		backendName: defaultBackendName,
		cubicConfig: curve.DefaultConfig(),
	}
}

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// WithBackend selects the outline-extraction backend by name: "sfnt"
// (default, golang.org/x/image/font/sfnt) or "truetype"
// (github.com/goki/freetype/truetype, raw glyf on/off-curve points).
func WithBackend(name string) SourceOption {
	return func(c *sourceConfig) {
		c.backendName = name
	}
}

// WithCubicTolerance overrides the maximum shoulder-point error allowed
// when a backend approximates a cubic outline segment with quadratics
// (the sfnt backend's CubeTo segments; the truetype backend never sees
// cubics). Most callers should leave this at curve.DefaultConfig's value.
func WithCubicTolerance(tolerance float64) SourceOption {
	return func(c *sourceConfig) {
		c.cubicConfig.Tolerance = tolerance
	}
}

// NewFontSource creates a FontSource from font data (TTF or OTF). The
// data is copied internally and can be reused by the caller afterward.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.cubicConfig.Validate(); err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}

	factory, ok := getBackendFactory(config.backendName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.backendName)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	backend, err := factory(dataCopy, config.cubicConfig)
	if err != nil {
		return nil, &ParseError{Backend: config.backendName, Err: err}
	}

	s := &FontSource{
		data:    dataCopy,
		backend: backend,
		config:  config,
	}
	s.addr = s

	s.name = backend.Name()
	if s.name == "" {
		s.name = backend.FullName()
	}
	if s.name == "" {
		s.name = "Unknown Font"
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the given pixels-per-em size.
func (s *FontSource) Face(ppem float64) *Face {
	if s == nil {
		panic("font: FontSource is nil — did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()
	return &Face{source: s, ppem: ppem}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Backend returns the underlying backend for advanced use.
func (s *FontSource) Backend() Backend {
	s.copyCheck()
	return s.backend
}

func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("font: FontSource must not be copied by value")
	}
}
