package font

import "github.com/gogpu/vgtext/curve"

// Backend is the capability set a font parsing implementation exposes.
// It is deliberately small and flat: nothing in this package asks "is
// this an sfnt font" or "is this a truetype font" and branches on the
// answer. Both shipped backends (sfnt-based and truetype-based)
// implement exactly this interface and nothing else is assumed about
// them.
type Backend interface {
	// Name returns the font family name, or "" if unavailable.
	Name() string

	// FullName returns the full font name, or "" if unavailable.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the font's units-per-em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, or 0 (.notdef) if
	// the font has no glyph for it.
	GlyphIndex(r rune) GlyphID

	// Advance returns the horizontal advance of a glyph at the given
	// pixels-per-em size.
	Advance(gid GlyphID, ppem float64) float64

	// Metrics returns font-level metrics at the given pixels-per-em size.
	Metrics(ppem float64) FontMetrics

	// Outline extracts a glyph's contours, bounds and advance at the
	// given pixels-per-em size. Returns an outline with no contours
	// (not an error) for glyphs with no ink, like space.
	Outline(gid GlyphID, ppem float64) (*GlyphOutline, error)
}

// BackendFactory parses font data into a Backend. cubicConfig is the
// cubic-to-quadratic tolerance a backend should use if it ever needs to
// approximate a cubic segment; backends whose outline format has no
// cubics (the truetype backend) ignore it.
type BackendFactory func(data []byte, cubicConfig curve.Config) (Backend, error)

// backendRegistry holds registered backend factories, keyed by name.
var backendRegistry = map[string]BackendFactory{}

// RegisterBackend registers a backend factory under a name so it can be
// selected with WithBackend. Both shipped backends self-register via
// init().
func RegisterBackend(name string, factory BackendFactory) {
	backendRegistry[name] = factory
}

func getBackendFactory(name string) (BackendFactory, bool) {
	f, ok := backendRegistry[name]
	return f, ok
}

// defaultBackendName is used when no WithBackend option is given.
const defaultBackendName = "sfnt"
