package curve

// Config holds tuning parameters for cubic-to-quadratic conversion.
type Config struct {
	// Tolerance is the maximum distance allowed between a cubic's two
	// "shoulder" points before ApproximateCubic accepts a single
	// quadratic estimate, in glyph-unit norm. Smaller values produce a
	// tighter fit at the cost of more curves; larger values produce
	// fewer curves with more error.
	// Default: 3.0
	Tolerance float64

	// MaxDepth bounds the recursive bisection so a pathological cubic
	// can never recurse forever.
	// Default: 10
	MaxDepth int
}

// DefaultConfig returns the tolerance this package has always used: tight
// enough that the quadratic approximation error is imperceptible at
// typical glyph sizes.
func DefaultConfig() Config {
	return Config{
		Tolerance: 3.0,
		MaxDepth:  10,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Tolerance <= 0 {
		return &ConfigError{Field: "Tolerance", Reason: "must be positive"}
	}
	if c.MaxDepth < 1 {
		return &ConfigError{Field: "MaxDepth", Reason: "must be at least 1"}
	}
	if c.MaxDepth > 30 {
		return &ConfigError{Field: "MaxDepth", Reason: "must be at most 30"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "curve: invalid config." + e.Field + ": " + e.Reason
}

// ApproximateCubic converts a cubic Bezier curve (p0, p1, p2, p3) into a
// sequence of quadratic Bezier curves that approximate it, within cfg's
// tolerance. Each returned curve shares endpoints with its neighbors, so
// concatenating them reproduces the cubic's start and end points exactly.
//
// The conversion repeatedly estimates a single quadratic control point by
// averaging the curve's two "shoulder" points (p0 extended along p0->p1,
// and p3 extended along p3->p2); when those two shoulder points are
// within cfg.Tolerance of each other the estimate is accepted, otherwise
// the cubic is bisected at its midpoint via de Casteljau's algorithm and
// both halves are converted recursively. Recursion never exceeds
// cfg.MaxDepth.
func ApproximateCubic(p0, p1, p2, p3 Point, cfg Config) []Bezier2 {
	return approximateCubic(p0, p1, p2, p3, cfg.Tolerance, cfg.MaxDepth)
}

func approximateCubic(p0, p1, p2, p3 Point, tolerance float64, depth int) []Bezier2 {
	shoulder0 := p0.Add(p1.Sub(p0).Mul(1.5))
	shoulder1 := p3.Add(p2.Sub(p3).Mul(1.5))

	if depth == 0 || shoulder0.Distance(shoulder1) <= tolerance {
		ctrl := shoulder0.Lerp(shoulder1, 0.5)
		return []Bezier2{{E0: p0, C: ctrl, E1: p3}}
	}

	// de Casteljau bisection at t=0.5.
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	left := approximateCubic(p0, p01, p012, mid, tolerance, depth-1)
	right := approximateCubic(mid, p123, p23, p3, tolerance, depth-1)
	return append(left, right...)
}
