package contour

// Params configures silhouette classification.
type Params struct {
	// Binarization: pixels brighter than Threshold become MaxValue.
	Threshold float32
	MaxValue  float32

	// Polygon approximation tolerance as a fraction of the contour perimeter.
	EpsilonFraction float64

	// Inclusive width/height band for calling a quadrilateral a square.
	SquareMin float64
	SquareMax float64

	// Leading contours to ignore; the first one is the image frame.
	SkipContours int
}

// DefaultParams returns the classification parameters for white-background
// silhouettes with a dark shape.
func DefaultParams() Params {
	return Params{
		Threshold:       220,
		MaxValue:        255,
		EpsilonFraction: 0.01,
		SquareMin:       0.95,
		SquareMax:       1.05,
		SkipContours:    1,
	}
}

// WithThreshold returns a copy of params with a different binarization threshold.
func (p Params) WithThreshold(threshold float32) Params {
	p.Threshold = threshold
	return p
}

// WithSquareBand returns a copy of params with a different square aspect band.
func (p Params) WithSquareBand(minRatio, maxRatio float64) Params {
	p.SquareMin = minRatio
	p.SquareMax = maxRatio
	return p
}

// WithEpsilonFraction returns a copy of params with a different approximation tolerance.
func (p Params) WithEpsilonFraction(fraction float64) Params {
	p.EpsilonFraction = fraction
	return p
}
