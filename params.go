package curvefit

// TangentMode selects how the direction of travel at a segment's end
// anchor is computed, for corner detection and continuity constraints.
type TangentMode int8

const (
	// TangentSampled takes the direction from the curve point at t=0.95
	// to the end anchor. Default.
	TangentSampled TangentMode = iota
	// TangentAnalytic takes the curve derivative at the end anchor.
	TangentAnalytic
)

// Tuning defaults. These were calibrated together; change them as a set.
const (
	// DefaultErrThreshold is the mean squared pixel error below which a
	// refinement converges. Larger values yield fewer, looser segments.
	DefaultErrThreshold = 2.0
	// DefaultFieldRadius is the corridor half-width of the distance
	// field, in pixels. It bounds the distance the field can report and
	// therefore the pull exerted on far-off control points.
	DefaultFieldRadius = 16
	// DefaultSamples is the number of curve samples per refinement
	// iteration. Together with the iteration budget it bounds the work
	// per added point.
	DefaultSamples = 9
	// DefaultMaxIterations is the refinement budget per added point.
	// Exhausting it degrades to FailMaxed, never to blocking.
	DefaultMaxIterations = 50
	// DefaultCornerAngle is the direction change, in degrees, beyond
	// which an incoming point breaks the current segment.
	DefaultCornerAngle = 80.0
	// DefaultSimplifyRadius is the distance, in pixels, below which a
	// new sample counts as a duplicate of the active end and is dropped.
	DefaultSimplifyRadius = 2.0
)

// Params bundles the tuning constants of a fitter instance. The zero
// value of any field is replaced by its default at construction.
type Params struct {
	ErrThreshold   float64
	FieldRadius    int
	Samples        int
	MaxIterations  int
	CornerAngle    float64
	SimplifyRadius float64
	TangentMode    TangentMode
}

// DefaultParams returns the calibrated default tuning.
func DefaultParams() Params {
	return Params{
		ErrThreshold:   DefaultErrThreshold,
		FieldRadius:    DefaultFieldRadius,
		Samples:        DefaultSamples,
		MaxIterations:  DefaultMaxIterations,
		CornerAngle:    DefaultCornerAngle,
		SimplifyRadius: DefaultSimplifyRadius,
		TangentMode:    TangentSampled,
	}
}

// Out-of-range values are adapted rather than rejected, like tensions in
// MetaFont paths.
func (p Params) clamped() Params {
	if p.ErrThreshold <= 0 {
		p.ErrThreshold = DefaultErrThreshold
	}
	if p.FieldRadius < 1 {
		p.FieldRadius = DefaultFieldRadius
	}
	if p.Samples < 2 {
		p.Samples = DefaultSamples
	}
	if p.MaxIterations < 1 {
		p.MaxIterations = DefaultMaxIterations
	}
	if p.CornerAngle <= 0 || p.CornerAngle >= 180 {
		p.CornerAngle = DefaultCornerAngle
	}
	if p.SimplifyRadius < 0 {
		p.SimplifyRadius = DefaultSimplifyRadius
	}
	return p
}
