package fraction

// Machine epsilons of the IEEE 754 floating point formats, used as the
// default precision when the caller supplies a value but no tolerance.
const (
	// Float32Epsilon is the gap between 1.0 and the next float32
	// (FLT_EPSILON).
	Float32Epsilon = 0x1p-23

	// Float64Epsilon is the gap between 1.0 and the next float64
	// (DBL_EPSILON).
	Float64Epsilon = 0x1p-52
)
