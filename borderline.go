package fraction

import (
	"math"

	"golang.org/x/exp/constraints"
)

// normalizePrecision forces the requested tolerance into the band the
// search can honor. Negative tolerances are treated as their magnitude.
// A double carries roughly 15-16 significant digits, so a tolerance
// more than 15 orders of magnitude below the value is unanswerable and
// is widened to value/1e16. No fraction over T can distinguish values
// closer than 1/MaxT, so that is the floor.
func normalizePrecision[T constraints.Signed](precision, value float64) float64 {
	precision = math.Abs(precision)
	if math.Abs(value)/precision > 1e15 {
		precision = math.Abs(value) / 1e16
	}
	if floor := 1 / float64(maxOf[T]()); precision < floor {
		precision = floor
	}

	return precision
}

// borderline short-circuits non-negative values at or below 1/MaxT,
// where the search itself would degenerate: below half that threshold
// the nearest representable fraction is 0/1, otherwise it is 1/MaxT.
func borderline[T constraints.Signed](value float64) (Rational[T], bool) {
	maxT := maxOf[T]()
	threshold := 1 / float64(maxT)

	if value > threshold {
		return Rational[T]{}, false
	}
	if value < threshold/2 {
		return Rational[T]{Num: 0, Denom: 1}, true
	}

	return Rational[T]{Num: 1, Denom: maxT}, true
}
