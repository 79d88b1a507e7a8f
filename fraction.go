// Package fraction converts finite decimal values into rational
// approximations with integer numerator and denominator.
//
// The conversion does not build a continued fraction. Instead it runs a
// mediant (Stern-Brocot) binary search over numerator/denominator
// vectors: two bounding fractions that bracket the target are repeatedly
// combined by vector addition until one of them reproduces the target
// within the requested precision, or until taking another step would
// exceed the capacity of the chosen integer width. The approach and its
// refinements come from a Dr. Math thread on converting wind ratios in
// the textile industry:
// https://web.archive.org/web/20181018112004/http://mathforum.org/library/drmath/view/51886.html
//
// The integer width is a type parameter, so a caller that needs the
// numerator and denominator to fit in, say, an int32 gear table can ask
// for exactly that and rely on the search stopping before it overflows.
package fraction

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A Rational represents the value Num/Denom over the signed integer
// width T. The denominator is always positive. The pair is not
// guaranteed to be in lowest terms, although the mediant construction
// only ever adds vectors and so tends to land on (or near) them.
type Rational[T constraints.Signed] struct {
	Num   T
	Denom T
}

// Float64 returns the fraction's value as a float64.
func (r Rational[T]) Float64() float64 {
	return float64(r.Num) / float64(r.Denom)
}

// String renders the fraction as "numerator/denominator".
func (r Rational[T]) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Denom)
}

// mediant combines r with n copies of s by vector addition, yielding
// ((r.Num + n*s.Num) / (r.Denom + n*s.Denom)). This is not ordinary
// fraction addition: the result's value always lies between the values
// of r and s. ok is false if any component would exceed T's range.
func (r Rational[T]) mediant(n T, s Rational[T]) (out Rational[T], ok bool) {
	num, ok := mulChecked(n, s.Num)
	if !ok {
		return out, false
	}
	denom, ok := mulChecked(n, s.Denom)
	if !ok {
		return out, false
	}
	if out.Num, ok = addChecked(r.Num, num); !ok {
		return out, false
	}
	if out.Denom, ok = addChecked(r.Denom, denom); !ok {
		return out, false
	}

	return out, true
}
