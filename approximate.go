package fraction

import (
	"errors"
	"fmt"
	"log"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange indicates that a value, or its truncated integer part
// once folded back into the result, cannot be represented within the
// chosen integer width.
var ErrOutOfRange = errors.New("value out of range for the integer width")

// DefaultMaxIterations bounds the mediant search. Even adversarial
// inputs (large primes in the denominator at double epsilon precision)
// have been observed to converge within 21 iterations; 100 keeps the
// loop finite if floating point quirks ever stall convergence.
const DefaultMaxIterations = 100

// A Converter approximates decimal values as Rationals over the signed
// integer width T. The zero value is ready to use. A Converter holds no
// state across calls, so one may be shared freely between goroutines.
type Converter[T constraints.Signed] struct {
	// Trace, when non-nil, receives a human-readable line describing
	// the search bounds at each iteration. Tracing never changes the
	// result.
	Trace *log.Logger

	// MaxIterations overrides DefaultMaxIterations when positive.
	MaxIterations int

	// observe is a test hook invoked with the bounds and test values
	// at the top of every iteration.
	observe func(low, high Rational[T], testLow, testHigh float64)
}

// Approximate returns a rational over T whose value matches value to
// within precision, via Converter's mediant search. See the package
// Approximate function for the full contract.
func (c Converter[T]) Approximate(value, precision float64) (Rational[T], error) {
	maxT := maxOf[T]()

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Rational[T]{}, fmt.Errorf("%v is not a finite value: %w", value, ErrOutOfRange)
	}

	precision = normalizePrecision[T](precision, value)

	neg := value < 0
	value = math.Abs(value)

	// One past maxT; exactly representable as a float64 at every
	// signed width.
	limit := float64(uint64(1) << (bitsOf[T]() - 1))
	if value >= limit {
		return Rational[T]{}, fmt.Errorf("%v exceeds the maximum representable magnitude %d: %w", value, maxT, ErrOutOfRange)
	}

	if r, ok := borderline[T](value); ok {
		if neg {
			r.Num = -r.Num
		}

		return r, nil
	}

	intPart := T(value)
	frac := value - float64(intPart)
	if frac <= -1 || frac >= 1 {
		return Rational[T]{}, fmt.Errorf("fractional remainder %v exceeds magnitude 1 (maximum representable integer magnitude %d): %w", frac, maxT, ErrOutOfRange)
	}

	c.tracef("approximate: value=%v precision=%v intPart=%d frac=%v", value, precision, intPart, frac)

	low := Rational[T]{Num: 0, Denom: 1}  // "A", below frac
	high := Rational[T]{Num: 1, Denom: 1} // "B", above frac

	maxIterations := c.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	for i := 0; i < maxIterations; i++ {
		// Invariant: low.Float64() <= frac <= high.Float64().
		//
		// Solving (low.Num + x*high.Num)/(low.Denom + x*high.Denom) =
		// frac for x gives x = testLow/testHigh. Both terms are
		// non-negative under the invariant. The comparisons stay in
		// floating point on purpose: the search only needs approximate
		// direction information to pick integer step counts.
		testLow := float64(low.Denom)*frac - float64(low.Num)
		testHigh := float64(high.Num) - float64(high.Denom)*frac

		if c.observe != nil {
			c.observe(low, high, testLow, testHigh)
		}
		c.tracef("approximate: testLow=%v (%v), testHigh=%v (%v)", testLow, low, testHigh, high)

		// high is tested first so that ties prefer the high bound.
		if testHigh < precision {
			break // high is the answer
		}
		if testLow < precision {
			high = low // low is the answer
			break
		}

		// Step in whichever direction changes the most this iteration.
		// A near-target bound yields a tiny ratio, and a tiny step
		// count rounds down to leaving that bound in place; taking the
		// larger ratio instead keeps the search from crawling toward
		// the target one unit step at a time.
		x1 := testHigh / testLow
		x2 := testLow / testHigh
		c.tracef("approximate: x1=%v x2=%v", x1, x2)

		var stepped bool
		if x1 > x2 {
			high, low, stepped = step(high, low, x1)
		} else {
			low, high, stepped = step(low, high, x2)
		}
		if !stepped {
			// Another step would leave T's range: stop here and hand
			// back the current high bound, even though it may miss the
			// requested precision.
			c.tracef("approximate: next step exceeds %d, stopping at %v", maxT, high)
			break
		}
	}

	// Fold the truncated integer part back in.
	scaled, ok := mulChecked(intPart, high.Denom)
	if ok {
		high.Num, ok = addChecked(high.Num, scaled)
	}
	if !ok {
		return Rational[T]{}, fmt.Errorf("integer part %d does not fit alongside %v: %w", intPart, high, ErrOutOfRange)
	}
	if neg {
		high.Num = -high.Num
	}

	c.tracef("approximate: done: %v -> %v", value, high)

	return high, nil
}

// step narrows the bracket by adding floor(ratio) copies of keep to
// move, then rebuilds keep one copy of itself beyond the new move. Both
// replacement bounds are computed before either is committed; ok is
// false, and the inputs are returned unchanged, if any component would
// exceed T's range.
func step[T constraints.Signed](move, keep Rational[T], ratio float64) (newMove, newKeep Rational[T], ok bool) {
	n, ok := stepCount[T](ratio)
	if !ok {
		return move, keep, false
	}

	newMove, ok = move.mediant(n, keep)
	if !ok {
		return move, keep, false
	}
	newKeep, ok = newMove.mediant(1, keep)
	if !ok {
		return move, keep, false
	}

	return newMove, newKeep, true
}

// stepCount floors ratio into an integer step count, reporting failure
// when the ratio itself exceeds T's range.
func stepCount[T constraints.Signed](ratio float64) (T, bool) {
	if ratio >= float64(maxOf[T]()) {
		return 0, false
	}

	return T(ratio), true
}

func (c Converter[T]) tracef(format string, args ...interface{}) {
	if c.Trace != nil {
		c.Trace.Printf(format, args...)
	}
}

// Approximate returns a rational over T whose value matches the
// fractional part of value to within precision, with the truncated
// integer part folded back in by ordinary addition. precision is
// normalized before use: its magnitude is taken, tolerances finer than
// a float64 can express are widened, and no tolerance below 1/MaxT is
// attempted.
//
// When the capacity of T (or the iteration bound) is reached before the
// tolerance is met, the best bound found so far is returned with a nil
// error. A caller that requires a hard guarantee must compare
// |value - result.Float64()| against its own tolerance.
//
// ErrOutOfRange is returned when value is not finite or its integer
// part cannot be represented in T.
func Approximate[T constraints.Signed](value, precision float64) (Rational[T], error) {
	return Converter[T]{}.Approximate(value, precision)
}

// FromFloat64 approximates value as closely as the float64 format
// itself can distinguish.
func FromFloat64[T constraints.Signed](value float64) (Rational[T], error) {
	return Approximate[T](value, Float64Epsilon)
}

// FromFloat32 approximates value as closely as the float32 format
// itself can distinguish.
func FromFloat32[T constraints.Signed](value float32) (Rational[T], error) {
	return Approximate[T](float64(value), Float32Epsilon)
}
