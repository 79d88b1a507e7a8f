package fraction

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// bitsOf returns the width of T in bits.
func bitsOf[T constraints.Signed]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// maxOf returns the largest value representable by T.
func maxOf[T constraints.Signed]() T {
	return ^(T(1) << (bitsOf[T]() - 1))
}

// minOf returns the smallest (most negative) value representable by T.
func minOf[T constraints.Signed]() T {
	return T(1) << (bitsOf[T]() - 1)
}

// addChecked returns a+b, with ok false instead of a wrapped result
// when the sum exceeds T's range.
func addChecked[T constraints.Signed](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}

	return sum, true
}

// mulChecked returns a*b, with ok false instead of a wrapped result
// when the product exceeds T's range.
func mulChecked[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// The quotient check below cannot catch these two: Go defines
	// minT / -1 as minT.
	if min := minOf[T](); (a == -1 && b == min) || (b == -1 && a == min) {
		return 0, false
	}

	product := a * b
	if product/b != a {
		return 0, false
	}

	return product, true
}
