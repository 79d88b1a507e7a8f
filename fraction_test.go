package fraction

import (
	"math"
	"testing"
)

func TestRationalString(t *testing.T) {
	for _, v := range []struct {
		r        Rational[int64]
		expected string
	}{
		{Rational[int64]{Num: 3, Denom: 4}, "3/4"},
		{Rational[int64]{Num: -9, Denom: 4}, "-9/4"},
		{Rational[int64]{Num: 0, Denom: 1}, "0/1"},
	} {
		if s := v.r.String(); s != v.expected {
			t.Fatalf("expected %q, got %q", v.expected, s)
		}
	}
}

func TestRationalFloat64(t *testing.T) {
	if f := (Rational[int64]{Num: 3, Denom: 4}).Float64(); f != 0.75 {
		t.Fatalf("expected 0.75, got %v", f)
	}
	if f := (Rational[int32]{Num: 1, Denom: 3}).Float64(); math.Abs(f-1.0/3.0) > 1e-15 {
		t.Fatalf("expected 1/3, got %v", f)
	}
}

func TestMediant(t *testing.T) {
	high := Rational[int64]{Num: 1, Denom: 1}
	low := Rational[int64]{Num: 0, Denom: 1}

	// high + 2*low narrows the upper bound to 1/3.
	r, ok := high.mediant(2, low)
	if !ok {
		t.Fatal("unexpected overflow")
	}
	if r.Num != 1 || r.Denom != 3 {
		t.Fatalf("expected 1/3, got %v", r)
	}

	// The mediant of two bounds lies between them.
	a := Rational[int64]{Num: 2, Denom: 3}
	b := Rational[int64]{Num: 3, Denom: 4}
	m, ok := a.mediant(1, b)
	if !ok {
		t.Fatal("unexpected overflow")
	}
	if mf := m.Float64(); mf <= a.Float64() || mf >= b.Float64() {
		t.Fatalf("mediant %v (= %v) does not lie between %v and %v", m, mf, a, b)
	}

	// Component overflow is reported, not wrapped.
	big := Rational[int64]{Num: math.MaxInt64, Denom: 1}
	if _, ok := big.mediant(1, big); ok {
		t.Fatal("expected overflow to be detected")
	}
}
