// fracsoak throws randomized decimal values at the fraction
// approximator and summarizes how well the results track a tolerance.
// Running it with a large -n (hundreds of millions of doubles, every
// result checked against the precision) is our standing regression
// check on the search itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/fraction"
	_ "github.com/carbocation/fraction/compileinfoprint"
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	var n, bits, buckets int
	var seed int64
	var precision, scale, tolerance float64

	flag.IntVar(&n, "n", 1000000, "Number of random values to convert")
	flag.Int64Var(&seed, "seed", 1, "Seed for the value generator")
	flag.IntVar(&bits, "bits", 64, "Integer width for numerator and denominator (32 or 64)")
	flag.Float64Var(&precision, "precision", 0, "Precision passed to the approximator. 0 uses the float64 machine epsilon.")
	flag.Float64Var(&scale, "scale", 1.0, "Magnitude of the generated values")
	flag.Float64Var(&tolerance, "tolerance", 1e-9, "Absolute error above which a conversion counts as a violation")
	flag.IntVar(&buckets, "buckets", 25, "Histogram bucket count")
	flag.Parse()

	if err := run(n, seed, bits, precision, scale, tolerance, buckets); err != nil {
		log.Fatalln(err)
	}
}

func run(n int, seed int64, bits int, precision, scale, tolerance float64, buckets int) error {
	if precision == 0 {
		precision = fraction.Float64Epsilon
	}

	rng := rand.New(rand.NewSource(seed))

	absErrors := make([]float64, 0, n)
	violations := 0
	failures := 0

	for i := 0; i < n; i++ {
		value := (rng.Float64()*2 - 1) * scale

		var approx float64
		var err error
		switch bits {
		case 32:
			var r fraction.Rational[int32]
			r, err = fraction.Approximate[int32](value, precision)
			approx = r.Float64()
		case 64:
			var r fraction.Rational[int64]
			r, err = fraction.Approximate[int64](value, precision)
			approx = r.Float64()
		default:
			return fmt.Errorf("unsupported integer width %d (want 32 or 64)", bits)
		}
		if err != nil {
			failures++
			continue
		}

		absErr := math.Abs(value - approx)
		absErrors = append(absErrors, absErr)
		if absErr > tolerance {
			violations++
		}
	}

	fmt.Printf("samples: %d\n", n)
	fmt.Printf("conversion failures: %d\n", failures)
	fmt.Printf("violations above %v: %d\n", tolerance, violations)

	mean, stddev := stat.MeanStdDev(absErrors, nil)
	fmt.Printf("abs error mean: %v, stddev: %v\n", mean, stddev)

	data := stats.LoadRawData(absErrors)
	for _, p := range []float64{50, 90, 99} {
		v, err := data.Percentile(p)
		if err != nil {
			return pfx.Err(err)
		}
		fmt.Printf("abs error p%.0f: %v\n", p, v)
	}
	max, err := data.Max()
	if err != nil {
		return pfx.Err(err)
	}
	fmt.Printf("abs error max: %v\n", max)

	hist := histogram.Hist(buckets, absErrors)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		return pfx.Err(err)
	}

	if violations > 0 {
		return fmt.Errorf("%d of %d conversions exceeded the tolerance %v", violations, n, tolerance)
	}

	return nil
}
