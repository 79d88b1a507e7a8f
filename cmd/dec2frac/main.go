// dec2frac converts decimal values into integer fractions. Values come
// from the command line or from a delimited file; results are written
// as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/carbocation/fraction"
	_ "github.com/carbocation/fraction/compileinfoprint"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type Record struct {
	Value           float64 `csv:"value"`
	Fraction        string  `csv:"fraction"`
	Approximation   float64 `csv:"approximation"`
	AbsError        float64 `csv:"abs_error"`
	WithinPrecision bool    `csv:"within_precision"`
}

func main() {
	var input, out string
	var column, bits int
	var precision float64
	var verbose bool

	flag.StringVar(&input, "input", "", "Optional delimited file of decimal values; the delimiter is auto-detected. Literal values may also be passed as arguments.")
	flag.IntVar(&column, "column", 0, "0-based column of the input file that contains the decimal values")
	flag.Float64Var(&precision, "precision", 0, "Maximum tolerated error in the fractional part. 0 uses the float64 machine epsilon.")
	flag.IntVar(&bits, "bits", 64, "Integer width for numerator and denominator (32 or 64)")
	flag.StringVar(&out, "out", "", "Output CSV file. If not specified, writes to stdout.")
	flag.BoolVar(&verbose, "verbose", false, "Trace each search iteration to stderr")
	flag.Parse()

	if input == "" && flag.NArg() == 0 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	values := make([]float64, 0, flag.NArg())
	for _, arg := range flag.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalln(pfx.Err(fmt.Errorf("argument %q is not a decimal value: %w", arg, err)))
		}
		values = append(values, v)
	}

	if input != "" {
		fromFile, err := loadValues(input, column)
		if err != nil {
			log.Fatalln(err)
		}
		values = append(values, fromFile...)
	}

	records, err := convertAll(values, precision, bits, verbose)
	if err != nil {
		log.Fatalln(err)
	}

	var outWriter io.WriteCloser = os.Stdout
	if out != "" {
		outWriter, err = os.Create(out)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}
	defer outWriter.Close()

	if err := gocsv.Marshal(&records, outWriter); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func convertAll(values []float64, precision float64, bits int, verbose bool) ([]Record, error) {
	var trace *log.Logger
	if verbose {
		trace = log.New(os.Stderr, "", 0)
	}

	records := make([]Record, 0, len(values))
	for _, value := range values {
		rec, err := convertOne(value, precision, bits, trace)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func convertOne(value, precision float64, bits int, trace *log.Logger) (Record, error) {
	if precision == 0 {
		precision = fraction.Float64Epsilon
	}

	var rendered string
	var approx float64

	switch bits {
	case 32:
		r, err := fraction.Converter[int32]{Trace: trace}.Approximate(value, precision)
		if err != nil {
			return Record{}, pfx.Err(err)
		}
		rendered, approx = r.String(), r.Float64()
	case 64:
		r, err := fraction.Converter[int64]{Trace: trace}.Approximate(value, precision)
		if err != nil {
			return Record{}, pfx.Err(err)
		}
		rendered, approx = r.String(), r.Float64()
	default:
		return Record{}, pfx.Err(fmt.Errorf("unsupported integer width %d (want 32 or 64)", bits))
	}

	absErr := math.Abs(value - approx)

	return Record{
		Value:           value,
		Fraction:        rendered,
		Approximation:   approx,
		AbsError:        absErr,
		WithinPrecision: absErr <= precision,
	}, nil
}
