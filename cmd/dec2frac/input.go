package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
)

// determineDelimiter returns the single most likely rune that would
// delimit the values in the reader, assuming a CSV-like file.
func determineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// loadValues reads one decimal value per row from the given column of a
// delimited file. Rows whose column does not parse as a decimal (such
// as a header line) are skipped.
func loadValues(path string, column int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	delim := determineDelimiter(f)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}

	cr := csv.NewReader(f)
	cr.Comma = delim
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if column >= len(row) {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(row[column]), 64)
		if err != nil {
			continue
		}

		values = append(values, v)
	}

	return values, nil
}
