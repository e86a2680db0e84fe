package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vdobler/linechart/data"
)

// LoadCSV reads a series from the CSV file path.
func LoadCSV(path string) (*data.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ReadCSV reads label,value rows. A first row whose value is not a number
// is taken as a header and skipped. Values may be "NaN" or "Inf"; such a
// series is read but cannot be drawn as a line.
func ReadCSV(r io.Reader) (*data.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	s := &data.Series{}
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("config: csv: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if row == 0 {
				continue // header
			}
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("config: csv line %d: value %q is not a number", line, rec[1])
		}
		s.Labels = append(s.Labels, rec[0])
		s.Values = append(s.Values, v)
	}
	return s, nil
}
