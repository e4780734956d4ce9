package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"splitlab/split"
)

// LoadCSV reads a two-column x,label file into a sample. A header row is
// skipped if its first field does not parse as a number. Files with a UTF-8
// BOM or UTF-16 encoding (as written by spreadsheet exports) are decoded
// transparently.
func LoadCSV(path string) (split.Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file)
}

// ReadCSV parses x,label records from r. See LoadCSV.
func ReadCSV(r io.Reader) (split.Sample, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(r, decoder))
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	sample := make(split.Sample, 0)
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++

		x, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			if line == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("line %d: bad x value %q", line, record[0])
		}
		label, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad label %q", line, record[1])
		}
		sample = append(sample, split.Observation{X: x, Label: label})
	}

	if len(sample) == 0 {
		return nil, errors.New("csv contains no observations")
	}
	return sample, nil
}
