package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrNoRows         = errors.New("data: no data rows")
	ErrColumnNotFound = errors.New("data: label column not found")
	ErrBadRow         = errors.New("data: malformed row")
	ErrColumnMismatch = errors.New("data: column index out of range")
)

// Sample represents a single labeled record: numeric features plus a category.
type Sample struct {
	X     []float64
	Label string
}

// Dataset is an in-memory table of samples sharing one schema.
type Dataset struct {
	Schema  Schema
	Samples []Sample
}

// Labels extracts the label of every sample, in row order.
func (d *Dataset) Labels() []string {
	out := make([]string, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = s.Label
	}
	return out
}

// Column returns feature i of every sample.
func (d *Dataset) Column(i int) ([]float64, error) {
	if i < 0 || i >= len(d.Schema.FeatureNames) {
		return nil, fmt.Errorf("%w: %d", ErrColumnMismatch, i)
	}
	out := make([]float64, len(d.Samples))
	for r, s := range d.Samples {
		out[r] = s.X[i]
	}
	return out, nil
}

// Head returns at most n leading samples.
func (d *Dataset) Head(n int) []Sample {
	if n < 0 {
		n = 0
	}
	if n > len(d.Samples) {
		n = len(d.Samples)
	}
	return d.Samples[:n]
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Samples) }

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path, labelColumn string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	ds, err := ReadCSV(file, labelColumn)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV reads a headed CSV where labelColumn names the categorical column
// and every other column is numeric. Blank lines are skipped.
func ReadCSV(r io.Reader, labelColumn string) (*Dataset, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	labelCol := -1
	names := make([]string, 0, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == labelColumn {
			labelCol = i
			continue
		}
		names = append(names, h)
	}
	if labelCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, labelColumn)
	}

	ds := &Dataset{Schema: NewSchema(names, labelColumn)}
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRow, line, err)
		}

		x := make([]float64, 0, len(rec)-1)
		var label string
		for i, s := range rec {
			if i == labelCol {
				label = strings.TrimSpace(s)
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", ErrBadRow, line, header[i], err)
			}
			x = append(x, v)
		}
		ds.Samples = append(ds.Samples, Sample{X: x, Label: label})
	}

	if len(ds.Samples) == 0 {
		return nil, ErrNoRows
	}
	return ds, nil
}
