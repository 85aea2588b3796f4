// Package dataset provides bundled reference datasets.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"irisprop/pkg/data"
	"irisprop/pkg/dataprep"
)

//go:embed iris.csv
var irisCSV []byte

// ErrBadHeader is returned when the leading metadata row cannot be parsed.
var ErrBadHeader = errors.New("dataset: malformed metadata header")

// IrisFeatureNames are the measurement columns of the Iris dataset, in centimetres.
var IrisFeatureNames = []string{
	"sepal length (cm)",
	"sepal width (cm)",
	"petal length (cm)",
	"petal width (cm)",
}

// IrisSpecies is the label alphabet of the Iris dataset, indexed by target code.
var IrisSpecies = []string{"setosa", "versicolor", "virginica"}

// LoadIris returns the 150-sample Iris dataset with species names as labels.
func LoadIris() (*data.Dataset, error) {
	return ReadTargetCSV(bytes.NewReader(irisCSV), IrisFeatureNames)
}

// ReadTargetCSV reads the layout used by scikit-learn's bundled CSVs: a first row
// of "n_samples,n_features,target_name..." followed by rows of n_features values
// and an integer target code.
func ReadTargetCSV(r io.Reader, featureNames []string) (*data.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	meta, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if len(meta) < 3 {
		return nil, fmt.Errorf("%w: want at least 3 fields, got %d", ErrBadHeader, len(meta))
	}
	nSamples, err := strconv.Atoi(strings.TrimSpace(meta[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: n_samples: %v", ErrBadHeader, err)
	}
	nFeatures, err := strconv.Atoi(strings.TrimSpace(meta[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: n_features: %v", ErrBadHeader, err)
	}
	if len(featureNames) != nFeatures {
		return nil, fmt.Errorf("%w: %d feature names for %d features", ErrBadHeader, len(featureNames), nFeatures)
	}
	targetNames := make([]string, 0, len(meta)-2)
	for _, n := range meta[2:] {
		targetNames = append(targetNames, strings.TrimSpace(n))
	}

	features := make([][]float64, 0, nSamples)
	targets := make([]int, 0, nSamples)
	for row := 1; ; row++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", data.ErrBadRow, row, err)
		}
		if len(rec) != nFeatures+1 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", data.ErrBadRow, row, len(rec), nFeatures+1)
		}
		x := make([]float64, nFeatures)
		for i := 0; i < nFeatures; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", data.ErrBadRow, row, i, err)
			}
			x[i] = v
		}
		code, err := strconv.Atoi(strings.TrimSpace(rec[nFeatures]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d target: %v", data.ErrBadRow, row, err)
		}
		features = append(features, x)
		targets = append(targets, code)
	}
	if len(targets) == 0 {
		return nil, data.ErrNoRows
	}
	if len(targets) != nSamples {
		return nil, fmt.Errorf("%w: header declares %d samples, found %d", ErrBadHeader, nSamples, len(targets))
	}

	labels, err := dataprep.DecodeLabels(targets, targetNames)
	if err != nil {
		return nil, err
	}

	ds := &data.Dataset{
		Schema:  data.NewSchema(featureNames, "species"),
		Samples: make([]data.Sample, len(labels)),
	}
	for i := range labels {
		ds.Samples[i] = data.Sample{X: features[i], Label: labels[i]}
	}
	return ds, nil
}
