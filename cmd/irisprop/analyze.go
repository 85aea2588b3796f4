package main

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"irisprop/internal/config"
	"irisprop/pkg/chart"
	"irisprop/pkg/data"
	"irisprop/pkg/dataprep"
	"irisprop/pkg/dataset"
	"irisprop/pkg/report"
	"irisprop/pkg/stats"
)

// loadDataset reads the configured CSV, or the bundled Iris data when no path is set.
func loadDataset(s *config.Settings) (*data.Dataset, string, error) {
	if s.Data.Path == "" {
		ds, err := dataset.LoadIris()
		if err != nil {
			return nil, "", fmt.Errorf("load bundled iris dataset: %w", err)
		}
		return ds, "iris", nil
	}
	ds, err := data.LoadCSV(s.Data.Path, s.Data.LabelColumn)
	if err != nil {
		return nil, "", err
	}
	return ds, s.Data.Path, nil
}

// proportions extracts the labels of ds and computes their shares.
func proportions(ds *data.Dataset, s *config.Settings) (*stats.ProportionTable, error) {
	labels := ds.Labels()
	if s.Analysis.Normalize {
		labels = dataprep.NormalizeLabels(labels)
	}
	var opts []stats.ProportionOption
	if s.Analysis.Strict {
		opts = append(opts, stats.WithAlphabet(dataset.IrisSpecies...))
	}
	table, err := stats.Proportions(labels, opts...)
	if err != nil {
		return nil, fmt.Errorf("compute proportions: %w", err)
	}
	return table, nil
}

// analyze runs the whole pipeline: load, preview, proportions, chart, export.
func analyze(w io.Writer, s *config.Settings) error {
	ds, source, err := loadDataset(s)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		zap.String("source", source),
		zap.Int("samples", ds.Len()),
		zap.Strings("features", ds.Schema.FeatureNames))

	if s.Data.Preview > 0 {
		if err := report.Preview(w, ds, s.Data.Preview); err != nil {
			return err
		}
	}

	table, err := proportions(ds, s)
	if err != nil {
		return err
	}
	if !table.Balanced() {
		logger.Warn("proportions do not sum to one", zap.Float64("sum", table.Sum()))
	}
	if err := report.Proportions(w, table); err != nil {
		return err
	}

	if s.Analysis.Describe {
		if err := describeDataset(w, ds); err != nil {
			return err
		}
	}

	opts := chart.Options{
		Title:      s.Chart.Title,
		Width:      s.Chart.Width,
		Height:     s.Chart.Height,
		StartAngle: s.Chart.StartAngle,
	}
	renderer, err := chart.New(s.Chart.Renderer, opts, logger)
	if err != nil {
		return err
	}
	if err := chart.SaveFile(renderer, table, s.Chart.Output); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	logger.Info("chart saved",
		zap.String("path", s.Chart.Output),
		zap.String("renderer", strings.ToLower(s.Chart.Renderer)))
	fmt.Fprintf(w, "Saved pie chart to %s\n", s.Chart.Output)

	if s.Export.Path != "" {
		if err := report.Export(s.Export.Path, source, table); err != nil {
			return fmt.Errorf("export proportions: %w", err)
		}
		logger.Info("proportions exported", zap.String("path", s.Export.Path))
	}
	return nil
}

// describe prints only the feature summary.
func describe(w io.Writer, s *config.Settings) error {
	ds, _, err := loadDataset(s)
	if err != nil {
		return err
	}
	return describeDataset(w, ds)
}

func describeDataset(w io.Writer, ds *data.Dataset) error {
	summaries, err := report.Summaries(ds)
	if err != nil {
		return err
	}
	return report.Describe(w, summaries)
}
