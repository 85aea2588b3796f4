// Package chart renders a ProportionTable as a pie chart.
//
// Two backends are available: "gonum" draws with gonum.org/v1/plot and supports
// every format that library writes (png, jpg, svg, pdf, eps, tif); "gochart"
// uses github.com/wcharczuk/go-chart and writes png or svg.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"irisprop/pkg/stats"
)

var (
	ErrUnknownRenderer = errors.New("chart: unknown renderer")
	ErrNoSlices        = errors.New("chart: nothing to draw")
	ErrFormat          = errors.New("chart: unsupported output format")
)

// Renderer names accepted by New.
const (
	RendererGonum   = "gonum"
	RendererGoChart = "gochart"
)

// Slice is one wedge of the pie.
type Slice struct {
	Label    string
	Fraction float64
}

// PercentLabel formats the wedge annotation, e.g. "33.3%".
func (s Slice) PercentLabel() string {
	return fmt.Sprintf("%.1f%%", s.Fraction*100)
}

// Options control the figure. Width and Height are in inches.
type Options struct {
	Title      string
	Width      float64
	Height     float64
	StartAngle float64 // degrees, counter-clockwise from 3 o'clock
}

// DefaultOptions mirrors a 9x6 inch figure with the first wedge at the top.
func DefaultOptions() Options {
	return Options{Title: "Iris species share", Width: 9, Height: 6, StartAngle: 90}
}

// Renderer draws slices in the given format ("png", "svg", ...).
type Renderer interface {
	Render(w io.Writer, slices []Slice, format string) error
	Formats() []string
}

// New returns the renderer registered under name.
func New(name string, opts Options, logger *zap.Logger) (Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch strings.ToLower(name) {
	case RendererGonum, "":
		return &GonumRenderer{opts: opts, logger: logger}, nil
	case RendererGoChart:
		return &GoChartRenderer{opts: opts, logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
}

// SlicesFrom converts a table into wedges, most frequent label first.
func SlicesFrom(table *stats.ProportionTable) []Slice {
	entries := table.Entries()
	out := make([]Slice, len(entries))
	for i, e := range entries {
		out[i] = Slice{Label: e.Label, Fraction: e.Fraction}
	}
	return out
}

// FormatFromPath derives the output format from the file extension.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// SaveFile renders table into path, picking the format from its extension.
func SaveFile(r Renderer, table *stats.ProportionTable, path string) error {
	format := FormatFromPath(path)
	if !supports(r, format) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrFormat, format, strings.Join(r.Formats(), ", "))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := r.Render(f, SlicesFrom(table), format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func supports(r Renderer, format string) bool {
	for _, f := range r.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

func validate(slices []Slice) error {
	if len(slices) == 0 {
		return ErrNoSlices
	}
	return nil
}
