package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

// pixelsPerInch converts Options sizes to go-chart's pixel canvas.
const pixelsPerInch = 96

// GoChartRenderer draws the pie with github.com/wcharczuk/go-chart.
// go-chart always starts the first wedge at 3 o'clock; StartAngle is ignored.
type GoChartRenderer struct {
	opts   Options
	logger *zap.Logger
}

// Formats implements Renderer.
func (r *GoChartRenderer) Formats() []string {
	return []string{"png", "svg"}
}

// PieChart builds the go-chart value without rendering it.
func (r *GoChartRenderer) PieChart(slices []Slice) (gochart.PieChart, error) {
	if err := validate(slices); err != nil {
		return gochart.PieChart{}, err
	}
	values := make([]gochart.Value, len(slices))
	for i, s := range slices {
		values[i] = gochart.Value{
			Value: s.Fraction,
			Label: fmt.Sprintf("%s %s", s.Label, s.PercentLabel()),
		}
	}
	return gochart.PieChart{
		Title:  r.opts.Title,
		Width:  int(r.opts.Width * pixelsPerInch),
		Height: int(r.opts.Height * pixelsPerInch),
		Values: values,
	}, nil
}

// Render implements Renderer.
func (r *GoChartRenderer) Render(w io.Writer, slices []Slice, format string) error {
	pie, err := r.PieChart(slices)
	if err != nil {
		return err
	}

	var provider gochart.RendererProvider
	switch format {
	case "png":
		provider = gochart.PNG
	case "svg":
		provider = gochart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}

	if err := pie.Render(provider, w); err != nil {
		return fmt.Errorf("write %s chart: %w", format, err)
	}
	r.logger.Debug("rendered pie chart",
		zap.String("renderer", RendererGoChart),
		zap.String("format", format),
		zap.Int("slices", len(slices)))
	return nil
}
