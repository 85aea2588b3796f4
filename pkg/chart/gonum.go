package chart

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// GonumRenderer draws the pie with gonum.org/v1/plot.
type GonumRenderer struct {
	opts   Options
	logger *zap.Logger
}

// Formats implements Renderer.
func (r *GonumRenderer) Formats() []string {
	return []string{"png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff"}
}

// Plot builds the gonum plot without writing it.
func (r *GonumRenderer) Plot(slices []Slice) (*plot.Plot, error) {
	pie, err := NewPie(slices)
	if err != nil {
		return nil, err
	}
	pie.StartAngle = r.opts.StartAngle

	p := plot.New()
	p.Title.Text = r.opts.Title
	p.HideAxes()
	p.Add(pie)

	p.Legend.Top = true
	for i, s := range slices {
		p.Legend.Add(s.Label, pie.Thumbnail(i))
	}
	return p, nil
}

// Render implements Renderer.
func (r *GonumRenderer) Render(w io.Writer, slices []Slice, format string) error {
	p, err := r.Plot(slices)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(r.opts.Width)*vg.Inch, vg.Length(r.opts.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return fmt.Errorf("write %s chart: %w", format, err)
	}
	r.logger.Debug("rendered pie chart",
		zap.String("renderer", RendererGonum),
		zap.String("format", format),
		zap.Int("slices", len(slices)),
		zap.Int64("bytes", n))
	return nil
}
