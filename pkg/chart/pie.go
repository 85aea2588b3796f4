package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pie implements plot.Plotter, drawing wedges counter-clockwise from StartAngle.
type Pie struct {
	Slices []Slice

	// StartAngle is in degrees; 90 puts the first wedge edge at the top.
	StartAngle float64

	// PctDistance and LabelDistance place the percentage and the label,
	// as a fraction of the radius, along each wedge's bisector.
	PctDistance   float64
	LabelDistance float64

	// Margin is the share of the canvas kept free around the disc for labels.
	Margin float64

	LineStyle draw.LineStyle
	TextStyle text.Style
}

// NewPie returns a Pie with matplotlib-like label placement.
func NewPie(slices []Slice) (*Pie, error) {
	if err := validate(slices); err != nil {
		return nil, err
	}
	return &Pie{
		Slices:        slices,
		StartAngle:    90,
		PctDistance:   0.6,
		LabelDistance: 1.1,
		Margin:        0.2,
		LineStyle: draw.LineStyle{
			Color: color.White,
			Width: vg.Points(1),
		},
		TextStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(11)),
			XAlign:  text.XCenter,
			YAlign:  text.YCenter,
			Handler: plot.DefaultTextHandler,
		},
	}, nil
}

// Color returns the fill of wedge i.
func (p *Pie) Color(i int) color.Color { return plotutil.Color(i) }

// Plot implements plot.Plotter.
func (p *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	center := c.Center()
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	radius := w
	if h < radius {
		radius = h
	}
	radius = radius / 2 * vg.Length(1-p.Margin)

	angle := p.StartAngle * math.Pi / 180
	for i, s := range p.Slices {
		sweep := s.Fraction * 2 * math.Pi

		var wedge vg.Path
		wedge.Move(center)
		wedge.Arc(center, radius, angle, sweep)
		wedge.Close()

		c.SetColor(p.Color(i))
		c.Fill(wedge)
		if p.LineStyle.Width > 0 {
			c.SetLineStyle(p.LineStyle)
			c.Stroke(wedge)
		}

		mid := angle + sweep/2
		c.FillText(p.TextStyle, polar(center, radius, p.PctDistance, mid), s.PercentLabel())

		// Outer labels hug the disc: left-aligned on the right half, right-aligned on the left.
		lsty := p.TextStyle
		if math.Cos(mid) >= 0 {
			lsty.XAlign = text.XLeft
		} else {
			lsty.XAlign = text.XRight
		}
		c.FillText(lsty, polar(center, radius, p.LabelDistance, mid), s.Label)

		angle += sweep
	}
}

// DataRange implements plot.DataRanger so the axes stay centered on the disc.
func (p *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// Thumbnail returns a legend entry for wedge i.
func (p *Pie) Thumbnail(i int) plot.Thumbnailer {
	return wedgeThumb{color: p.Color(i)}
}

type wedgeThumb struct {
	color color.Color
}

func (t wedgeThumb) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(t.color, pts)
}

func polar(center vg.Point, radius vg.Length, dist, angle float64) vg.Point {
	r := radius * vg.Length(dist)
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(angle)),
		Y: center.Y + r*vg.Length(math.Sin(angle)),
	}
}
