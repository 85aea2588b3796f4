package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"irisprop/pkg/stats"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func irisTable(t *testing.T) *stats.ProportionTable {
	t.Helper()
	labels := make([]string, 0, 150)
	for _, s := range []string{"setosa", "versicolor", "virginica"} {
		for i := 0; i < 50; i++ {
			labels = append(labels, s)
		}
	}
	table, err := stats.Proportions(labels)
	require.NoError(t, err)
	return table
}

func TestSlicePercentLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fraction float64
		want     string
	}{
		{fraction: 1.0 / 3.0, want: "33.3%"},
		{fraction: 0.9, want: "90.0%"},
		{fraction: 1, want: "100.0%"},
		{fraction: 0.004, want: "0.4%"},
	}
	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, Slice{Fraction: tt.fraction}.PercentLabel())
	}
}

func TestSlicesFrom(t *testing.T) {
	t.Parallel()
	table, err := stats.Proportions([]string{"b", "a", "a", "a"})
	require.NoError(t, err)

	assert.Equal(t, []Slice{
		{Label: "a", Fraction: 0.75},
		{Label: "b", Fraction: 0.25},
	}, SlicesFrom(table))
}

func TestNew(t *testing.T) {
	t.Parallel()
	r, err := New("gonum", DefaultOptions(), nil)
	require.NoError(t, err)
	assert.IsType(t, &GonumRenderer{}, r)

	r, err = New("GoChart", DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &GoChartRenderer{}, r)

	_, err = New("matplotlib", DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrUnknownRenderer)
}

func TestRenderers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		renderer string
		format   string
		check    func(t *testing.T, out []byte)
	}{
		{renderer: RendererGonum, format: "png", check: func(t *testing.T, out []byte) {
			assert.True(t, bytes.HasPrefix(out, pngMagic))
		}},
		{renderer: RendererGonum, format: "svg", check: func(t *testing.T, out []byte) {
			assert.Contains(t, string(out), "<svg")
			assert.Contains(t, string(out), "33.3%")
			assert.Contains(t, string(out), "versicolor")
		}},
		{renderer: RendererGoChart, format: "png", check: func(t *testing.T, out []byte) {
			assert.True(t, bytes.HasPrefix(out, pngMagic))
		}},
		{renderer: RendererGoChart, format: "svg", check: func(t *testing.T, out []byte) {
			assert.Contains(t, string(out), "<svg")
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.renderer+"/"+tt.format, func(t *testing.T) {
			t.Parallel()
			r, err := New(tt.renderer, DefaultOptions(), zap.NewNop())
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, SlicesFrom(irisTable(t)), tt.format))
			tt.check(t, buf.Bytes())
		})
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()
	for _, name := range []string{RendererGonum, RendererGoChart} {
		r, err := New(name, DefaultOptions(), nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		assert.ErrorIs(t, r.Render(&buf, nil, "png"), ErrNoSlices, name)
		assert.ErrorIs(t, r.Render(&buf, []Slice{{Label: "a", Fraction: 1}}, "bmp"), ErrFormat, name)
	}
}

func TestSaveFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r, err := New(RendererGonum, DefaultOptions(), nil)
	require.NoError(t, err)

	path := filepath.Join(dir, "species.PNG")
	require.NoError(t, SaveFile(r, irisTable(t), path))
	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pngMagic))

	gc, err := New(RendererGoChart, DefaultOptions(), nil)
	require.NoError(t, err)
	bad := filepath.Join(dir, "species.pdf")
	assert.ErrorIs(t, SaveFile(gc, irisTable(t), bad), ErrFormat)
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err), "no file should be left behind")
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "png", FormatFromPath("out/chart.PNG"))
	assert.Equal(t, "svg", FormatFromPath("chart.svg"))
	assert.Equal(t, "", FormatFromPath("chart"))
}

func TestPieGeometry(t *testing.T) {
	t.Parallel()
	_, err := NewPie(nil)
	assert.ErrorIs(t, err, ErrNoSlices)

	pie, err := NewPie([]Slice{{Label: "a", Fraction: 0.25}, {Label: "b", Fraction: 0.75}})
	require.NoError(t, err)
	assert.Equal(t, 90.0, pie.StartAngle)
	assert.NotEqual(t, pie.Color(0), pie.Color(1))

	xmin, xmax, ymin, ymax := pie.DataRange()
	assert.Equal(t, []float64{-1, 1, -1, 1}, []float64{xmin, xmax, ymin, ymax})

	top := polar(vg.Point{X: 10, Y: 10}, 4, 1, math.Pi/2)
	assert.InDelta(t, 10, float64(top.X), 1e-9)
	assert.InDelta(t, 14, float64(top.Y), 1e-9)

	left := polar(vg.Point{}, 2, 0.5, math.Pi)
	assert.InDelta(t, -1, float64(left.X), 1e-9)
	assert.InDelta(t, 0, float64(left.Y), 1e-9)
}

func TestGoChartValues(t *testing.T) {
	t.Parallel()
	r := &GoChartRenderer{opts: DefaultOptions(), logger: zap.NewNop()}
	pie, err := r.PieChart(SlicesFrom(irisTable(t)))
	require.NoError(t, err)

	assert.Equal(t, 864, pie.Width)
	assert.Equal(t, 576, pie.Height)
	require.Len(t, pie.Values, 3)
	assert.Equal(t, "setosa 33.3%", pie.Values[0].Label)
}
