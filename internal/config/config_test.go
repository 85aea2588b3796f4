package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	s, err := Load(New(), "")
	require.NoError(t, err)

	assert.False(t, s.Debug)
	assert.Equal(t, "", s.Data.Path)
	assert.Equal(t, "species", s.Data.LabelColumn)
	assert.Equal(t, 5, s.Data.Preview)
	assert.Equal(t, "iris_species.png", s.Chart.Output)
	assert.Equal(t, "Iris species share", s.Chart.Title)
	assert.Equal(t, 9.0, s.Chart.Width)
	assert.Equal(t, 6.0, s.Chart.Height)
	assert.Equal(t, "gonum", s.Chart.Renderer)
	assert.Equal(t, 90.0, s.Chart.StartAngle)
	assert.False(t, s.Analysis.Strict)
	assert.False(t, s.Analysis.Describe)
	assert.Empty(t, s.Export.Path)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "irisprop.yaml")
	content := `
data:
  path: flowers.csv
  labelcolumn: class
  preview: 0
chart:
  output: out.svg
  renderer: gochart
analysis:
  strict: true
  describe: true
export:
  path: share.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "flowers.csv", s.Data.Path)
	assert.Equal(t, "class", s.Data.LabelColumn)
	assert.Equal(t, 0, s.Data.Preview)
	assert.Equal(t, "out.svg", s.Chart.Output)
	assert.Equal(t, "gochart", s.Chart.Renderer)
	assert.Equal(t, 9.0, s.Chart.Width, "unset keys keep defaults")
	assert.True(t, s.Analysis.Strict)
	assert.True(t, s.Analysis.Describe)
	assert.Equal(t, "share.json", s.Export.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("IRISPROP_CHART_OUTPUT", "env.pdf")
	t.Setenv("IRISPROP_ANALYSIS_STRICT", "true")

	s, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "env.pdf", s.Chart.Output)
	assert.True(t, s.Analysis.Strict)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  renderer: excel\n  width: -1\n"), 0o644))

	_, err := Load(New(), path)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "chart.renderer")
	assert.Contains(t, err.Error(), "chart size")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	valid := func() *Settings {
		s := &Settings{}
		s.Data.LabelColumn = "species"
		s.Chart.Output = "x.png"
		s.Chart.Width, s.Chart.Height = 1, 1
		s.Chart.Renderer = "gonum"
		return s
	}
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Settings) {}},
		{name: "renderer is case insensitive", mutate: func(s *Settings) { s.Chart.Renderer = "GoChart" }},
		{name: "empty label column", mutate: func(s *Settings) { s.Data.LabelColumn = "" }, wantErr: true},
		{name: "negative preview", mutate: func(s *Settings) { s.Data.Preview = -1 }, wantErr: true},
		{name: "empty output", mutate: func(s *Settings) { s.Chart.Output = "" }, wantErr: true},
		{name: "zero height", mutate: func(s *Settings) { s.Chart.Height = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := valid()
			tt.mutate(s)
			err := Validate(s)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
