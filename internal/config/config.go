// Package config loads irisprop settings from defaults, an optional YAML file,
// IRISPROP_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid settings")

// EnvPrefix is prepended to environment overrides, e.g. IRISPROP_CHART_OUTPUT.
const EnvPrefix = "IRISPROP"

// Settings is the full runtime configuration.
type Settings struct {
	Debug bool

	Data struct {
		Path        string // CSV file; empty loads the bundled Iris dataset
		LabelColumn string // header of the label column in Path
		Preview     int    // rows printed before the analysis, 0 disables
	}

	Chart struct {
		Output     string  // file the chart is written to, format by extension
		Title      string
		Width      float64 // inches
		Height     float64 // inches
		Renderer   string  // gonum or gochart
		StartAngle float64 // degrees
	}

	Analysis struct {
		Strict    bool // reject labels outside the Iris species
		Normalize bool // trim and lowercase labels before counting
		Describe  bool // print per-feature summary statistics
	}

	Export struct {
		Path string // optional .yaml/.yml/.json dump of the proportions
	}
}

// setDefaults registers the default value of every setting.
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("data.path", "")
	v.SetDefault("data.labelcolumn", "species")
	v.SetDefault("data.preview", 5)

	v.SetDefault("chart.output", "iris_species.png")
	v.SetDefault("chart.title", "Iris species share")
	v.SetDefault("chart.width", 9.0)
	v.SetDefault("chart.height", 6.0)
	v.SetDefault("chart.renderer", "gonum")
	v.SetDefault("chart.startangle", 90.0)

	v.SetDefault("analysis.strict", false)
	v.SetDefault("analysis.normalize", false)
	v.SetDefault("analysis.describe", false)

	v.SetDefault("export.path", "")
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads configFile, or config.yaml from the working directory and the
// user config dir when configFile is empty, and returns validated settings.
// A missing default config file is not an error.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "irisprop"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}
	if err := Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks ranges and enumerations.
func Validate(s *Settings) error {
	var errs []error
	if s.Data.LabelColumn == "" {
		errs = append(errs, errors.New("data.labelcolumn must not be empty"))
	}
	if s.Data.Preview < 0 {
		errs = append(errs, fmt.Errorf("data.preview must be >= 0, got %d", s.Data.Preview))
	}
	if s.Chart.Output == "" {
		errs = append(errs, errors.New("chart.output must not be empty"))
	}
	if s.Chart.Width <= 0 || s.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size must be positive, got %gx%g", s.Chart.Width, s.Chart.Height))
	}
	switch strings.ToLower(s.Chart.Renderer) {
	case "gonum", "gochart":
	default:
		errs = append(errs, fmt.Errorf("chart.renderer must be gonum or gochart, got %q", s.Chart.Renderer))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
