package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"irisprop/internal/config"
)

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// flagKeys maps command line flags to their configuration keys.
var flagKeys = map[string]string{
	"data":         "data.path",
	"label-column": "data.labelcolumn",
	"preview":      "data.preview",
	"output":       "chart.output",
	"title":        "chart.title",
	"width":        "chart.width",
	"height":       "chart.height",
	"renderer":     "chart.renderer",
	"start-angle":  "chart.startangle",
	"strict":       "analysis.strict",
	"normalize":    "analysis.normalize",
	"describe":     "analysis.describe",
	"export":       "export.path",
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var (
		verbose  bool
		cfgFile  string
		settings *config.Settings
	)

	root := &cobra.Command{
		Use:   "irisprop",
		Short: "Species proportions of the Iris dataset, as a table and a pie chart",
		Long: `irisprop loads the Iris flower dataset (or any CSV with a label column),
computes the share of every species and saves a pie chart annotated with
percentages.

Run without arguments to analyse the bundled dataset and write iris_species.png.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l

			settings, err = config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			if settings.Debug && !verbose {
				zcfg.Level.SetLevel(zapcore.DebugLevel)
			}
			logger.Debug("configuration loaded", zap.String("file", v.ConfigFileUsed()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyze(cmd.OutOrStdout(), settings)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&cfgFile, "config", "", "Config file (default: ./config.yaml or <user config dir>/irisprop/config.yaml)")
	pf.String("data", "", "CSV dataset with a header row (default: bundled Iris data)")
	pf.String("label-column", "species", "Header of the label column in --data")
	pf.Int("preview", 5, "Rows to print before the analysis (0 disables)")
	pf.Bool("normalize", false, "Trim and lowercase labels before counting")
	pf.Bool("strict", false, "Fail on labels other than setosa, versicolor and virginica")

	f := root.Flags()
	f.StringP("output", "o", "iris_species.png", "Chart file; the extension selects the format")
	f.String("title", "Iris species share", "Chart title")
	f.Float64("width", 9, "Chart width in inches")
	f.Float64("height", 6, "Chart height in inches")
	f.String("renderer", "gonum", "Chart backend: gonum or gochart")
	f.Float64("start-angle", 90, "Angle of the first wedge edge in degrees")
	f.Bool("describe", false, "Also print per-feature summary statistics")
	f.String("export", "", "Write the proportions to a .yaml or .json file")

	root.AddCommand(newDescribeCmd(&settings))

	bindFlags(v, root)
	return root
}

func newDescribeCmd(settings **config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print summary statistics of every feature column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(cmd.OutOrStdout(), *settings)
		},
	}
}

// bindFlags ties every known flag to its viper key so flags win over the
// config file and the environment.
func bindFlags(v *viper.Viper, root *cobra.Command) {
	for name, key := range flagKeys {
		flag := root.Flags().Lookup(name)
		if flag == nil {
			flag = root.PersistentFlags().Lookup(name)
		}
		if flag == nil {
			continue
		}
		_ = v.BindPFlag(key, flag)
	}
}
