package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intergen/harness"
	"github.com/katalvlaran/intergen/logging"
	"github.com/katalvlaran/intergen/probas"
)

// generateFlags holds the raw flag values; only the ones the user set
// override the configuration file.
type generateFlags struct {
	config     string
	numInts    int
	maxDepth   int
	minSymbols int
	numTries   int
	seed       uint64
	folder     string
	probas     string
	sink       string
	metricsOut string
	weights    probas.Weights
}

func newGenerateCmd() *cobra.Command {
	var fl generateFlags
	cmd := &cobra.Command{
		Use:   "generate <signature.yaml>",
		Short: "Generate distinct random interactions over a signature",
		Long: `Generate draws random interactions over the lifelines and messages of the
signature file until num-ints distinct ones were written, or until num-tries
failed or duplicate draws were spent. Each interaction is written as
i<ordinal>.hif in the output folder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFromFlags(cmd)
			if err != nil {
				return err
			}
			cfg, err := fl.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg, logger)
		},
	}

	def := harness.DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&fl.config, "config", "c", "", "YAML run configuration; flags override it")
	f.IntVar(&fl.numInts, "num-ints", def.NumInts, "Number of distinct interactions to generate")
	f.IntVar(&fl.maxDepth, "max-depth", def.MaxDepth, "Maximum depth of generated terms")
	f.IntVar(&fl.minSymbols, "min-symbols", def.MinSymbols, "Minimum number of symbols per interaction")
	f.IntVar(&fl.numTries, "num-tries", 0, "Retry budget (default num-ints × 100 × min-symbols)")
	f.Uint64Var(&fl.seed, "seed", def.Seed, "Random seed")
	f.StringVar(&fl.folder, "folder", def.Folder, "Output folder (database directory for the badger sink)")
	f.StringVar(&fl.probas, "probas", def.Probas,
		fmt.Sprintf("Symbol probabilities: one of %v or %q", probas.Presets(), probas.PresetCustom))
	f.StringVar(&fl.sink, "sink", def.Sink, "Output sink (dir, badger)")
	f.StringVar(&fl.metricsOut, "metrics-out", "", "Write Prometheus metrics of the run to this file")

	for _, c := range probas.Categories() {
		f.Float64Var(fl.weights.Ptr(c), weightFlag(c), *def.Weights.Ptr(c),
			fmt.Sprintf("Weight of %s with --probas custom", c))
	}
	return cmd
}

func weightFlag(c probas.Category) string {
	return "p" + c.String()
}

// resolve layers defaults, the --config file, then explicitly set flags.
func (fl *generateFlags) resolve(cmd *cobra.Command, signature string) (harness.Config, error) {
	cfg := harness.DefaultConfig()
	if fl.config != "" {
		loaded, err := harness.LoadConfig(fl.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.Context = signature

	f := cmd.Flags()
	if f.Changed("num-ints") {
		cfg.NumInts = fl.numInts
	}
	if f.Changed("max-depth") {
		cfg.MaxDepth = fl.maxDepth
	}
	if f.Changed("min-symbols") {
		cfg.MinSymbols = fl.minSymbols
	}
	if f.Changed("num-tries") {
		tries := fl.numTries
		cfg.NumTries = &tries
	}
	if f.Changed("seed") {
		cfg.Seed = fl.seed
	}
	if f.Changed("folder") {
		cfg.Folder = fl.folder
	}
	if f.Changed("probas") {
		cfg.Probas = fl.probas
	}
	if f.Changed("sink") {
		cfg.Sink = fl.sink
	}
	if f.Changed("metrics-out") {
		cfg.MetricsOut = fl.metricsOut
	}
	for _, c := range probas.Categories() {
		if f.Changed(weightFlag(c)) {
			*cfg.Weights.Ptr(c) = *fl.weights.Ptr(c)
		}
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, cfg harness.Config, logger *slog.Logger) error {
	res, err := harness.Run(cfg, harness.WithLogger(logger))
	out := cmd.OutOrStdout()
	for _, line := range res.Status {
		fmt.Fprintln(out, line)
	}
	return err
}

func loggerFromFlags(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	asJSON, _ := cmd.Flags().GetBool("log-json")
	return logging.New(logging.Config{Level: level, JSON: asJSON, Writer: cmd.ErrOrStderr()}), nil
}
