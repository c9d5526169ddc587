package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/viz"
)

var version = "dev"

var (
	configFile string
	logLevel   string
	logFormat  string

	inputText    string
	preset       string
	speed        int
	outputFormat string
	withMetrics  bool
	headless     bool
	themeName    string

	category string
	search   string

	maxSize int
	shape   string
	seed    int64
	op      string
	csvFile string

	outputFile string

	log      = logging.Nop()
	registry = algo.NewRegistry()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "algoviz",
		Short:         "step-by-step algorithm traces and playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, logFormat, os.Stderr)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (console|json)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}
	listCmd.Flags().StringVar(&category, "category", "", "only this category")
	listCmd.Flags().StringVar(&search, "search", "", "filter by name, description or category")

	showCmd := &cobra.Command{
		Use:   "show [algorithm]",
		Short: "describe an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  showAlgorithm,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "generate a trace and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceAlgorithm,
	}
	addInputFlags(traceCmd)
	traceCmd.Flags().StringVar(&outputFormat, "format", config.DefaultOutputFormat, "output format (json|yaml)")
	traceCmd.Flags().BoolVar(&withMetrics, "metrics", false, "dump generation metrics to stderr")
	traceCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the trace to a file instead of stdout")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play a trace in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playAlgorithm,
	}
	addInputFlags(playCmd)
	playCmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "playback speed (1-10)")
	playCmd.Flags().BoolVar(&headless, "headless", false, "print narration instead of the interactive console")
	playCmd.Flags().BoolVar(&withMetrics, "metrics", false, "dump playback metrics to stderr on exit")
	playCmd.Flags().StringVar(&themeName, "theme", viz.Themes[0].Name, "console theme ("+strings.Join(viz.ThemeNames(), "|")+")")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "count steps across input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().IntVar(&maxSize, "max-size", 16, "largest input size")
	benchCmd.Flags().StringVar(&shape, "shape", "random", "input shape (random|sorted|reversed)")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	benchCmd.Flags().StringVar(&op, "op", "", "operation to plot (default: all steps)")
	benchCmd.Flags().StringVar(&csvFile, "csv", "", "also write the census to a csv file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "algoviz %s\n", version)
		},
	}

	rootCmd.AddCommand(listCmd, showCmd, traceCmd, playCmd, benchCmd, presetsCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&inputText, "input", "", "comma separated integers")
	cmd.Flags().StringVar(&preset, "preset", "", "named input preset")
}

// resolveConfig layers defaults, the config file, a preset, the positional
// algorithm and finally any flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || configFile == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") || configFile == "" {
		cfg.LogFormat = logFormat
	}
	l, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}
	log = l

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
		cfg.ApplyPreset(p)
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if flags.Changed("input") {
		values, err := config.ParseInput(inputText)
		if err != nil {
			log.Warn().Err(err).Str("input", config.FormatInput(cfg.Input)).Msg("keeping previous input")
		} else {
			cfg.Input = values
		}
	}
	if flags.Lookup("speed") != nil && flags.Changed("speed") {
		cfg.Speed = config.ClampSpeed(speed)
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.OutputFormat = outputFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("algorithm", cfg.Algorithm).
		Str("input", config.FormatInput(cfg.Input)).
		Int("speed", cfg.Speed).
		Msg("config resolved")
	return cfg, nil
}
