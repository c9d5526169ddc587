package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/analysis"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

func listAlgorithms(cmd *cobra.Command, args []string) error {
	defs := registry.Search(search)
	if category != "" {
		filtered := defs[:0]
		for _, d := range defs {
			if string(d.Category) == category {
				filtered = append(filtered, d)
			}
		}
		defs = filtered
	}
	if len(defs) == 0 {
		fmt.Println("no algorithms match")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tAVERAGE\tSPACE")
	fmt.Fprintln(w, "--\t----\t--------\t-------\t-----")
	for _, d := range defs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Category, d.TimeComplexity.Average, d.SpaceComplexity)
	}
	return w.Flush()
}

func showAlgorithm(cmd *cobra.Command, args []string) error {
	def, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (try 'algoviz list')", err)
	}

	md := card(def)
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		fmt.Print(md)
		return nil
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("markdown render failed")
		fmt.Print(md)
		return nil
	}
	fmt.Print(out)
	return nil
}

func card(def *algo.Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", def.Name)
	fmt.Fprintf(&b, "_%s_ · `%s`\n\n", def.Category, def.ID)
	fmt.Fprintf(&b, "%s\n\n", def.Description)
	b.WriteString("| Best | Average | Worst | Space |\n")
	b.WriteString("|------|---------|-------|-------|\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n\n",
		def.TimeComplexity.Best, def.TimeComplexity.Average, def.TimeComplexity.Worst, def.SpaceComplexity)
	if def.IgnoresInput() {
		b.WriteString("> Runs on a built-in data set; input is ignored.\n\n")
	}
	fmt.Fprintf(&b, "```go\n%s\n```\n", strings.TrimSpace(def.Code))
	return b.String()
}

// generate resolves cfg's algorithm and produces a validated trace.
func generate(cfg *config.Config, rec *metrics.Recorder) (*algo.Definition, []step.Step, error) {
	def, err := registry.Get(cfg.Algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (try 'algoviz list')", err)
	}

	gen := def.Generate
	if rec != nil {
		gen = rec.Instrument(def)
	}
	steps := gen(cfg.Input)
	if err := step.Validate(steps); err != nil {
		return nil, nil, fmt.Errorf("invalid trace for %s: %w", def.ID, err)
	}

	log.Info().
		Str("algorithm", def.ID).
		Int("steps", len(steps)).
		Msg("trace generated")
	return def, steps, nil
}

func traceAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	def, steps, err := generate(cfg, rec)
	if err != nil {
		return err
	}

	doc := export.NewDocument(def, cfg.Input, steps)
	if outputFile != "" {
		if err := export.WriteFile(outputFile, cfg.OutputFormat, doc); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
		log.Info().Str("path", outputFile).Str("format", cfg.OutputFormat).Msg("trace saved")
	} else if err := export.Write(os.Stdout, cfg.OutputFormat, doc); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}

	if withMetrics {
		return metrics.Dump(reg, os.Stderr)
	}
	return nil
}

func playAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	theme, err := viz.GetTheme(themeName)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	def, steps, err := generate(cfg, rec)
	if err != nil {
		return err
	}

	engine := playback.New(
		playback.WithLogger(log),
		playback.WithSpeed(config.SpeedToInterval(cfg.Speed)),
		playback.WithObserver(rec),
	)
	defer engine.Close()

	interactive := !headless && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		err = runInteractive(engine, def, steps, cfg.Speed, theme)
	} else {
		err = runHeadless(engine, def, steps)
	}
	if err != nil {
		return err
	}

	if withMetrics {
		return metrics.Dump(reg, os.Stderr)
	}
	return nil
}

func runInteractive(engine *playback.Engine, def *algo.Definition, steps []step.Step, speed int, theme viz.Theme) error {
	bridge := viz.NewBridge()
	engine.AddObserver(bridge)
	engine.LoadSteps(steps)

	log.Debug().Str("session", engine.ID()).Msg("starting console")
	if _, err := tea.NewProgram(viz.NewModel(engine, bridge, def, speed).WithTheme(theme)).Run(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

func runHeadless(engine *playback.Engine, def *algo.Definition, steps []step.Step) error {
	narrator := viz.NewNarrator(os.Stdout)
	engine.AddObserver(narrator)

	fmt.Printf("%s (%d steps)\n", def.Name, len(steps))
	engine.LoadSteps(steps)
	engine.Play()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case <-narrator.Done():
	case <-interrupt:
		engine.Pause()
		log.Info().Int("index", engine.CurrentIndex()).Msg("interrupted")
	}
	return nil
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	def, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (try 'algoviz list')", err)
	}
	s, err := analysis.ParseShape(shape)
	if err != nil {
		return err
	}
	if maxSize < 1 {
		return fmt.Errorf("max-size must be positive, got %d", maxSize)
	}
	if def.IgnoresInput() {
		log.Warn().Str("algorithm", def.ID).Msg("input is ignored; every size yields the same trace")
	}

	samples := analysis.Profile(def, analysis.Sizes(maxSize), s, seed)
	operation := step.Operation(op)

	fmt.Println(analysis.Plot(samples, operation))
	fmt.Println()

	ops := operations(def, samples)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "SIZE\tSTEPS")
	for _, o := range ops {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(string(o)))
	}
	fmt.Fprintln(w)
	for _, sample := range samples {
		fmt.Fprintf(w, "%d\t%d", sample.Size, sample.Steps)
		for _, o := range ops {
			fmt.Fprintf(w, "\t%d", sample.Count(o))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if csvFile != "" {
		f, err := os.Create(csvFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := analysis.WriteCSV(f, samples, ops); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		log.Info().Str("path", csvFile).Msg("census saved")
	}
	return nil
}

// operations lists the operations of def's step kind that occur in any
// sample, in declaration order.
func operations(def *algo.Definition, samples []analysis.Sample) []step.Operation {
	var ops []step.Operation
	for _, o := range step.Operations(def.StepKind()) {
		for _, sample := range samples {
			if sample.Ops[o] > 0 {
				ops = append(ops, o)
				break
			}
		}
	}
	return ops
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM\tINPUT\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		algorithm := p.Algorithm
		if algorithm == "" {
			algorithm = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t[%s]\t%s\n", name, algorithm, config.FormatInput(p.Input), p.Description)
	}
	return w.Flush()
}
