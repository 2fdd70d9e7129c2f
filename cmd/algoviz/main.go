package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/algoviz/internal/animate"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/parse"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/viz"
	"github.com/san-kum/algoviz/internal/watch"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
	algorithm  string
	inputText  string
	preset     string
	delayMS    int
	noPreStart bool
	theme      string
	// replay a saved trace instead of recording
	traceFile string
	outFile   string
	stepIndex int
	width     int
	height    int
	plotOps   bool
	treeSVG   bool
	compareAs []string
	plain     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "algoviz",
		Short:        "step through sorting algorithms and data structures",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			log.SetDefault(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			viz.SetTheme(theme)
			return viz.RunInteractive(sorting.NewRegistry(), vizOptions(cmd, cfg))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVarP(&algorithm, "algorithm", "a", config.DefaultAlgorithm, "sorting algorithm")
	rootCmd.PersistentFlags().StringVarP(&inputText, "input", "i", "", "input sequence, e.g. \"5, 2, 4, 1\"")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named input preset")
	rootCmd.PersistentFlags().IntVar(&delayMS, "delay", config.DefaultDelayMS, "auto-play delay in milliseconds")
	rootCmd.PersistentFlags().BoolVar(&noPreStart, "no-pre-start", false, "open the player on the first step")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list sorting algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	sortCmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "record a sort and print the result",
		RunE:  runSort,
	}

	playCmd := &cobra.Command{
		Use:   "play [values...]",
		Short: "step through a sort interactively",
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&traceFile, "trace", "", "replay a trace written by export-json")
	playCmd.Flags().BoolVar(&plain, "plain", false, "print steps as text even on a terminal")

	plotCmd := &cobra.Command{
		Use:   "plot [values...]",
		Short: "plot the sorted result or the operation counts",
		RunE:  plotSort,
	}
	plotCmd.Flags().BoolVar(&plotOps, "ops", false, "plot running compare and swap counts")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [values...]",
		Short: "export the step log to JSON",
		RunE:  exportJSON,
	}
	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [values...]",
		Short: "export the step log to CSV",
		RunE:  exportCSV,
	}
	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [values...]",
		Short: "export one step as an SVG bar chart",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "step index, negative counts from the end")
	exportGIFCmd := &cobra.Command{
		Use:   "export-gif [values...]",
		Short: "export every step as an animated GIF",
		RunE:  exportGIF,
	}
	for _, c := range []*cobra.Command{exportSVGCmd, exportGIFCmd} {
		c.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
		c.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	}
	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd, exportSVGCmd, exportGIFCmd} {
		c.Flags().StringVarP(&outFile, "output", "o", "-", "output file, - for stdout")
	}

	treeCmd := &cobra.Command{
		Use:   "tree [values...]",
		Short: "print the recursion tree of merge or quick sort as DOT",
		RunE:  exportTree,
	}
	treeCmd.Flags().BoolVar(&treeSVG, "svg", false, "render SVG with graphviz")
	treeCmd.Flags().StringVarP(&outFile, "output", "o", "-", "output file, - for stdout")

	compareCmd := &cobra.Command{
		Use:   "compare [values...]",
		Short: "record several algorithms on the same input",
		RunE:  compareSorts,
	}
	compareCmd.Flags().StringSliceVar(&compareAs, "with", nil, "algorithms to compare (default all)")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available input presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %-10s %s\n", p, parse.Format(config.GetPreset(args[0], p).Input))
			}
			return nil
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "re-record whenever an input file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  watchFile,
	}

	rootCmd.AddCommand(algorithmsCmd, sortCmd, playCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd,
		exportGIFCmd, treeCmd, compareCmd, presetsCmd, watchCmd, graphCommand(), bstCommand(), listCommand(), stackCommand(), queueCommand())
	rootCmd.AddCommand(batchCommands()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file, a preset and flags, in that
// order of increasing priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("algorithm") || cfg.Algorithm == "" {
		cfg.Algorithm = algorithm
	}
	if preset != "" {
		p := config.GetPreset(cfg.Algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Algorithm))
		}
		cfg.Input = append([]int(nil), p.Input...)
	}
	if cmd.Flags().Changed("delay") {
		cfg.DelayMS = delayMS
	}
	if cmd.Flags().Changed("no-pre-start") {
		cfg.PreStart = !noPreStart
	}
	if cmd.Flags().Changed("input") {
		seq, err := parse.Sequence(inputText)
		if err != nil {
			return nil, err
		}
		cfg.Input = seq
	}
	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		cfg.Export.Width = width
	}
	if f := cmd.Flags().Lookup("height"); f != nil && f.Changed {
		cfg.Export.Height = height
	}
	return cfg, nil
}

// resolveInput prefers positional values over the configured input.
func resolveInput(cfg *config.Config, args []string) ([]int, error) {
	if len(args) == 0 {
		return cfg.GetInput(), nil
	}
	return parse.Sequence(strings.Join(args, " "))
}

func vizOptions(cmd *cobra.Command, cfg *config.Config) viz.Options {
	return viz.Options{
		Delay:    cfg.Delay(),
		PreStart: cfg.PreStart,
		Logger:   loggerFromContext(cmd.Context()),
	}
}

// record runs the configured algorithm and validates the log it produced.
func record(cmd *cobra.Command, args []string) (*trace.Log, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	input, err := resolveInput(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	rec, err := sorting.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	lg := rec.Record(input)
	if err := lg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s produced an invalid trace: %w", cfg.Algorithm, err)
	}
	prog.done(fmt.Sprintf("recorded %d %s steps", lg.Len(), cfg.Algorithm))
	return lg, cfg, nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := sorting.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRECURSIVE\tDESCRIPTION")
	for _, name := range reg.Names() {
		fmt.Fprintf(w, "%s\t%v\t%s\n", name, sorting.Recursive(name), reg.Info(name))
	}
	return w.Flush()
}

func runSort(cmd *cobra.Command, args []string) error {
	lg, _, err := record(cmd, args)
	if err != nil {
		return err
	}
	s := sorting.Summarize(lg)
	fmt.Printf("input:    %s\n", parse.Format(lg.Input))
	fmt.Printf("sorted:   %s\n", parse.Format(s.Final))
	fmt.Printf("steps:    %d\n", s.Steps)
	fmt.Printf("compares: %d\n", s.Compares)
	fmt.Printf("swaps:    %d\n", s.Swaps)
	if s.Shifts > 0 {
		fmt.Printf("shifts:   %d\n", s.Shifts)
	}
	if s.Nodes > 0 {
		fmt.Printf("calls:    %d\n", s.Nodes)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	viz.SetTheme(theme)

	if traceFile != "" {
		lg, err := export.LoadJSON(traceFile)
		if err != nil {
			return err
		}
		logger.Info("replaying trace", "file", traceFile, "algorithm", lg.Algorithm, "steps", lg.Len())
		return playText(cmd.Context(), lg, cfg)
	}

	input, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}
	reg := sorting.NewRegistry()

	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		rec, err := reg.Get(cfg.Algorithm)
		if err != nil {
			return err
		}
		return playText(cmd.Context(), rec.Record(input), cfg)
	}

	var popts []player.Option
	if !cfg.PreStart {
		popts = append(popts, player.WithoutPreStart())
	}
	// the TUI owns the terminal, so keep the session quiet
	sess, err := session.New(reg, cfg.Algorithm, log.New(io.Discard), popts...)
	if err != nil {
		return err
	}
	if err := sess.Load(input); err != nil {
		return err
	}
	return viz.Play(reg, sess, vizOptions(cmd, cfg))
}

// playText prints every step of lg as a line, advancing on a timer.
func playText(ctx context.Context, lg *trace.Log, cfg *config.Config) error {
	r := viz.NewTextRenderer(os.Stdout, lg.Len())
	opts := []player.Option{player.WithRenderer(r), player.WithLogger(loggerFromContext(ctx))}
	if !cfg.PreStart {
		opts = append(opts, player.WithoutPreStart())
	}
	p := player.New(lg, opts...)
	r.Attach(p)

	moves := make([]int, 0, lg.Len())
	for i := p.Cursor() + 1; i < lg.Len(); i++ {
		moves = append(moves, i)
	}
	return ignoreCancel(animate.Run(ctx, moves, animate.Options{
		Delay:  cfg.Delay(),
		OnIdle: p.Reset,
		Logger: loggerFromContext(ctx),
	}, func(int) { p.Next() }))
}

func plotSort(cmd *cobra.Command, args []string) error {
	lg, cfg, err := record(cmd, args)
	if err != nil {
		return err
	}
	if plotOps {
		var compares, swaps []float64
		var c, s float64
		for _, step := range lg.Steps {
			switch step.Kind {
			case trace.KindCompare:
				c++
			case trace.KindSwap, trace.KindPlacePivot, trace.KindShift:
				s++
			}
			compares = append(compares, c)
			swaps = append(swaps, s)
		}
		graph := asciigraph.PlotMany([][]float64{compares, swaps},
			asciigraph.Height(15),
			asciigraph.Width(70),
			asciigraph.SeriesColors(asciigraph.Yellow, asciigraph.Red),
			asciigraph.SeriesLegends("compares", "moves"),
			asciigraph.Caption(fmt.Sprintf("%s: operations per step", cfg.Algorithm)))
		fmt.Println(graph)
		return nil
	}

	values := make([]float64, 0, len(lg.Input))
	for _, v := range lg.Final() {
		values = append(values, float64(v))
	}
	if len(values) == 0 {
		fmt.Println("nothing to plot")
		return nil
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s: sorted %s", cfg.Algorithm, parse.Format(lg.Input))))
	fmt.Println(graph)
	return nil
}

func compareSorts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}
	reg := sorting.NewRegistry()
	names := compareAs
	if len(names) == 0 {
		names = reg.Names()
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	results, err := sorting.Compare(cmd.Context(), reg, names, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("compared %d algorithms", len(results)))

	fmt.Printf("input: %s\n\n", parse.Format(input))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARES\tSWAPS\tSHIFTS\tCALLS\t")
	for _, s := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t\n", s.Algorithm, s.Steps, s.Compares, s.Swaps, s.Shifts, s.Nodes)
	}
	return w.Flush()
}

func watchFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	rec, err := sorting.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return err
	}

	w, err := watch.New(args[0], cfg.Debounce(), logger, func(seq []int) {
		lg := rec.Record(seq)
		s := sorting.Summarize(lg)
		logger.Info("recorded", "algorithm", cfg.Algorithm, "steps", s.Steps, "compares", s.Compares, "swaps", s.Swaps)
		fmt.Printf("%s -> %s\n", parse.Format(seq), parse.Format(s.Final))
	})
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching", "file", args[0], "algorithm", cfg.Algorithm)
	if err := w.Run(cmd.Context()); err != nil && cmd.Context().Err() == nil {
		return err
	}
	return nil
}
