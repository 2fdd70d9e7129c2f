package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algoviz/internal/automation"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/spf13/cobra"
)

var (
	sweepMin   int
	sweepMax   int
	sweepSteps int
	trials     int
	seed       int64
	sweepPlot  bool
)

func batchCommands() []*cobra.Command {
	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted YAML scenario of recordings",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "average operation counts over growing random inputs",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepMin, "min", 2, "smallest input size")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 32, "largest input size")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 8, "number of sizes")
	sweepCmd.Flags().IntVar(&trials, "trials", 10, "random inputs per size")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for time based")
	sweepCmd.Flags().BoolVar(&sweepPlot, "plot", false, "plot compares against size")

	trialsCmd := &cobra.Command{
		Use:   "trials [values...]",
		Short: "record shuffles of one input and report the spread",
		RunE:  runTrials,
	}
	trialsCmd.Flags().IntVar(&trials, "trials", 20, "number of shuffles")
	trialsCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for time based")

	return []*cobra.Command{scenarioCmd, sweepCmd, trialsCmd}
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if sc.Name != "" {
		fmt.Printf("%s: %s\n\n", sc.Name, sc.Description)
	}
	results, err := automation.RunScenario(cmd.Context(), sc, sorting.NewRegistry(), loggerFromContext(cmd.Context()))
	if len(results) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tALGORITHM\tSTEPS\tCOMPARES\tSWAPS\tSORTED")
		for i, s := range results {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%v\n", i+1, s.Algorithm, s.Steps, s.Compares, s.Swaps, s.Final)
		}
		w.Flush()
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(cmd.Context()))
	results, err := automation.RunSweep(cmd.Context(), &automation.Sweep{
		Algorithm: cfg.Algorithm,
		MinSize:   sweepMin,
		MaxSize:   sweepMax,
		NumSteps:  sweepSteps,
		Trials:    trials,
		Seed:      seed,
	}, sorting.NewRegistry(), loggerFromContext(cmd.Context()))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("swept %d sizes", len(results)))

	if sweepPlot {
		compares := make([]float64, len(results))
		for i, r := range results {
			compares[i] = r.Compares
		}
		fmt.Println(asciigraph.Plot(compares,
			asciigraph.Height(12),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s: compares for n = %d..%d", cfg.Algorithm, sweepMin, sweepMax))))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "N\tSTEPS\tCOMPARES\tSWAPS\tSHIFTS\t")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t\n", r.Size, r.Steps, r.Compares, r.Swaps, r.Shifts)
	}
	return w.Flush()
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}
	results, err := automation.RunTrials(cmd.Context(), &automation.TrialConfig{
		Algorithm: cfg.Algorithm,
		Base:      input,
		NumTrials: trials,
		Seed:      seed,
	}, sorting.NewRegistry())
	if err != nil {
		return err
	}
	lo, hi, sorted := automation.TrialStats(results)
	fmt.Printf("%s over %d shuffles of %d values\n", cfg.Algorithm, len(results), len(input))
	fmt.Printf("  compares: min %d, max %d\n", lo, hi)
	fmt.Printf("  sorted:   %d/%d\n", sorted, len(results))
	return nil
}
