// Package automation runs batches of recordings: scripted scenarios read
// from YAML, input-size sweeps and randomized trials.
package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/parse"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoInput  = errors.New("automation: step has neither input nor preset")
	ErrBadSweep = errors.New("automation: invalid sweep range")
	ErrNoTrials = errors.New("automation: trial count must be positive")
)

// Scenario is a scripted sequence of recordings.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep records one algorithm on one input. Input is parsed the way
// the interactive prompt parses it; Preset names an entry of config.Presets
// and is used when Input is empty.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Input     string `yaml:"input"`
	Preset    string `yaml:"preset"`
	SaveAs    string `yaml:"save_as"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &scenario, nil
}

func (s ScenarioStep) input() ([]int, error) {
	if s.Input != "" {
		return parse.Sequence(s.Input)
	}
	if s.Preset != "" {
		p := config.GetPreset(s.Algorithm, s.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %s for %s", s.Preset, s.Algorithm)
		}
		return append([]int(nil), p.Input...), nil
	}
	return nil, ErrNoInput
}

// RunScenario records every step in order. A step with SaveAs writes its
// trace as JSON. Results recorded before a failing step are returned with
// the error.
func RunScenario(ctx context.Context, scenario *Scenario, reg *sorting.Registry, logger *log.Logger) ([]sorting.Summary, error) {
	if logger == nil {
		logger = log.Default()
	}
	results := make([]sorting.Summary, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Info("running step", "step", fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)), "algorithm", step.Algorithm)

		rec, err := reg.Get(step.Algorithm)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		input, err := step.input()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		lg := rec.Record(input)
		if err := lg.Validate(); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.SaveAs != "" {
			if err := saveTrace(step.SaveAs, lg); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sorting.Summarize(lg))
	}
	return results, nil
}

func saveTrace(path string, lg *trace.Log) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteJSON(f, lg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Sweep records one algorithm on random inputs of growing size.
type Sweep struct {
	Algorithm string
	MinSize   int
	MaxSize   int
	NumSteps  int
	Trials    int
	Seed      int64
}

// SweepResult averages the trials at one input size.
type SweepResult struct {
	Size     int
	Steps    float64
	Compares float64
	Swaps    float64
	Shifts   float64
}

func RunSweep(ctx context.Context, sweep *Sweep, reg *sorting.Registry, logger *log.Logger) ([]SweepResult, error) {
	if sweep.NumSteps < 2 || sweep.MinSize < 0 || sweep.MaxSize <= sweep.MinSize {
		return nil, fmt.Errorf("%w: %d..%d in %d steps", ErrBadSweep, sweep.MinSize, sweep.MaxSize, sweep.NumSteps)
	}
	if sweep.Trials <= 0 {
		return nil, ErrNoTrials
	}
	if logger == nil {
		logger = log.Default()
	}
	rec, err := reg.Get(sweep.Algorithm)
	if err != nil {
		return nil, err
	}
	rng := newRand(sweep.Seed)

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		size := sweep.MinSize + i*(sweep.MaxSize-sweep.MinSize)/(sweep.NumSteps-1)

		r := SweepResult{Size: size}
		for t := 0; t < sweep.Trials; t++ {
			s := sorting.Summarize(rec.Record(RandomInput(rng, size, 100)))
			r.Steps += float64(s.Steps)
			r.Compares += float64(s.Compares)
			r.Swaps += float64(s.Swaps)
			r.Shifts += float64(s.Shifts)
		}
		n := float64(sweep.Trials)
		r.Steps /= n
		r.Compares /= n
		r.Swaps /= n
		r.Shifts /= n
		results = append(results, r)

		logger.Debug("sweep", "algorithm", sweep.Algorithm, "size", size, "compares", r.Compares)
	}
	return results, nil
}

// TrialConfig perturbs a base input by shuffling it NumTrials times.
type TrialConfig struct {
	Algorithm string
	Base      []int
	NumTrials int
	Seed      int64
}

// TrialResult is one shuffled recording.
type TrialResult struct {
	TrialID int
	Input   []int
	Summary sorting.Summary
	// Sorted reports whether the final sequence is non-decreasing.
	Sorted bool
}

func RunTrials(ctx context.Context, cfg *TrialConfig, reg *sorting.Registry) ([]TrialResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, ErrNoTrials
	}
	rec, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	rng := newRand(cfg.Seed)

	results := make([]TrialResult, 0, cfg.NumTrials)
	for trial := 0; trial < cfg.NumTrials; trial++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		input := append([]int(nil), cfg.Base...)
		rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		s := sorting.Summarize(rec.Record(input))
		results = append(results, TrialResult{
			TrialID: trial,
			Input:   input,
			Summary: s,
			Sorted:  nonDecreasing(s.Final),
		})
	}
	return results, nil
}

// TrialStats returns the compare count range and how many trials sorted.
func TrialStats(results []TrialResult) (minCompares, maxCompares, sorted int) {
	for i, r := range results {
		c := r.Summary.Compares
		if i == 0 || c < minCompares {
			minCompares = c
		}
		if c > maxCompares {
			maxCompares = c
		}
		if r.Sorted {
			sorted++
		}
	}
	return
}

// RandomInput returns n values in [0, limit).
func RandomInput(rng *rand.Rand, n, limit int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(limit)
	}
	return out
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func nonDecreasing(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return false
		}
	}
	return true
}
