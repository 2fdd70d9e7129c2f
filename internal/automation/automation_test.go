package automation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(io.Discard)

func TestRunScenario(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "merge.json")
	path := filepath.Join(dir, "scenario.yaml")
	body := "name: demo\nsteps:\n" +
		"  - algorithm: insertion\n    input: \"5, 2, 4\"\n" +
		"  - algorithm: merge\n    preset: classic\n    save_as: " + saved + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)
	require.Len(t, sc.Steps, 2)

	results, err := RunScenario(context.Background(), sc, sorting.NewRegistry(), quiet)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []int{2, 4, 5}, results[0].Final)
	assert.Equal(t, []int{3, 9, 10, 27, 38, 43, 82}, results[1].Final)

	lg, err := export.LoadJSON(saved)
	require.NoError(t, err)
	assert.Equal(t, "merge", lg.Algorithm)
	assert.Equal(t, results[1].Steps, lg.Len())
}

func TestRunScenarioStopsAtBadStep(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Algorithm: "bubble", Input: "3 1 2"},
		{Algorithm: "bubble"},
		{Algorithm: "quick", Input: "2 1"},
	}}
	results, err := RunScenario(context.Background(), sc, sorting.NewRegistry(), quiet)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Len(t, results, 1)

	sc = &Scenario{Steps: []ScenarioStep{{Algorithm: "bogo", Input: "1"}}}
	_, err = RunScenario(context.Background(), sc, sorting.NewRegistry(), quiet)
	assert.Error(t, err)
}

func TestRunSweep(t *testing.T) {
	sweep := &Sweep{Algorithm: "selection", MinSize: 0, MaxSize: 8, NumSteps: 3, Trials: 2, Seed: 1}
	results, err := RunSweep(context.Background(), sweep, sorting.NewRegistry(), quiet)
	require.NoError(t, err)
	require.Len(t, results, 3)

	sizes := []int{results[0].Size, results[1].Size, results[2].Size}
	assert.Equal(t, []int{0, 4, 8}, sizes)
	assert.Zero(t, results[0].Compares)
	assert.Greater(t, results[2].Compares, results[1].Compares)
}

func TestRunSweepRejectsBadRange(t *testing.T) {
	reg := sorting.NewRegistry()
	_, err := RunSweep(context.Background(), &Sweep{Algorithm: "merge", MinSize: 5, MaxSize: 5, NumSteps: 3, Trials: 1}, reg, quiet)
	assert.ErrorIs(t, err, ErrBadSweep)

	_, err = RunSweep(context.Background(), &Sweep{Algorithm: "merge", MinSize: 1, MaxSize: 5, NumSteps: 3}, reg, quiet)
	assert.ErrorIs(t, err, ErrNoTrials)
}

func TestRunTrials(t *testing.T) {
	cfg := &TrialConfig{Algorithm: "quick", Base: []int{10, 80, 30, 90, 40, 50, 70}, NumTrials: 5, Seed: 7}
	reg := sorting.NewRegistry()

	results, err := RunTrials(context.Background(), cfg, reg)
	require.NoError(t, err)
	require.Len(t, results, 5)

	lo, hi, sorted := TrialStats(results)
	assert.Equal(t, 5, sorted)
	assert.LessOrEqual(t, lo, hi)
	for _, r := range results {
		assert.ElementsMatch(t, cfg.Base, r.Input)
	}

	again, err := RunTrials(context.Background(), cfg, reg)
	require.NoError(t, err)
	assert.Equal(t, results[3].Input, again[3].Input, "a fixed seed replays the same shuffles")
}

func TestRunTrialsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunTrials(ctx, &TrialConfig{Algorithm: "merge", Base: []int{2, 1}, NumTrials: 3}, sorting.NewRegistry())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
