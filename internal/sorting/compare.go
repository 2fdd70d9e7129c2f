package sorting

import (
	"context"

	"github.com/san-kum/algoviz/internal/trace"
	"golang.org/x/sync/errgroup"
)

// Summary condenses one recorded log for side-by-side comparison.
type Summary struct {
	Algorithm string
	Steps     int
	Compares  int
	Swaps     int
	Shifts    int
	Nodes     int
	Final     []int
}

func Summarize(lg *trace.Log) Summary {
	return Summary{
		Algorithm: lg.Algorithm,
		Steps:     lg.Len(),
		Compares:  lg.Count(trace.KindCompare),
		Swaps:     lg.Count(trace.KindSwap),
		Shifts:    lg.Count(trace.KindShift),
		Nodes:     lg.Tree.Len(),
		Final:     lg.Final(),
	}
}

// Compare records every named algorithm on the same input concurrently.
// Results keep the order of names. Each recorder owns its own copy of the
// input, so runs share nothing.
func Compare(ctx context.Context, reg *Registry, names []string, input []int) ([]Summary, error) {
	recs := make([]Recorder, len(names))
	for i, name := range names {
		rec, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		recs[i] = rec
	}

	out := make([]Summary, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range recs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lg := rec.Record(input)
			if err := lg.Validate(); err != nil {
				return err
			}
			out[i] = Summarize(lg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
