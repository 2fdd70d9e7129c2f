package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

type Merge struct{}

func NewMerge() *Merge { return &Merge{} }

func (r *Merge) Name() string { return "merge" }

// Record splits at the midpoint, recurses left then right and merges with a
// stable two-pointer scan. Every call, leaves included, records one reveal
// step on entry and one resolved step on exit.
func (r *Merge) Record(input []int) *trace.Log {
	t := newTape(r.Name(), input)
	if len(t.arr) <= 1 {
		return t.trivial()
	}
	r.sort(t, 0, len(t.arr), trace.None, trace.SideRoot)
	return t.done()
}

// sort handles the half-open range [low, high).
func (r *Merge) sort(t *tape, low, high, parent int, side trace.Side) {
	node := t.log.Tree.Add(parent, side, low, high-1)
	depth := t.log.Tree.Nodes[node].Depth
	size := high - low

	s := trace.Blank(trace.KindReveal)
	s.Node, s.Depth = node, depth
	s.Low, s.High = low, high-1
	switch {
	case depth == 0:
		s.Text = "Start with the initial array."
	case size == 1:
		s.Text = "Base case reached (single element)."
	case size == 2:
		s.Text = "Split array into two single elements."
	default:
		s.Text = fmt.Sprintf("Split %s into halves.", formatRange(t.arr[low:high]))
	}
	t.record(s)

	if size <= 1 {
		s = trace.Blank(trace.KindResolved)
		s.Node, s.Depth = node, depth
		s.Low, s.High = low, high-1
		s.Final = low
		s.Text = fmt.Sprintf("%d is trivially sorted.", t.arr[low])
		t.record(s)
		return
	}

	mid := low + size/2
	r.sort(t, low, mid, node, trace.SideLeft)
	r.sort(t, mid, high, node, trace.SideRight)

	merged := make([]int, 0, size)
	origins := make([]int, 0, size)
	l, rt := low, mid
	for l < mid && rt < high {
		if t.arr[rt] < t.arr[l] {
			merged, origins = append(merged, t.arr[rt]), append(origins, t.origin[rt])
			rt++
		} else {
			merged, origins = append(merged, t.arr[l]), append(origins, t.origin[l])
			l++
		}
	}
	for ; l < mid; l++ {
		merged, origins = append(merged, t.arr[l]), append(origins, t.origin[l])
	}
	for ; rt < high; rt++ {
		merged, origins = append(merged, t.arr[rt]), append(origins, t.origin[rt])
	}
	copy(t.arr[low:high], merged)
	copy(t.origin[low:high], origins)

	s = trace.Blank(trace.KindResolved)
	s.Node, s.Depth = node, depth
	s.Low, s.High = low, high-1
	s.Text = fmt.Sprintf("Merging sorted sub-arrays: %s", formatRange(merged))
	t.record(s)
}
