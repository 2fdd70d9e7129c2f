package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

type Quick struct{}

func NewQuick() *Quick { return &Quick{} }

func (r *Quick) Name() string { return "quick" }

// Record runs quicksort with the Lomuto partition scheme: the pivot is the
// last element of the range and i tracks the end of the smaller-than-pivot
// prefix.
func (r *Quick) Record(input []int) *trace.Log {
	t := newTape(r.Name(), input)
	if len(t.arr) <= 1 {
		return t.trivial()
	}
	r.sort(t, 0, len(t.arr)-1, trace.None, trace.SideRoot)
	return t.done()
}

func (r *Quick) sort(t *tape, low, high, parent int, side trace.Side) {
	node := t.log.Tree.Add(parent, side, low, high)
	depth := t.log.Tree.Nodes[node].Depth

	if low > high {
		s := trace.Blank(trace.KindResolved)
		s.Node, s.Depth = node, depth
		s.Text = "Empty range, nothing to sort."
		t.record(s)
		return
	}
	if low == high {
		s := trace.Blank(trace.KindResolved)
		s.Node, s.Depth = node, depth
		s.Low, s.High, s.Final = low, high, low
		s.Text = fmt.Sprintf("Base case: single element %d is sorted.", t.arr[low])
		t.record(s)
		return
	}

	pi := r.partition(t, low, high, node, depth)
	r.sort(t, low, pi-1, node, trace.SideLeft)
	r.sort(t, pi+1, high, node, trace.SideRight)
}

func (r *Quick) partition(t *tape, low, high, node, depth int) int {
	pivot := t.arr[high]
	i := low - 1

	step := func(kind trace.Kind, text string) trace.Step {
		s := trace.Blank(kind)
		s.Node, s.Depth = node, depth
		s.Low, s.High, s.Pivot = low, high, high
		if i >= 0 {
			s.I = i
		}
		s.Text = text
		return s
	}

	t.record(step(trace.KindReveal, fmt.Sprintf("Partitioning range [%d ... %d]. Pivot is %d.", low, high, pivot)))

	for j := low; j <= high-1; j++ {
		s := step(trace.KindCompare, fmt.Sprintf("Compare: is %d < pivot (%d)?", t.arr[j], pivot))
		s.J = j
		t.record(s)

		if t.arr[j] < pivot {
			i++
			s = step(trace.KindAdvance, fmt.Sprintf("Yes (%d < %d). Increment i to %d.", t.arr[j], pivot, i))
			s.J = j
			t.record(s)

			t.swap(i, j)
			s = step(trace.KindSwap, fmt.Sprintf("Swap %d and %d.", t.arr[i], t.arr[j]))
			s.J = j
			s.SwapA, s.SwapB = i, j
			t.record(s)
		} else {
			s = step(trace.KindSkip, fmt.Sprintf("No (%d >= %d). Move to next element.", t.arr[j], pivot))
			s.J = j
			t.record(s)
		}
	}

	s := step(trace.KindPlacePivot, fmt.Sprintf("Loop finished. Place pivot (%d) at its sorted position (i+1).", pivot))
	s.SwapA, s.SwapB = i+1, high
	t.record(s)

	t.swap(i+1, high)
	pi := i + 1

	s = trace.Blank(trace.KindResolved)
	s.Node, s.Depth = node, depth
	s.Low, s.High, s.Final = low, high, pi
	s.Text = fmt.Sprintf("Pivot %d is now sorted at index %d.", t.arr[pi], pi)
	t.record(s)
	return pi
}
