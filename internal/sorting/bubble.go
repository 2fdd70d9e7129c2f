package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

type Bubble struct{}

func NewBubble() *Bubble { return &Bubble{} }

func (r *Bubble) Name() string { return "bubble" }

// Record compares adjacent pairs, swapping strictly out-of-order ones, and
// stops after the first pass without a swap.
func (r *Bubble) Record(input []int) *trace.Log {
	t := newTape(r.Name(), input)
	n := len(t.arr)
	if n <= 1 {
		return t.trivial()
	}

	sortedFrom := trace.None
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			s := trace.Blank(trace.KindCompare)
			s.Text = fmt.Sprintf("Comparing %d and %d.", t.arr[j], t.arr[j+1])
			s.Compare, s.J = j, j+1
			s.SortedFrom = sortedFrom
			t.record(s)

			if t.arr[j] > t.arr[j+1] {
				a, b := t.arr[j], t.arr[j+1]
				t.swap(j, j+1)
				swapped = true
				s = trace.Blank(trace.KindSwap)
				s.Text = fmt.Sprintf("Swapped %d and %d.", a, b)
				s.SwapA, s.SwapB = j, j+1
				s.SortedFrom = sortedFrom
				t.record(s)
			}
		}

		sortedFrom = n - 1 - i
		s := trace.Blank(trace.KindPass)
		s.SortedFrom = sortedFrom
		if swapped {
			s.Text = fmt.Sprintf("Pass %d done: %d bubbled to index %d.", i+1, t.arr[sortedFrom], sortedFrom)
		} else {
			s.Text = fmt.Sprintf("Pass %d made no swap, the array is sorted.", i+1)
		}
		t.record(s)
		if !swapped {
			break
		}
	}

	return t.done()
}
