package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

type Selection struct{}

func NewSelection() *Selection { return &Selection{} }

func (r *Selection) Name() string { return "selection" }

// Record scans the unsorted suffix for each boundary i, recording every
// comparison and every improvement of the running minimum, then the swap
// that places the minimum at i.
func (r *Selection) Record(input []int) *trace.Log {
	t := newTape(r.Name(), input)
	n := len(t.arr)
	if n <= 1 {
		return t.trivial()
	}

	sortedUpTo := trace.None
	for i := 0; i < n-1; i++ {
		minIdx := i

		s := trace.Blank(trace.KindSelect)
		s.Text = fmt.Sprintf("Pass %d: assuming %d is the minimum.", i+1, t.arr[i])
		s.Min = minIdx
		s.SortedUpTo = sortedUpTo
		t.record(s)

		for j := i + 1; j < n; j++ {
			s = trace.Blank(trace.KindCompare)
			s.Text = fmt.Sprintf("Compare %d with current minimum %d.", t.arr[j], t.arr[minIdx])
			s.Min = minIdx
			s.Compare = j
			s.SortedUpTo = sortedUpTo
			t.record(s)

			if t.arr[j] < t.arr[minIdx] {
				minIdx = j
				s = trace.Blank(trace.KindNewMin)
				s.Text = fmt.Sprintf("New minimum found: %d.", t.arr[minIdx])
				s.Min = minIdx
				s.SortedUpTo = sortedUpTo
				t.record(s)
			}
		}

		if minIdx != i {
			a, b := t.arr[i], t.arr[minIdx]
			t.swap(i, minIdx)
			s = trace.Blank(trace.KindSwap)
			s.Text = fmt.Sprintf("Swapped %d and %d.", a, b)
			s.SwapA, s.SwapB = i, minIdx
			s.Min = i
			s.SortedUpTo = sortedUpTo
			t.record(s)
		}
		sortedUpTo = i
	}

	return t.done()
}
