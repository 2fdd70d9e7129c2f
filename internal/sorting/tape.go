package sorting

import "github.com/san-kum/algoviz/internal/trace"

// tape is the private working state of one recorder run: the array being
// sorted, the input position of every slot, and the log being written.
type tape struct {
	arr    []int
	origin []int
	log    *trace.Log
}

func newTape(name string, input []int) *tape {
	arr := make([]int, len(input))
	copy(arr, input)
	origin := make([]int, len(input))
	for i := range origin {
		origin[i] = i
	}
	return &tape{arr: arr, origin: origin, log: trace.NewLog(name, input)}
}

// record snapshots the working array into s and appends it.
func (t *tape) record(s trace.Step) {
	s.Seq = t.arr
	s.Origin = t.origin
	t.log.Append(s)
}

func (t *tape) swap(a, b int) {
	t.arr[a], t.arr[b] = t.arr[b], t.arr[a]
	t.origin[a], t.origin[b] = t.origin[b], t.origin[a]
}

// trivial records the single terminal step used for inputs of length 0 or 1.
func (t *tape) trivial() *trace.Log {
	s := trace.Blank(trace.KindDone)
	s.Text = "Sequence has at most one element, it is already sorted."
	t.record(s)
	return t.log
}

func (t *tape) done() *trace.Log {
	s := trace.Blank(trace.KindDone)
	s.Text = "Array is fully sorted."
	t.record(s)
	return t.log
}
