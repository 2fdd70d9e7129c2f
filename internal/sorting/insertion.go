package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

type Insertion struct{}

func NewInsertion() *Insertion { return &Insertion{} }

func (r *Insertion) Name() string { return "insertion" }

// Record holds arr[i] as the key, shifts every strictly greater predecessor
// one slot right (one step per shift) and records where the key lands.
func (r *Insertion) Record(input []int) *trace.Log {
	t := newTape(r.Name(), input)
	n := len(t.arr)
	if n <= 1 {
		return t.trivial()
	}

	s := trace.Blank(trace.KindStart)
	s.Text = "Start: the first element is considered sorted."
	s.SortedUpTo = 0
	t.record(s)

	for i := 1; i < n; i++ {
		key, keyOrigin := t.arr[i], t.origin[i]
		j := i - 1

		s = trace.Blank(trace.KindSelect)
		s.Text = fmt.Sprintf("Selected %d as the key.", key)
		s.Key, s.KeyValue, s.HasKey = i, key, true
		s.SortedUpTo = i - 1
		t.record(s)

		for j >= 0 && t.arr[j] > key {
			s = trace.Blank(trace.KindCompare)
			s.Text = fmt.Sprintf("Compare key (%d) with %d. %d > %d, so we shift.", key, t.arr[j], t.arr[j], key)
			s.Key, s.KeyValue, s.HasKey = j+1, key, true
			s.Compare = j
			s.SortedUpTo = i - 1
			t.record(s)

			t.arr[j+1] = t.arr[j]
			t.origin[j+1] = t.origin[j]
			j--

			s = trace.Blank(trace.KindShift)
			s.Text = fmt.Sprintf("Shifted %d to the right. Checking next...", t.arr[j+1])
			s.Key, s.KeyValue, s.HasKey = j+1, key, true
			if j >= 0 {
				s.Compare = j
			}
			s.SortedUpTo = i - 1
			t.record(s)
		}
		t.arr[j+1] = key
		t.origin[j+1] = keyOrigin

		s = trace.Blank(trace.KindInsert)
		s.Text = fmt.Sprintf("Inserted key (%d) at index %d.", key, j+1)
		s.Key, s.KeyValue, s.HasKey = j+1, key, true
		s.SortedUpTo = i
		t.record(s)
	}

	return t.done()
}
