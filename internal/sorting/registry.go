package sorting

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

// Recorder runs one sorting algorithm over a private copy of input and
// returns the complete step log.
type Recorder interface {
	Name() string
	Record(input []int) *trace.Log
}

type Registry struct {
	recorders map[string]func() Recorder
	info      map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		recorders: make(map[string]func() Recorder),
		info:      make(map[string]string),
	}

	r.register("insertion", "shift greater predecessors, insert the key", func() Recorder { return NewInsertion() })
	r.register("selection", "select the minimum of the unsorted suffix", func() Recorder { return NewSelection() })
	r.register("bubble", "swap adjacent pairs until a pass is clean", func() Recorder { return NewBubble() })
	r.register("merge", "split at the midpoint, merge sorted halves", func() Recorder { return NewMerge() })
	r.register("quick", "lomuto partition around the last element", func() Recorder { return NewQuick() })

	return r
}

func (r *Registry) register(name, info string, fn func() Recorder) {
	r.recorders[name] = fn
	r.info[name] = info
}

func (r *Registry) Get(name string) (Recorder, error) {
	fn, ok := r.recorders[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return fn(), nil
}

// Names returns the registered algorithm names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.recorders))
	for name := range r.recorders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Info(name string) string { return r.info[name] }

// Recursive reports whether the algorithm records a recursion tree.
func Recursive(name string) bool {
	return name == "merge" || name == "quick"
}

func formatRange(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
