package trace

import (
	"fmt"
	"reflect"
)

// None marks an index annotation that does not apply to a step.
const None = -1

type Kind int

const (
	KindStart Kind = iota
	KindReveal
	KindResolved
	KindSelect
	KindCompare
	KindShift
	KindInsert
	KindNewMin
	KindSwap
	KindAdvance
	KindSkip
	KindPlacePivot
	KindPass
	KindDone
)

var kindNames = map[Kind]string{
	KindStart:      "start",
	KindReveal:     "reveal",
	KindResolved:   "resolved",
	KindSelect:     "select",
	KindCompare:    "compare",
	KindShift:      "shift",
	KindInsert:     "insert",
	KindNewMin:     "new-min",
	KindSwap:       "swap",
	KindAdvance:    "advance",
	KindSkip:       "skip",
	KindPlacePivot: "place-pivot",
	KindPass:       "pass",
	KindDone:       "done",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// MarshalText lets kinds appear by name in JSON exports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("trace: unknown step kind %q", b)
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := KindStart; k <= KindDone; k++ {
		out = append(out, k)
	}
	return out
}

// Step is one recorded instant. Index fields hold a position in Seq or None.
type Step struct {
	Kind Kind   `json:"kind"`
	Seq  []int  `json:"seq"`
	Text string `json:"text"`

	// Origin[k] is the input position of the element now at Seq[k].
	Origin []int `json:"origin"`

	Key        int  `json:"key"`
	KeyValue   int  `json:"key_value"`
	HasKey     bool `json:"has_key"`
	Compare    int  `json:"compare"`
	Min        int  `json:"min"`
	Pivot      int  `json:"pivot"`
	I          int  `json:"i"`
	J          int  `json:"j"`
	SwapA      int  `json:"swap_a"`
	SwapB      int  `json:"swap_b"`
	Final      int  `json:"final"`
	Low        int  `json:"low"`
	High       int  `json:"high"`
	SortedUpTo int  `json:"sorted_up_to"`
	SortedFrom int  `json:"sorted_from"`
	Node       int  `json:"node"`
	Depth      int  `json:"depth"`
}

// Blank returns a step of the given kind with every annotation set to None.
func Blank(kind Kind) Step {
	return Step{
		Kind:       kind,
		Key:        None,
		Compare:    None,
		Min:        None,
		Pivot:      None,
		I:          None,
		J:          None,
		SwapA:      None,
		SwapB:      None,
		Final:      None,
		Low:        None,
		High:       None,
		SortedUpTo: None,
		SortedFrom: None,
		Node:       None,
	}
}

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	c := s
	c.Seq = cloneInts(s.Seq)
	c.Origin = cloneInts(s.Origin)
	return c
}

// Equal reports whether two steps hold the same values.
func (s Step) Equal(o Step) bool {
	return reflect.DeepEqual(s, o)
}

// Indices returns the annotated positions of s, in field order, skipping None.
func (s Step) Indices() []int {
	all := []int{s.Key, s.Compare, s.Min, s.Pivot, s.I, s.J, s.SwapA, s.SwapB, s.Final, s.Low, s.High, s.SortedUpTo, s.SortedFrom}
	out := make([]int, 0, len(all))
	for _, v := range all {
		if v != None {
			out = append(out, v)
		}
	}
	return out
}

// InRange reports whether index k lies in the step's active [Low, High] range.
// Steps without a range cover the whole sequence.
func (s Step) InRange(k int) bool {
	if s.Low == None || s.High == None {
		return k >= 0 && k < len(s.Seq)
	}
	return k >= s.Low && k <= s.High
}

// Sorted reports whether index k is inside a region the step marks as final.
func (s Step) Sorted(k int) bool {
	if s.Kind == KindDone {
		return true
	}
	if s.SortedUpTo != None && k <= s.SortedUpTo {
		return true
	}
	if s.SortedFrom != None && k >= s.SortedFrom {
		return true
	}
	return s.Final == k
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}
