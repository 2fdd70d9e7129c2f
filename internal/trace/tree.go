package trace

import (
	"fmt"
	"strings"
)

type Side int

const (
	SideRoot Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "L"
	case SideRight:
		return "R"
	default:
		return "root"
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "root":
		*s = SideRoot
	case "L":
		*s = SideLeft
	case "R":
		*s = SideRight
	default:
		return fmt.Errorf("trace: unknown side %q", b)
	}
	return nil
}

// Node is one recursive sub-problem. Low and High bound the slice of the
// working array it covers (inclusive); High < Low for an empty range.
type Node struct {
	ID     int  `json:"id"`
	Parent int  `json:"parent"`
	Side   Side `json:"side"`
	Depth  int  `json:"depth"`
	Low    int  `json:"low"`
	High   int  `json:"high"`
}

// Tree is an arena of recursion nodes addressed by index.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Add appends a node under parent (None for the root) and returns its index.
func (t *Tree) Add(parent int, side Side, low, high int) int {
	depth := 0
	if parent != None {
		depth = t.Nodes[parent].Depth + 1
	}
	id := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{ID: id, Parent: parent, Side: side, Depth: depth, Low: low, High: high})
	return id
}

func (t *Tree) Len() int { return len(t.Nodes) }

func (t *Tree) Has(id int) bool { return id >= 0 && id < len(t.Nodes) }

// Children returns the direct children of id in creation order.
func (t *Tree) Children(id int) []int {
	var out []int
	for _, n := range t.Nodes {
		if n.Parent == id && n.ID != id {
			out = append(out, n.ID)
		}
	}
	return out
}

// Path returns the node indices from the root down to id.
func (t *Tree) Path(id int) []int {
	if !t.Has(id) {
		return nil
	}
	var rev []int
	for cur := id; cur != None; cur = t.Nodes[cur].Parent {
		rev = append(rev, cur)
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// Label derives a readable position such as "root.L.R" for id.
func (t *Tree) Label(id int) string {
	path := t.Path(id)
	if len(path) == 0 {
		return ""
	}
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = t.Nodes[n].Side.String()
	}
	return strings.Join(parts, ".")
}

// Levels groups node indices by depth, preserving creation order.
func (t *Tree) Levels() [][]int {
	var levels [][]int
	for _, n := range t.Nodes {
		for len(levels) <= n.Depth {
			levels = append(levels, nil)
		}
		levels[n.Depth] = append(levels[n.Depth], n.ID)
	}
	return levels
}
