package structures

import (
	"bytes"
	"fmt"
)

type treeNode struct {
	val         int
	left, right *treeNode
}

// BST is an unbalanced binary search tree of distinct ints.
type BST struct {
	root *treeNode
	size int
}

func NewBST() *BST { return &BST{} }

func (t *BST) Len() int { return t.size }

// Values returns the in-order contents.
func (t *BST) Values() []int {
	out := make([]int, 0, t.size)
	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.val)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Height counts nodes on the longest root-to-leaf path; an empty tree is 0.
func (t *BST) Height() int {
	var h func(n *treeNode) int
	h = func(n *treeNode) int {
		if n == nil {
			return 0
		}
		return 1 + max(h(n.left), h(n.right))
	}
	return h(t.root)
}

// frame highlights value v (when present) against the current contents.
func (t *BST) frame(active int, found bool, text string) Frame {
	vals := t.Values()
	f := newFrame(vals, text)
	idx := indexOf(vals, active)
	if found {
		f.Found = idx
	} else {
		f.Active = idx
	}
	return f
}

// Insert adds v, recording one frame per node on the search path.
func (t *BST) Insert(v int) ([]Frame, error) {
	if t.root == nil {
		t.root = &treeNode{val: v}
		t.size++
		return []Frame{t.frame(v, true, fmt.Sprintf("Inserted root %d", v))}, nil
	}

	var frames []Frame
	cur := t.root
	for {
		if v == cur.val {
			frames = append(frames, t.frame(cur.val, false, fmt.Sprintf("Value %d already exists", v)))
			return frames, fmt.Errorf("%w: %d", ErrDuplicate, v)
		}
		if v < cur.val {
			frames = append(frames, t.frame(cur.val, false, fmt.Sprintf("%d < %d, go left", v, cur.val)))
			if cur.left == nil {
				cur.left = &treeNode{val: v}
				break
			}
			cur = cur.left
		} else {
			frames = append(frames, t.frame(cur.val, false, fmt.Sprintf("%d > %d, go right", v, cur.val)))
			if cur.right == nil {
				cur.right = &treeNode{val: v}
				break
			}
			cur = cur.right
		}
	}
	t.size++
	frames = append(frames, t.frame(v, true, fmt.Sprintf("Inserted %d", v)))
	return frames, nil
}

// Search walks toward v and reports whether it was found.
func (t *BST) Search(v int) ([]Frame, bool) {
	if t.root == nil {
		return []Frame{newFrame(nil, "Tree is empty")}, false
	}
	frames := []Frame{newFrame(t.Values(), fmt.Sprintf("Searching for %d", v))}
	for cur := t.root; cur != nil; {
		if v == cur.val {
			return append(frames, t.frame(v, true, fmt.Sprintf("Found %d", v))), true
		}
		frames = append(frames, t.frame(cur.val, false, fmt.Sprintf("Visit %d", cur.val)))
		if v < cur.val {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return append(frames, newFrame(t.Values(), fmt.Sprintf("%d not found", v))), false
}

type order int

const (
	inOrder order = iota
	preOrder
	postOrder
)

func (o order) String() string {
	return [...]string{"in-order", "pre-order", "post-order"}[o]
}

func (t *BST) InOrder() ([]Frame, error)   { return t.traverse(inOrder) }
func (t *BST) PreOrder() ([]Frame, error)  { return t.traverse(preOrder) }
func (t *BST) PostOrder() ([]Frame, error) { return t.traverse(postOrder) }

func (t *BST) traverse(o order) ([]Frame, error) {
	if t.root == nil {
		return nil, ErrEmpty
	}
	vals := t.Values()
	var out []int
	frames := []Frame{newFrame(vals, fmt.Sprintf("Starting %s traversal", o))}

	visit := func(n *treeNode) {
		out = append(out, n.val)
		f := newFrame(vals, fmt.Sprintf("Visit %d", n.val))
		f.Active = indexOf(vals, n.val)
		f.Output = append([]int(nil), out...)
		frames = append(frames, f)
	}
	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		if o == preOrder {
			visit(n)
		}
		walk(n.left)
		if o == inOrder {
			visit(n)
		}
		walk(n.right)
		if o == postOrder {
			visit(n)
		}
	}
	walk(t.root)

	done := newFrame(vals, "Traversal complete")
	done.Output = out
	return append(frames, done), nil
}

// DOT renders the tree in Graphviz syntax. Nodes whose value is in
// highlight are filled.
func (t *BST) DOT(highlight ...int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph BST {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontname=\"SF Mono, Menlo, monospace\", style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		fill := "white"
		if indexOf(highlight, n.val) != None {
			fill = "#fde68a"
		}
		fmt.Fprintf(&buf, "  v%s [label=\"%d\", fillcolor=%q];\n", id(n.val), n.val, fill)
		for _, c := range []*treeNode{n.left, n.right} {
			if c == nil {
				continue
			}
			fmt.Fprintf(&buf, "  v%s -> v%s;\n", id(n.val), id(c.val))
			walk(c)
		}
	}
	if t.root != nil {
		walk(t.root)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// id turns a possibly negative value into a valid DOT identifier suffix.
func id(v int) string {
	if v < 0 {
		return fmt.Sprintf("m%d", -v)
	}
	return fmt.Sprintf("%d", v)
}
