package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is one displayed moment of a traversal.
type Frame struct {
	Visited  []int  `json:"visited"`
	Current  int    `json:"current"`
	Frontier []int  `json:"frontier"`
	Order    []int  `json:"order"`
	Text     string `json:"text"`
}

// NoCurrent marks a frame with no node being processed.
const NoCurrent = -1

func (f Frame) String() string {
	cur := "-"
	if f.Current != NoCurrent {
		cur = strconv.Itoa(f.Current)
	}
	return fmt.Sprintf("%-44s current=%s frontier=[%s] order=%s",
		f.Text, cur, join(f.Frontier, " "), join(f.Order, " -> "))
}

// IsVisited reports whether node u is visited in this frame.
func (f Frame) IsVisited(u int) bool {
	for _, v := range f.Visited {
		if v == u {
			return true
		}
	}
	return false
}

func (f Frame) InFrontier(u int) bool {
	for _, v := range f.Frontier {
		if v == u {
			return true
		}
	}
	return false
}

type walk struct {
	visited []bool
	order   []int
	frames  []Frame
}

func newWalk(n int) *walk {
	return &walk{visited: make([]bool, n)}
}

func (w *walk) snap(current int, frontier []int, text string) {
	var vis []int
	for u, ok := range w.visited {
		if ok {
			vis = append(vis, u)
		}
	}
	w.frames = append(w.frames, Frame{
		Visited:  vis,
		Current:  current,
		Frontier: append([]int{}, frontier...),
		Order:    append([]int{}, w.order...),
		Text:     text,
	})
}

func (g *Graph) checkStart(start int) error {
	if len(g.adj) == 0 {
		return ErrEmpty
	}
	if !g.Has(start) {
		return fmt.Errorf("%w: start %d", ErrUnknownNode, start)
	}
	return nil
}

// BFS records a breadth-first traversal from start.
func (g *Graph) BFS(start int) ([]Frame, error) {
	if err := g.checkStart(start); err != nil {
		return nil, err
	}
	w := newWalk(len(g.adj))
	queue := []int{start}
	w.visited[start] = true
	w.snap(NoCurrent, queue, fmt.Sprintf("Starting BFS from node %d", start))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		w.order = append(w.order, cur)
		w.snap(cur, queue, fmt.Sprintf("Dequeued node %d", cur))

		for _, nb := range g.adj[cur] {
			if w.visited[nb] {
				continue
			}
			w.visited[nb] = true
			queue = append(queue, nb)
			w.snap(cur, queue, fmt.Sprintf("Enqueued unvisited neighbour %d", nb))
		}
	}
	w.snap(NoCurrent, nil, "BFS complete")
	return w.frames, nil
}

// DFS records an iterative depth-first traversal from start.
func (g *Graph) DFS(start int) ([]Frame, error) {
	if err := g.checkStart(start); err != nil {
		return nil, err
	}
	w := newWalk(len(g.adj))
	stack := []int{start}
	w.snap(NoCurrent, stack, fmt.Sprintf("Starting DFS from node %d", start))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[cur] {
			continue
		}
		w.visited[cur] = true
		w.order = append(w.order, cur)
		w.snap(cur, stack, fmt.Sprintf("Visiting node %d", cur))

		ns := g.adj[cur]
		for i := len(ns) - 1; i >= 0; i-- {
			nb := ns[i]
			if w.visited[nb] {
				continue
			}
			stack = append(stack, nb)
			w.snap(cur, stack, fmt.Sprintf("Pushed neighbour %d", nb))
		}
	}
	w.snap(NoCurrent, nil, "DFS complete")
	return w.frames, nil
}

func join(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
