package graph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownNode = errors.New("graph: node not found")
	ErrSelfLoop    = errors.New("graph: self-loop not allowed")
	ErrEmpty       = errors.New("graph: graph is empty")
)

// Graph is an undirected simple graph.
type Graph struct {
	adj   [][]int
	edges int
}

func New() *Graph { return &Graph{} }

// WithNodes returns a graph with n isolated nodes.
func WithNodes(n int) *Graph {
	g := New()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	return g
}

// AddNode appends a node and returns its id.
func (g *Graph) AddNode() int {
	g.adj = append(g.adj, nil)
	return len(g.adj) - 1
}

func (g *Graph) Len() int { return len(g.adj) }

func (g *Graph) EdgeCount() int { return g.edges }

func (g *Graph) Has(u int) bool { return u >= 0 && u < len(g.adj) }

// AddEdge connects u and v. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v int) error {
	if !g.Has(u) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, u)
	}
	if !g.Has(v) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	if g.Adjacent(u, v) {
		return nil
	}
	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)
	g.edges++
	return nil
}

func (g *Graph) Adjacent(u, v int) bool {
	if !g.Has(u) {
		return false
	}
	i := sort.SearchInts(g.adj[u], v)
	return i < len(g.adj[u]) && g.adj[u][i] == v
}

// Neighbors returns the neighbours of u in ascending order.
func (g *Graph) Neighbors(u int) []int {
	if !g.Has(u) {
		return nil
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])
	return out
}

// Edges lists every edge once as (low, high) pairs, ordered.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u, ns := range g.adj {
		for _, v := range ns {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}

// Matrix returns the adjacency matrix.
func (g *Graph) Matrix() [][]int {
	n := len(g.adj)
	m := make([][]int, n)
	for u := range m {
		m[u] = make([]int, n)
		for _, v := range g.adj[u] {
			m[u][v] = 1
		}
	}
	return m
}

// AdjacencyList returns a copy of the neighbour lists.
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, len(g.adj))
	for u := range g.adj {
		out[u] = g.Neighbors(u)
	}
	return out
}

func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
