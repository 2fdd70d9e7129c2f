// Package graph builds small undirected graphs and records breadth-first and
// depth-first traversals of them as frame sequences.
//
// Nodes are numbered 0..n-1 in creation order. Neighbours are always visited
// in ascending id order so that traversals are deterministic.
//
// BFS marks a node visited when it is enqueued. DFS marks a node visited when
// it is popped, so a node may sit on the stack more than once; repeated pops
// of a visited node are skipped silently.
package graph
