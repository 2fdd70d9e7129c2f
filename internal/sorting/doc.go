// Package sorting records classic sorting algorithms as step logs.
//
// Each [Recorder] runs its algorithm once, synchronously, over a private
// copy of the input and returns a [trace.Log] whose last step is always
// [trace.KindDone] holding the sorted permutation:
//
//   - [Insertion], [Selection], [Bubble]: iterative, no recursion tree
//   - [Merge], [Quick]: recursive, one tree node per call
//
// Comparisons are strict, so equal values never swap past each other in
// insertion, bubble and merge sort.
package sorting
