// Package trace provides the recorded-execution primitives shared by every
// algorithm visualizer.
//
// An algorithm is run once to completion while it appends immutable
// snapshots to a log:
//
//   - [Step]: one instant of the algorithm (array copy, kind, annotations)
//   - [Log]: the ordered, append-only sequence of steps from one run
//   - [Tree]: arena of recursion nodes that steps reference by index
//
// # Example
//
//	lg := trace.NewLog("insertion", input)
//	s := trace.Blank(trace.KindStart)
//	s.Seq, s.Origin = arr, origin
//	s.Text = "start"
//	lg.Append(s)
//	last := lg.Last()
//
// # Immutability
//
// Append copies the slices of the step it is given and At returns a copy,
// so a recorder may keep mutating its working array and a renderer may
// scribble on what it received without corrupting the log.
package trace
