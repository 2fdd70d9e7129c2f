// Package export writes recorded step logs to files: indented JSON that can
// be loaded back for replay, flat CSV for spreadsheets, per-step SVG bar
// charts and Graphviz renderings of the recursion tree.
package export
