package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/trace"
)

// RenderBars draws step as vertical bars, rows tall, with the values printed
// underneath. Each bar is coloured by its role in the step.
func RenderBars(step trace.Step, rows int) string {
	seq := step.Seq
	if len(seq) == 0 {
		return subtle.Render("(empty sequence)")
	}
	if rows < 2 {
		rows = 2
	}

	labels := make([]string, len(seq))
	colW := 3
	for k, v := range seq {
		labels[k] = strconv.Itoa(v)
		colW = max(colW, len(labels[k]))
	}
	heights := barHeights(seq, rows)

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		for k := range seq {
			cell := strings.Repeat(" ", colW)
			if heights[k] >= row {
				cell = strings.Repeat("█", colW)
			}
			b.WriteString(roleStyle(step.Role(k)).Render(cell))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	for k := range seq {
		b.WriteString(roleStyle(step.Role(k)).Render(fmt.Sprintf("%*s", colW, labels[k])))
		b.WriteByte(' ')
	}
	return b.String()
}

// barHeights scales values into 1..rows so the smallest value still shows.
// The span is computed in float64 so extreme values cannot overflow.
func barHeights(seq []int, rows int) []int {
	lo, hi := seq[0], seq[0]
	for _, v := range seq {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	out := make([]int, len(seq))
	for k, v := range seq {
		if hi == lo {
			out[k] = rows
			continue
		}
		f := (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
		out[k] = min(1+int(f*float64(rows-1)), rows)
	}
	return out
}

func roleStyle(r trace.Role) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(RoleColor(r))
	if r == trace.RoleSwap || r == trace.RolePivot {
		s = s.Bold(true)
	}
	return s
}

// Legend lists the roles present in step.
func Legend(step trace.Step) string {
	seen := map[trace.Role]bool{}
	var parts []string
	for _, r := range step.Roles() {
		if seen[r] || r == trace.RoleIdle {
			continue
		}
		seen[r] = true
		parts = append(parts, roleStyle(r).Render("■ "+r.String()))
	}
	return strings.Join(parts, "  ")
}

// TreeLines renders the recursion tree of lg as of step index cursor: one
// line per depth, the current node marked with ▸ and resolved nodes marked ✓.
func TreeLines(lg *trace.Log, cursor int) []string {
	if lg.Tree.Len() == 0 {
		return nil
	}
	resolved := map[int]bool{}
	current := trace.None
	for i := 0; i <= cursor && i < lg.Len(); i++ {
		s := lg.Steps[i]
		if s.Node == trace.None {
			continue
		}
		current = s.Node
		if s.Kind == trace.KindResolved {
			resolved[s.Node] = true
		}
	}
	onPath := map[int]bool{}
	for _, id := range lg.Tree.Path(current) {
		onPath[id] = true
	}

	var lines []string
	for depth, level := range lg.Tree.Levels() {
		var cells []string
		for _, id := range level {
			n := lg.Tree.Nodes[id]
			// nodes appear only once the recording has reached them
			if !seenBy(lg, id, cursor) {
				continue
			}
			label := fmt.Sprintf("[%d..%d]", n.Low, n.High)
			if n.High < n.Low {
				label = "[]"
			}
			switch {
			case id == current:
				label = cursorMark.Render("▸" + label)
			case resolved[id]:
				label = sparkHigh.Render("✓" + label)
			case onPath[id]:
				label = selectedItem.Render(" " + label)
			default:
				label = dimItem.Render(" " + label)
			}
			cells = append(cells, label)
		}
		if len(cells) == 0 {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s", subtle.Render(fmt.Sprintf("d%d", depth)), strings.Join(cells, " ")))
	}
	return lines
}

func seenBy(lg *trace.Log, node, cursor int) bool {
	for i := 0; i <= cursor && i < lg.Len(); i++ {
		if lg.Steps[i].Node == node {
			return true
		}
	}
	return false
}

// PlainStep renders one step without colour for logs and pipes.
func PlainStep(index, total int, step trace.Step) string {
	cells := make([]string, len(step.Seq))
	for k, v := range step.Seq {
		s := strconv.Itoa(v)
		switch step.Role(k) {
		case trace.RoleSwap:
			s = "<" + s + ">"
		case trace.RolePivot:
			s = "{" + s + "}"
		case trace.RoleCompare, trace.RoleKey, trace.RoleMin:
			s = "(" + s + ")"
		case trace.RoleSorted:
			s = s + "*"
		}
		cells[k] = s
	}
	return fmt.Sprintf("%3d/%-3d %-11s [%s]  %s", index+1, total, step.Kind, strings.Join(cells, " "), step.Text)
}
