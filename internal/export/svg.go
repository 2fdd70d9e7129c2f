package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

// Fill colour per slot role.
var roleFill = map[trace.Role]string{
	trace.RoleIdle:     "#60a5fa",
	trace.RoleOutside:  "#334155",
	trace.RoleSorted:   "#22c55e",
	trace.RoleBoundary: "#a3e635",
	trace.RoleMin:      "#f97316",
	trace.RoleCompare:  "#facc15",
	trace.RoleKey:      "#38bdf8",
	trace.RolePivot:    "#a855f7",
	trace.RoleSwap:     "#ef4444",
}

// StepSVG draws step as a bar chart. Bar heights are scaled between the
// smallest and largest value so negative inputs still get a visible bar.
func StepSVG(step trace.Step, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	const (
		pad     = 10.0
		caption = 24.0
	)
	n := len(step.Seq)
	if n > 0 {
		lo, hi := step.Seq[0], step.Seq[0]
		for _, v := range step.Seq {
			lo = min(lo, v)
			hi = max(hi, v)
		}

		plotH := float64(height) - 2*pad - caption
		slot := (float64(width) - 2*pad) / float64(n)
		barW := slot * 0.8

		for k, v := range step.Seq {
			h := plotH * (0.1 + 0.9*fraction(v, lo, hi))
			x := pad + float64(k)*slot + (slot-barW)/2
			y := pad + plotH - h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%d</title></rect>
`, x, y, barW, h, roleFill[step.Role(k)], v))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#e5e5e5" font-size="11" text-anchor="middle">%d</text>
`, x+barW/2, pad+plotH+14, v))
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" fill="#a3a3a3" font-size="12" font-family="monospace">%s: %s</text>
`, pad, height-6, step.Kind, html.EscapeString(step.Text)))
	sb.WriteString("</svg>")
	return sb.String()
}

// fraction places v in [0, 1] between lo and hi. The difference is taken in
// float64 so extreme ints cannot overflow; equal bounds give 0.
func fraction(v, lo, hi int) float64 {
	if hi <= lo {
		return 0
	}
	f := (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
	return min(max(f, 0), 1)
}
