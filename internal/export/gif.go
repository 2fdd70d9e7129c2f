package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"strconv"
	"time"

	"github.com/san-kum/algoviz/internal/trace"
)

// roles in palette order; index 0 is the background.
var gifRoles = []trace.Role{
	trace.RoleIdle,
	trace.RoleOutside,
	trace.RoleSorted,
	trace.RoleBoundary,
	trace.RoleMin,
	trace.RoleCompare,
	trace.RoleKey,
	trace.RolePivot,
	trace.RoleSwap,
}

func gifPalette() color.Palette {
	p := color.Palette{color.RGBA{0x0a, 0x0a, 0x0a, 0xff}}
	for _, r := range gifRoles {
		p = append(p, hexColor(roleFill[r]))
	}
	return p
}

func hexColor(s string) color.RGBA {
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// StepImage draws step as a paletted bar chart with the same scaling and
// colours as StepSVG.
func StepImage(step trace.Step, width, height int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, width, height), gifPalette())
	n := len(step.Seq)
	if n == 0 {
		return img
	}
	lo, hi := step.Seq[0], step.Seq[0]
	for _, v := range step.Seq {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	const pad = 10
	barW := max((width-2*pad)/n, 1)
	gap := max(barW/8, 1)
	avail := height - 2*pad
	for k, v := range step.Seq {
		h := avail
		if hi > lo {
			h = avail/10 + int(fraction(v, lo, hi)*float64(avail-avail/10))
		}
		idx := uint8(1)
		for i, r := range gifRoles {
			if r == step.Role(k) {
				idx = uint8(i + 1)
			}
		}
		x0 := pad + k*barW
		for y := height - pad - h; y < height-pad; y++ {
			for x := x0; x < x0+barW-gap; x++ {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
	return img
}

// WriteGIF encodes every step of lg as one frame of a looping animation.
func WriteGIF(w io.Writer, lg *trace.Log, width, height int, delay time.Duration) error {
	anim := gif.GIF{LoopCount: 0}
	centis := max(int(delay/(10*time.Millisecond)), 1)
	for _, step := range lg.Steps {
		anim.Image = append(anim.Image, StepImage(step, width, height))
		anim.Delay = append(anim.Delay, centis)
	}
	return gif.EncodeAll(w, &anim)
}
