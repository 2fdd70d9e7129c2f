package viz

import (
	"fmt"
	"io"

	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/trace"
)

// TextRenderer prints each rendered step as one plain line. It is the
// player's renderer when stdout is not a terminal.
type TextRenderer struct {
	w     io.Writer
	p     *player.Player
	total int
}

func NewTextRenderer(w io.Writer, total int) *TextRenderer {
	return &TextRenderer{w: w, total: total}
}

// Attach lets the renderer print the cursor position of p.
func (r *TextRenderer) Attach(p *player.Player) { r.p = p }

func (r *TextRenderer) Render(step trace.Step) {
	idx := 0
	if r.p != nil {
		idx = r.p.Cursor()
	}
	fmt.Fprintln(r.w, PlainStep(idx, r.total, step))
}

func (r *TextRenderer) Clear() {
	fmt.Fprintf(r.w, "  0/%-3d %-11s ready\n", r.total, "-")
}
