// Package player navigates a recorded step log.
//
// A Player owns a cursor into one immutable [trace.Log]. Navigation is
// synchronous and instantaneous; out-of-range requests are clamped. Because
// every step is a full snapshot, moving backward shows exactly what moving
// forward showed at that position.
package player

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/trace"
)

// BeforeStart is the cursor position before the first step.
const BeforeStart = -1

// Renderer consumes the step at the cursor. Rendering the same step twice
// must look identical.
type Renderer interface {
	Render(step trace.Step)
}

type RendererFunc func(step trace.Step)

func (f RendererFunc) Render(step trace.Step) { f(step) }

// Clearer is implemented by renderers that can show the pre-start placeholder.
type Clearer interface {
	Clear()
}

type Option func(*Player)

func WithRenderer(r Renderer) Option {
	return func(p *Player) { p.renderer = r }
}

// WithoutPreStart makes the first step the lower bound and renders it at once.
func WithoutPreStart() Option {
	return func(p *Player) { p.lower = 0 }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.logger = l }
}

type Player struct {
	log      *trace.Log
	cursor   int
	lower    int
	renderer Renderer
	logger   *log.Logger
}

func New(lg *trace.Log, opts ...Option) *Player {
	p := &Player{log: lg, lower: BeforeStart}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	switch lg.Len() {
	case 0:
		// nothing to show; keep the cursor before the start whatever the option
		p.lower = BeforeStart
	case 1:
		// a trivial input is already at its terminal state
		p.lower = 0
	}
	p.cursor = p.lower
	p.show()
	return p
}

func (p *Player) Log() *trace.Log { return p.log }

func (p *Player) Cursor() int { return p.cursor }

func (p *Player) Len() int { return p.log.Len() }

func (p *Player) LowerBound() int { return p.lower }

func (p *Player) AtStart() bool { return p.cursor == p.lower }

func (p *Player) AtEnd() bool { return p.cursor == p.log.Len()-1 }

func (p *Player) CanPrev() bool { return p.cursor > p.lower }

func (p *Player) CanNext() bool { return p.cursor < p.log.Len()-1 }

// Current returns the step at the cursor; false before the start.
func (p *Player) Current() (trace.Step, bool) {
	if p.cursor < 0 || p.cursor >= p.log.Len() {
		return trace.Step{}, false
	}
	return p.log.At(p.cursor), true
}

// Next advances by one. At the end it is a no-op and renders nothing.
func (p *Player) Next() (trace.Step, bool) {
	if !p.CanNext() {
		return p.Current()
	}
	p.move(p.cursor + 1)
	return p.Current()
}

// Prev retreats by one. At the lower bound it is a no-op.
func (p *Player) Prev() (trace.Step, bool) {
	if !p.CanPrev() {
		return p.Current()
	}
	p.move(p.cursor - 1)
	return p.Current()
}

func (p *Player) First() (trace.Step, bool) {
	return p.Seek(0)
}

func (p *Player) Last() (trace.Step, bool) {
	return p.Seek(p.log.Len() - 1)
}

// Seek jumps to i, clamped to the valid range, and always re-renders.
func (p *Player) Seek(i int) (trace.Step, bool) {
	p.move(p.clamp(i))
	return p.Current()
}

// Reset returns to the initial position.
func (p *Player) Reset() {
	p.move(p.lower)
}

// Progress renders the 1-based step counter, e.g. "3 / 10".
func (p *Player) Progress() string {
	if p.cursor < 0 {
		return fmt.Sprintf("0 / %d", p.log.Len())
	}
	return fmt.Sprintf("%d / %d", p.cursor+1, p.log.Len())
}

func (p *Player) clamp(i int) int {
	if i >= p.log.Len() {
		i = p.log.Len() - 1
	}
	if i < p.lower {
		i = p.lower
	}
	return i
}

func (p *Player) move(to int) {
	from := p.cursor
	p.cursor = to
	p.logger.Debug("cursor moved", "algorithm", p.log.Algorithm, "from", from, "to", to, "len", p.log.Len())
	p.show()
}

func (p *Player) show() {
	if p.renderer == nil {
		return
	}
	step, ok := p.Current()
	if !ok {
		if c, isClearer := p.renderer.(Clearer); isClearer {
			c.Clear()
		}
		return
	}
	p.renderer.Render(step)
}
