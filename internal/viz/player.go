package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algoviz/internal/parse"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
)

type tickMsg struct{ gen int }

type backMsg struct{}

// Model is the step player screen for one session.
type Model struct {
	sess    *session.Session
	info    string
	keys    keyMap
	help    help.Model
	input   textinput.Model
	editing bool
	playing bool
	gen     int
	delay   time.Duration
	notice  string
	failed  bool
	width   int
	height  int
}

func NewModel(sess *session.Session, info string, delay time.Duration) Model {
	ti := textinput.New()
	ti.Prompt = "sequence> "
	ti.Placeholder = "e.g. 5, 2, 4, 1"
	ti.CharLimit = 512
	ti.Width = 60
	if sess.Loaded() {
		ti.SetValue(parse.Format(sess.Input))
	}
	return Model{
		sess:   sess,
		info:   info,
		keys:   defaultKeys,
		help:   help.New(),
		input:  ti,
		delay:  delay,
		width:  100,
		height: 30,
	}
}

// Editing opens the input line before anything is recorded.
func (m Model) Editing() Model {
	m.editing = true
	m.input.Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.editing {
		return textinput.Blink
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if !m.playing || msg.gen != m.gen {
			return m, nil
		}
		m.sess.Player.Next()
		if !m.sess.Player.CanNext() {
			m.stop()
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.playKey(msg)
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		seq, err := parse.Sequence(m.input.Value())
		if err != nil {
			m.setError("enter at least one integer")
			return m, nil
		}
		if err := m.sess.Load(seq); err != nil {
			if errors.Is(err, session.ErrBusy) {
				m.setNotice("stop playback before loading a new sequence")
			} else {
				m.setError(err.Error())
			}
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.setNotice(fmt.Sprintf("recorded %d steps", m.sess.Log.Len()))
		return m, nil
	case tea.KeyEsc:
		if !m.sess.Loaded() {
			return m, back
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) playKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.sess.Player
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.stop()
		return m, back
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Theme):
		NextTheme()
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.stop()
			return m, nil
		}
		return m.play()
	case key.Matches(msg, m.keys.Next):
		m.stop()
		p.Next()
	case key.Matches(msg, m.keys.Prev):
		m.stop()
		p.Prev()
	case key.Matches(msg, m.keys.First):
		m.stop()
		p.First()
	case key.Matches(msg, m.keys.Last):
		m.stop()
		p.Last()
	case key.Matches(msg, m.keys.Reset):
		m.stop()
		p.Reset()
	}
	return m, nil
}

func back() tea.Msg { return backMsg{} }

func (m Model) play() (tea.Model, tea.Cmd) {
	if err := m.sess.Guard.Begin(); err != nil {
		m.setNotice("a sequence is already running")
		return m, nil
	}
	if !m.sess.Player.CanNext() {
		m.sess.Player.Reset()
	}
	m.playing = true
	m.gen++
	m.notice = ""
	return m, m.tick()
}

func (m *Model) stop() {
	if !m.playing {
		return
	}
	m.playing = false
	m.gen++
	m.sess.Guard.End()
}

func (m *Model) setNotice(s string) { m.notice, m.failed = s, false }
func (m *Model) setError(s string)  { m.notice, m.failed = s, true }

func (m Model) barRows() int {
	return min(max(m.height-18, 4), 14)
}

func (m Model) View() string {
	var left strings.Builder
	left.WriteString(titleStyle.Render(strings.ToUpper(m.sess.Algorithm+" sort")) + "  " + subtle.Render(m.info) + "\n")

	if !m.sess.Loaded() {
		left.WriteString("\n" + subtle.Render("Type a comma separated list of integers and press enter.") + "\n\n")
		left.WriteString(m.input.View() + "\n")
		if m.notice != "" {
			left.WriteString("\n" + m.noticeView() + "\n")
		}
		return panelStyle.Render(left.String())
	}

	p := m.sess.Player
	step, ok := p.Current()
	if !ok {
		step = trace.Blank(trace.KindStart)
		step.Seq = m.sess.Log.Input
	}

	left.WriteString(m.status(ok) + "\n\n")
	left.WriteString(RenderBars(step, m.barRows()) + "\n\n")
	if ok {
		left.WriteString(narration.Render(step.Text) + "\n")
		left.WriteString(Legend(step) + "\n")
	} else {
		left.WriteString(narration.Render("Press → to begin.") + "\n")
	}

	if sorting.Recursive(m.sess.Algorithm) && ok {
		left.WriteString("\n" + subtle.Render("recursion") + "\n")
		for _, line := range TreeLines(m.sess.Log, p.Cursor()) {
			left.WriteString(line + "\n")
		}
	}

	if m.editing {
		left.WriteString("\n" + m.input.View() + "\n")
	}
	if m.notice != "" {
		left.WriteString("\n" + m.noticeView() + "\n")
	}
	left.WriteString("\n" + m.help.View(m.keys))

	main := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), statsStyle.Render(m.stats()))
	return panelStyle.Render(main)
}

func (m Model) status(started bool) string {
	p := m.sess.Player
	switch {
	case m.playing:
		return statusPlaying.Render("▶ PLAYING")
	case !started:
		return statusPaused.Render("● READY")
	case p.AtEnd():
		return statusPlaying.Render("✓ DONE")
	}
	return statusPaused.Render("❚❚ PAUSED")
}

func (m Model) noticeView() string {
	if m.failed {
		return errorStyle.Render(m.notice)
	}
	return noticeStyle.Render(m.notice)
}

func (m Model) stats() string {
	p := m.sess.Player
	lg := m.sess.Log
	var s strings.Builder

	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(p.Progress()) + "\n")
	frac := 0.0
	if lg.Len() > 0 {
		frac = float64(p.Cursor()+1) / float64(lg.Len())
	}
	s.WriteString(ProgressBar(frac, 28) + "\n\n")

	kind := "-"
	if step, ok := p.Current(); ok {
		kind = step.Kind.String()
	}
	s.WriteString(labelStyle.Render("Action") + valueStyle.Render(kind) + "\n")

	compares, swaps := opSeries(lg, p.Cursor())
	s.WriteString(labelStyle.Render("Compares") + valueStyle.Render(fmt.Sprintf("%d", last(compares))) + "\n")
	s.WriteString(labelStyle.Render("Swaps") + valueStyle.Render(fmt.Sprintf("%d", last(swaps))) + "\n")
	s.WriteString(labelStyle.Render("Input") + valueStyle.Render(fmt.Sprintf("%d values", len(lg.Input))) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(CurrentTheme.Name) + "\n")

	if len(compares) > 1 {
		chart := asciigraph.PlotMany([][]float64{compares, swaps},
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.SeriesColors(asciigraph.Yellow, asciigraph.Red),
			asciigraph.Caption("compares / swaps"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	return s.String()
}

// opSeries returns the running compare and swap counts up to cursor.
func opSeries(lg *trace.Log, cursor int) (compares, swaps []float64) {
	var c, w float64
	for i := 0; i <= cursor && i < lg.Len(); i++ {
		switch lg.Steps[i].Kind {
		case trace.KindCompare:
			c++
		case trace.KindSwap, trace.KindPlacePivot:
			w++
		}
		compares = append(compares, c)
		swaps = append(swaps, w)
	}
	return compares, swaps
}

func last(vals []float64) int {
	if len(vals) == 0 {
		return 0
	}
	return int(vals[len(vals)-1])
}
