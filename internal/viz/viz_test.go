package viz

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
)

func loaded(t *testing.T, algorithm string, input []int) Model {
	t.Helper()
	sess, err := session.New(sorting.NewRegistry(), algorithm, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Load(input); err != nil {
		t.Fatal(err)
	}
	return NewModel(sess, "", time.Millisecond)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelNavigation(t *testing.T) {
	m := loaded(t, "insertion", []int{5, 2, 4, 1})
	p := m.sess.Player

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if p.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", p.Cursor())
	}
	m = press(m, runes("]"))
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if p.Cursor() != 0 {
		t.Fatalf("expected cursor 0 after next+prev, got %d", p.Cursor())
	}
	m = press(m, runes("G"))
	if !p.AtEnd() {
		t.Error("G should jump to the last step")
	}
	m = press(m, runes("g"))
	if p.Cursor() != 0 {
		t.Errorf("g should jump to the first step, got %d", p.Cursor())
	}
	press(m, runes("r"))
	if p.Cursor() != player.BeforeStart {
		t.Errorf("reset should return before the start, got %d", p.Cursor())
	}
}

func TestModelAutoPlay(t *testing.T) {
	m := loaded(t, "bubble", []int{3, 2, 1})
	m = press(m, space)
	if !m.playing || !m.sess.Guard.Busy() {
		t.Fatal("space should start playback and hold the guard")
	}

	for i := 0; i < 100 && m.playing; i++ {
		next, _ := m.Update(tickMsg{gen: m.gen})
		m = next.(Model)
	}
	if m.playing {
		t.Fatal("playback did not finish")
	}
	if !m.sess.Player.AtEnd() {
		t.Error("playback should stop on the last step")
	}
	if m.sess.Guard.Busy() {
		t.Error("guard should be released after playback")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := loaded(t, "quick", []int{3, 1, 2})
	m = press(m, space)
	stale := m.gen
	m = press(m, space)

	before := m.sess.Player.Cursor()
	next, cmd := m.Update(tickMsg{gen: stale})
	m = next.(Model)
	if cmd != nil || m.sess.Player.Cursor() != before {
		t.Error("a tick from a stopped run must not advance")
	}
}

func TestModelLoadWhilePlaying(t *testing.T) {
	m := loaded(t, "merge", []int{4, 3, 2, 1})
	m = press(m, space)
	m = press(m, runes("e"))
	if !m.editing {
		t.Fatal("e should open the input line")
	}
	m.input.SetValue("9, 8")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.notice, "stop playback") {
		t.Errorf("expected busy notice, got %q", m.notice)
	}
	if len(m.sess.Input) != 4 {
		t.Error("input must not change while playing")
	}
}

func TestModelEditInput(t *testing.T) {
	m := loaded(t, "selection", []int{2, 1})
	m = press(m, runes("e"))
	m.input.SetValue("no numbers")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.failed || !m.editing {
		t.Fatal("invalid input should keep the editor open with an error")
	}

	m.input.SetValue("7 3 5")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Fatal("valid input should close the editor")
	}
	if got := m.sess.Log.Final(); got[0] != 3 || got[2] != 7 {
		t.Errorf("unexpected final sequence %v", got)
	}
	if !strings.Contains(m.View(), "SELECTION SORT") {
		t.Error("view should show the algorithm title")
	}
}

func TestBarHeights(t *testing.T) {
	got := barHeights([]int{1, 5, 3}, 5)
	want := []int{1, 5, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	flat := barHeights([]int{4, 4}, 3)
	if flat[0] != 3 || flat[1] != 3 {
		t.Errorf("equal values should fill the chart, got %v", flat)
	}
}

func TestBarHeightsExtremeValues(t *testing.T) {
	got := barHeights([]int{math.MinInt, 0, math.MaxInt}, 5)
	want := []int{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPlainStep(t *testing.T) {
	s := trace.Blank(trace.KindSwap)
	s.Seq = []int{2, 1, 3}
	s.SwapA, s.SwapB = 0, 1
	s.SortedFrom = 2
	s.Text = "Swapped."
	line := PlainStep(4, 9, s)
	if !strings.Contains(line, "[<2> <1> 3*]") {
		t.Errorf("unexpected line %q", line)
	}
	if !strings.HasPrefix(line, "  5/9") {
		t.Errorf("unexpected prefix %q", line)
	}
}

func TestTextRenderer(t *testing.T) {
	lg := sorting.NewInsertion().Record([]int{2, 1})
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, lg.Len())
	p := player.New(lg, player.WithRenderer(r))
	r.Attach(p)
	for p.CanNext() {
		p.Next()
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != lg.Len()+1 {
		t.Fatalf("expected %d lines, got %d:\n%s", lg.Len()+1, len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "ready") {
		t.Errorf("first line should be the pre-start placeholder: %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "done") {
		t.Errorf("last line should be the done step: %q", lines[len(lines)-1])
	}
}

func TestTreeLines(t *testing.T) {
	lg := sorting.NewMerge().Record([]int{4, 3, 2, 1})
	lines := TreeLines(lg, lg.Len()-1)
	if len(lines) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lines))
	}
	// the root is current at the end, every other node is resolved
	if strings.Count(strings.Join(lines, "\n"), "✓") != lg.Tree.Len()-1 {
		t.Errorf("unexpected tree rendering:\n%s", strings.Join(lines, "\n"))
	}
	if TreeLines(sorting.NewInsertion().Record([]int{2, 1}), 0) != nil {
		t.Error("flat algorithms have no tree")
	}
}

func TestNextTheme(t *testing.T) {
	defer SetTheme(CurrentTheme.Name)
	SetTheme("retro")
	NextTheme()
	if CurrentTheme.Name != "ocean" {
		t.Errorf("expected ocean, got %s", CurrentTheme.Name)
	}
	if RoleColor(trace.RoleSwap) != ThemeOcean.Swap {
		t.Error("role colours should follow the theme")
	}
}
