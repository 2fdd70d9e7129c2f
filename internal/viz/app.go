package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/sorting"
)

const (
	stateMenu = iota
	statePlay
)

// Options configure the interactive app.
type Options struct {
	Delay    time.Duration
	PreStart bool
	Logger   *log.Logger
}

type app struct {
	state  int
	cursor int
	reg    *sorting.Registry
	names  []string
	opts   Options
	player Model
	err    string
	width  int
	height int
}

func newApp(reg *sorting.Registry, opts Options) app {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return app{state: stateMenu, reg: reg, names: reg.Names(), opts: opts, width: 100, height: 30}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = ws.Width, ws.Height
	}
	if _, ok := msg.(backMsg); ok {
		a.state = stateMenu
		return a, nil
	}
	if a.state == statePlay {
		next, cmd := a.player.Update(msg)
		a.player = next.(Model)
		return a, cmd
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		return a.menuKey(km)
	}
	return a, nil
}

func (a app) menuKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		sess, err := a.newSession(a.names[a.cursor])
		if err != nil {
			a.err = err.Error()
			return a, nil
		}
		a.openPlayer(sess, true)
		return a, a.player.Init()
	}
	return a, nil
}

func (a app) newSession(name string) (*session.Session, error) {
	var popts []player.Option
	if !a.opts.PreStart {
		popts = append(popts, player.WithoutPreStart())
	}
	return session.New(a.reg, name, a.opts.Logger, popts...)
}

func (a *app) openPlayer(sess *session.Session, edit bool) {
	m := NewModel(sess, a.reg.Info(sess.Algorithm), a.opts.Delay)
	m.width, m.height = a.width, a.height
	m.help.Width = a.width
	if edit {
		m = m.Editing()
	}
	a.player = m
	a.state = statePlay
}

func (a app) View() string {
	if a.state == statePlay {
		return a.player.View()
	}
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("ALGOVIZ") + "\n    " + subtle.Render("step through sorting algorithms") + "\n    " + subtle.Render("───────────────────────────────") + "\n\n")
	for i, name := range a.names {
		desc := a.reg.Info(name)
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorMark.Render("▸"), selectedItem.Render(fmt.Sprintf("%-12s", name)), itemInfo.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dimItem.Render(fmt.Sprintf("  %-12s", name)), dimInfo.Render(desc)))
		}
	}
	if a.err != "" {
		b.WriteString("\n    " + errorStyle.Render(a.err) + "\n")
	}
	b.WriteString("\n    " + cursorMark.Render("j/k") + subtle.Render(" navigate  ") + cursorMark.Render("enter") + subtle.Render(" select  ") + cursorMark.Render("q") + subtle.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive starts at the algorithm menu.
func RunInteractive(reg *sorting.Registry, opts Options) error {
	_, err := tea.NewProgram(newApp(reg, opts), tea.WithAltScreen()).Run()
	return err
}

// Play opens the player directly on sess, which must already be loaded.
// Esc still returns to the menu.
func Play(reg *sorting.Registry, sess *session.Session, opts Options) error {
	a := newApp(reg, opts)
	for i, name := range a.names {
		if name == sess.Algorithm {
			a.cursor = i
		}
	}
	a.openPlayer(sess, !sess.Loaded())
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}
