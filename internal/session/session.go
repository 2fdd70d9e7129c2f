// Package session holds the state of one visualizer surface: the selected
// algorithm, its input, the recorded log and the player over it.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
)

// ErrBusy is returned when a timed sequence is already running.
var ErrBusy = errors.New("session: a sequence is already running")

// Guard lets at most one timed sequence run at a time.
type Guard struct {
	mu   sync.Mutex
	busy bool
}

// Begin claims the guard or returns ErrBusy.
func (g *Guard) Begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return ErrBusy
	}
	g.busy = true
	return nil
}

func (g *Guard) End() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

type Session struct {
	ID        string
	Algorithm string
	Input     []int
	Log       *trace.Log
	Player    *player.Player
	Guard     Guard

	reg    *sorting.Registry
	rec    sorting.Recorder
	opts   []player.Option
	logger *log.Logger
}

// New creates a session for the named algorithm. Nothing is recorded until
// Load is called.
func New(reg *sorting.Registry, algorithm string, logger *log.Logger, opts ...player.Option) (*Session, error) {
	rec, err := reg.Get(algorithm)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	return &Session{
		ID:        id,
		Algorithm: algorithm,
		reg:       reg,
		rec:       rec,
		opts:      append([]player.Option{player.WithLogger(logger)}, opts...),
		logger:    logger.With("session", id[:8]),
	}, nil
}

// Load records input and replaces the log and player whole. It fails with
// ErrBusy while a timed sequence runs.
func (s *Session) Load(input []int) error {
	if s.Guard.Busy() {
		return ErrBusy
	}
	lg := s.rec.Record(input)
	if err := lg.Validate(); err != nil {
		return fmt.Errorf("record %s: %w", s.Algorithm, err)
	}
	s.Input = append([]int(nil), input...)
	s.Log = lg
	s.Player = player.New(lg, s.opts...)
	s.logger.Info("recorded", "algorithm", s.Algorithm, "input", len(input), "steps", lg.Len())
	return nil
}

// Switch selects another algorithm and re-records the current input.
func (s *Session) Switch(algorithm string) error {
	if s.Guard.Busy() {
		return ErrBusy
	}
	rec, err := s.reg.Get(algorithm)
	if err != nil {
		return err
	}
	s.Algorithm = algorithm
	s.rec = rec
	if s.Input == nil {
		return nil
	}
	return s.Load(s.Input)
}

// Loaded reports whether a log has been recorded.
func (s *Session) Loaded() bool { return s.Log != nil }
