package trace

import "fmt"

// Log is the ordered step sequence produced by one recorder run.
type Log struct {
	Algorithm string `json:"algorithm"`
	Input     []int  `json:"input"`
	Steps     []Step `json:"steps"`
	Tree      Tree   `json:"tree"`
}

func NewLog(algorithm string, input []int) *Log {
	return &Log{
		Algorithm: algorithm,
		Input:     cloneInts(input),
		Steps:     make([]Step, 0, 4*len(input)+1),
	}
}

// Append stores a copy of s.
func (l *Log) Append(s Step) {
	l.Steps = append(l.Steps, s.Clone())
}

func (l *Log) Len() int { return len(l.Steps) }

// At returns a copy of step i. It panics when i is out of range.
func (l *Log) At(i int) Step {
	return l.Steps[i].Clone()
}

// Last returns a copy of the final step, or a blank step for an empty log.
func (l *Log) Last() Step {
	if len(l.Steps) == 0 {
		return Blank(KindDone)
	}
	return l.At(len(l.Steps) - 1)
}

// Final returns the sequence of the last step.
func (l *Log) Final() []int {
	return l.Last().Seq
}

// Count returns how many steps have the given kind.
func (l *Log) Count(kind Kind) int {
	n := 0
	for _, s := range l.Steps {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Validate checks every annotation and node reference of the log.
func (l *Log) Validate() error {
	if len(l.Steps) == 0 {
		return ErrEmptyLog
	}
	if err := l.Tree.validate(); err != nil {
		return err
	}
	for i, s := range l.Steps {
		if len(s.Seq) != len(l.Input) || len(s.Origin) != len(l.Input) {
			return &StepError{Index: i, Kind: s.Kind, Wrapped: ErrLengthMismatch}
		}
		for _, idx := range s.Indices() {
			if idx < 0 || idx >= len(s.Seq) {
				return &StepError{Index: i, Kind: s.Kind, Wrapped: ErrIndexOutOfRange}
			}
		}
		if s.Node != None && !l.Tree.Has(s.Node) {
			return &StepError{Index: i, Kind: s.Kind, Wrapped: ErrUnknownNode}
		}
	}
	return nil
}

// validate checks that node i sits at index i, that its parent is None or an
// earlier node, and that its depth is one more than the parent's.
func (t *Tree) validate() error {
	for i, n := range t.Nodes {
		if n.ID != i {
			return fmt.Errorf("%w: node %d has id %d", ErrBadTree, i, n.ID)
		}
		if n.Parent == None {
			if n.Depth != 0 {
				return fmt.Errorf("%w: root node %d at depth %d", ErrBadTree, i, n.Depth)
			}
			continue
		}
		if n.Parent < 0 || n.Parent >= i {
			return fmt.Errorf("%w: node %d has parent %d", ErrBadTree, i, n.Parent)
		}
		if want := t.Nodes[n.Parent].Depth + 1; n.Depth != want {
			return fmt.Errorf("%w: node %d at depth %d, want %d", ErrBadTree, i, n.Depth, want)
		}
	}
	return nil
}
