package structures

import "fmt"

const (
	StackCap = 8
	QueueCap = 7
)

// Stack is a bounded LIFO stack. Items are kept bottom to top.
type Stack struct {
	items []int
	cap   int
}

func NewStack() *Stack { return &Stack{cap: StackCap} }

func (s *Stack) Len() int { return len(s.items) }
func (s *Stack) Cap() int { return s.cap }

func (s *Stack) Values() []int { return append([]int(nil), s.items...) }

func (s *Stack) top() int { return len(s.items) - 1 }

func (s *Stack) Push(v int) (Frame, error) {
	if len(s.items) >= s.cap {
		return newFrame(s.Values(), "Stack overflow, max size reached"), ErrOverflow
	}
	s.items = append(s.items, v)
	f := newFrame(s.Values(), fmt.Sprintf("Pushed %d", v))
	f.Found = s.top()
	return f, nil
}

func (s *Stack) Pop() (int, Frame, error) {
	if len(s.items) == 0 {
		return 0, newFrame(nil, "Stack underflow, it is empty"), ErrUnderflow
	}
	v := s.items[s.top()]
	s.items = s.items[:s.top()]
	return v, newFrame(s.Values(), fmt.Sprintf("Popped %d", v)), nil
}

func (s *Stack) Peek() (int, Frame, error) {
	if len(s.items) == 0 {
		return 0, newFrame(nil, "Stack is empty"), ErrUnderflow
	}
	v := s.items[s.top()]
	f := newFrame(s.Values(), fmt.Sprintf("Peek: top is %d", v))
	f.Active = s.top()
	return v, f, nil
}

func (s *Stack) Clear() { s.items = nil }

// Queue is a bounded FIFO queue. Items are kept front to back.
type Queue struct {
	items []int
	cap   int
}

func NewQueue() *Queue { return &Queue{cap: QueueCap} }

func (q *Queue) Len() int { return len(q.items) }
func (q *Queue) Cap() int { return q.cap }

func (q *Queue) Values() []int { return append([]int(nil), q.items...) }

func (q *Queue) Enqueue(v int) (Frame, error) {
	if len(q.items) >= q.cap {
		return newFrame(q.Values(), "Queue full (overflow)"), ErrOverflow
	}
	q.items = append(q.items, v)
	f := newFrame(q.Values(), fmt.Sprintf("Enqueued %d", v))
	f.Found = len(q.items) - 1
	return f, nil
}

func (q *Queue) Dequeue() (int, Frame, error) {
	if len(q.items) == 0 {
		return 0, newFrame(nil, "Queue empty (underflow)"), ErrUnderflow
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, newFrame(q.Values(), fmt.Sprintf("Dequeued %d", v)), nil
}

func (q *Queue) Peek() (int, Frame, error) {
	if len(q.items) == 0 {
		return 0, newFrame(nil, "Queue is empty"), ErrUnderflow
	}
	f := newFrame(q.Values(), fmt.Sprintf("Peek: front is %d", q.items[0]))
	f.Active = 0
	return q.items[0], f, nil
}

func (q *Queue) Clear() { q.items = nil }
