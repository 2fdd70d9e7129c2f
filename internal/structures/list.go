package structures

import "fmt"

type listNode struct {
	val        int
	next, prev *listNode
}

// List is a singly or doubly linked list of ints.
type List struct {
	head, tail *listNode
	size       int
	doubly     bool
}

func NewList(doubly bool) *List { return &List{doubly: doubly} }

func (l *List) Doubly() bool { return l.doubly }

func (l *List) Len() int { return l.size }

func (l *List) Kind() string {
	if l.doubly {
		return "doubly"
	}
	return "singly"
}

// Values returns the contents from head to tail.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// Backward returns the contents from tail to head by following prev links.
func (l *List) Backward() ([]int, error) {
	if !l.doubly {
		return nil, ErrNotDoubly
	}
	out := make([]int, 0, l.size)
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.val)
	}
	return out, nil
}

func (l *List) frame(active, found int, text string) Frame {
	f := newFrame(l.Values(), text)
	f.Active, f.Found = active, found
	return f
}

// Append walks to the tail, recording each hop, then links v after it.
func (l *List) Append(v int) []Frame {
	n := &listNode{val: v}
	if l.head == nil {
		l.head, l.tail = n, n
		l.size++
		return []Frame{l.frame(None, 0, fmt.Sprintf("Created head node %d", v))}
	}

	var frames []Frame
	i := 0
	cur := l.head
	for ; cur.next != nil; cur = cur.next {
		frames = append(frames, l.frame(i, None, fmt.Sprintf("Traversing %d", cur.val)))
		i++
	}
	frames = append(frames, l.frame(i, None, fmt.Sprintf("Reached tail %d", cur.val)))

	cur.next = n
	if l.doubly {
		n.prev = cur
	}
	l.tail = n
	l.size++
	frames = append(frames, l.frame(None, l.size-1, fmt.Sprintf("Appended %d to the end", v)))
	return frames
}

func (l *List) Prepend(v int) []Frame {
	n := &listNode{val: v, next: l.head}
	if l.head != nil && l.doubly {
		l.head.prev = n
	}
	if l.tail == nil {
		l.tail = n
	}
	l.head = n
	l.size++
	return []Frame{l.frame(None, 0, fmt.Sprintf("Prepended %d to the head", v))}
}

// Remove unlinks the first node holding v.
func (l *List) Remove(v int) ([]Frame, error) {
	if l.head == nil {
		return []Frame{l.frame(None, None, "List is empty")}, ErrEmpty
	}

	if l.head.val == v {
		frames := []Frame{l.frame(0, None, fmt.Sprintf("Head holds %d", v))}
		l.head = l.head.next
		if l.head == nil {
			l.tail = nil
		} else if l.doubly {
			l.head.prev = nil
		}
		l.size--
		return append(frames, l.frame(None, None, fmt.Sprintf("Deleted head node %d", v))), nil
	}

	frames := []Frame{l.frame(0, None, fmt.Sprintf("Checking %d", l.head.val))}
	prev := l.head
	for i := 1; prev.next != nil; i++ {
		cur := prev.next
		if cur.val == v {
			frames = append(frames, l.frame(None, i, fmt.Sprintf("Found %d at index %d", v, i)))
			prev.next = cur.next
			if cur.next != nil && l.doubly {
				cur.next.prev = prev
			}
			if cur == l.tail {
				l.tail = prev
			}
			l.size--
			return append(frames, l.frame(None, None, fmt.Sprintf("Removed node %d", v))), nil
		}
		frames = append(frames, l.frame(i, None, fmt.Sprintf("Checking %d", cur.val)))
		prev = cur
	}
	frames = append(frames, l.frame(None, None, fmt.Sprintf("Value %d not found", v)))
	return frames, fmt.Errorf("%w: %d", ErrNotFound, v)
}

// Search returns the frames of a linear scan and the index of v, or None.
func (l *List) Search(v int) ([]Frame, int) {
	if l.head == nil {
		return []Frame{l.frame(None, None, "List is empty")}, None
	}
	var frames []Frame
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.val == v {
			return append(frames, l.frame(None, i, fmt.Sprintf("Found %d at index %d", v, i))), i
		}
		frames = append(frames, l.frame(i, None, fmt.Sprintf("Checking %d", n.val)))
		i++
	}
	return append(frames, l.frame(None, None, "Not found")), None
}
