// Package structures implements the teaching data structures (binary search
// tree, linked list, bounded stack and queue). Every mutating or searching
// operation returns the frames an animation should show, ending with the
// resulting state.
package structures

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDuplicate = errors.New("structures: value already exists")
	ErrNotFound  = errors.New("structures: value not found")
	ErrEmpty     = errors.New("structures: structure is empty")
	ErrOverflow  = errors.New("structures: overflow")
	ErrUnderflow = errors.New("structures: underflow")
	ErrNotDoubly = errors.New("structures: list is singly linked")
)

// None marks an unset index in a Frame.
const None = -1

// Frame is one displayed moment. Items holds the contents in display order:
// list head to tail, stack bottom to top, queue front to back, tree in-order.
type Frame struct {
	Items  []int  `json:"items"`
	Active int    `json:"active"`
	Found  int    `json:"found"`
	Output []int  `json:"output,omitempty"`
	Text   string `json:"text"`
}

func newFrame(items []int, text string) Frame {
	return Frame{Items: items, Active: None, Found: None, Text: text}
}

// String renders the frame on one line. The active item is wrapped in
// parentheses and the found item in asterisks.
func (f Frame) String() string {
	parts := make([]string, len(f.Items))
	for i, v := range f.Items {
		s := strconv.Itoa(v)
		switch i {
		case f.Found:
			s = "*" + s + "*"
		case f.Active:
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	line := fmt.Sprintf("%-36s [%s]", f.Text, strings.Join(parts, " "))
	if len(f.Output) > 0 {
		out := make([]string, len(f.Output))
		for i, v := range f.Output {
			out[i] = strconv.Itoa(v)
		}
		line += "  out: " + strings.Join(out, " ")
	}
	return line
}

func indexOf(vals []int, v int) int {
	for i, x := range vals {
		if x == v {
			return i
		}
	}
	return None
}
