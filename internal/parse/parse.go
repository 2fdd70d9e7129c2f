// Package parse turns user-typed text into algorithm inputs.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrNoSequence is returned when the text holds no usable number.
	ErrNoSequence = errors.New("parse: no numbers in input")

	// ErrBadEdge is returned for an edge token that is not "u-v".
	ErrBadEdge = errors.New("parse: malformed edge")
)

// Edge is an undirected connection between two node ids.
type Edge struct {
	From, To int
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// Tokens splits text on commas, semicolons and whitespace.
func Tokens(text string) []string {
	return strings.FieldsFunc(text, isSeparator)
}

// Sequence parses a delimited list of integers. Tokens that are not
// integers are discarded; when nothing survives ErrNoSequence is returned.
func Sequence(text string) ([]int, error) {
	seq, _ := SequenceWithRejects(text)
	if len(seq) == 0 {
		return nil, ErrNoSequence
	}
	return seq, nil
}

// SequenceWithRejects is Sequence that also reports the discarded tokens.
func SequenceWithRejects(text string) ([]int, []string) {
	var seq []int
	var rejects []string
	for _, tok := range Tokens(text) {
		v, err := strconv.Atoi(tok)
		if err != nil {
			rejects = append(rejects, tok)
			continue
		}
		seq = append(seq, v)
	}
	return seq, rejects
}

// SequenceOr parses text and substitutes fallback when it holds no number.
func SequenceOr(text string, fallback []int) []int {
	seq, err := Sequence(text)
	if err != nil {
		out := make([]int, len(fallback))
		copy(out, fallback)
		return out
	}
	return seq
}

// Edges parses "0-1, 1-2" style edge lists.
func Edges(text string) ([]Edge, error) {
	var edges []Edge
	for _, tok := range Tokens(text) {
		from, to, ok := strings.Cut(tok, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, tok)
		}
		u, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, tok)
		}
		v, err := strconv.Atoi(to)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, tok)
		}
		edges = append(edges, Edge{From: u, To: v})
	}
	return edges, nil
}

// Format renders a sequence the way Sequence reads it back.
func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
