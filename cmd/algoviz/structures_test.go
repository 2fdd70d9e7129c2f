package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/algoviz/internal/structures"
)

func TestPaceFramesInterruptIsClean(t *testing.T) {
	s := structures.NewStack()
	f1, _ := s.Push(1)
	f2, _ := s.Push(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := paceFrames(ctx, &buf, time.Millisecond, []structures.Frame{f1, f2}); err != nil {
		t.Fatalf("interrupt should not fail the command: %v", err)
	}
	if !strings.Contains(buf.String(), "-- stopped --") {
		t.Errorf("expected idle line, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "Pushed") {
		t.Errorf("no frame should show after cancel, got %q", buf.String())
	}
}

func TestPaceFramesShowsEveryFrame(t *testing.T) {
	s := structures.NewStack()
	f1, _ := s.Push(1)
	f2, _ := s.Push(2)

	var buf bytes.Buffer
	if err := paceFrames(context.Background(), &buf, time.Millisecond, []structures.Frame{f1, f2}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Pushed 2") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
