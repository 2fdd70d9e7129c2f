package watch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("3, 2, 1"), 0644))

	got := make(chan []int, 8)
	w, err := New(path, 10*time.Millisecond, log.New(io.Discard), func(seq []int) { got <- seq })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case seq := <-got:
		assert.Equal(t, []int{3, 2, 1}, seq)
	case <-time.After(2 * time.Second):
		t.Fatal("initial load not delivered")
	}

	require.NoError(t, os.WriteFile(path, []byte("9 8 x 7"), 0644))
	select {
	case seq := <-got:
		assert.Equal(t, []int{9, 8, 7}, seq)
	case <-time.After(5 * time.Second):
		t.Fatal("change not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherSkipsEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing"), 0644))

	called := false
	w, err := New(path, 0, log.New(io.Discard), func([]int) { called = true })
	require.NoError(t, err)
	defer w.Close()

	w.load()
	assert.False(t, called)
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "input.txt"), 0, nil, func([]int) {})
	assert.Error(t, err)
}
