// Package watch re-reads an input file whenever it changes on disk and hands
// the parsed sequence to a callback.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/san-kum/algoviz/internal/parse"
)

const DefaultDebounce = 150 * time.Millisecond

type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(seq []int)
	logger   *log.Logger
	watcher  *fsnotify.Watcher
}

// New watches path. The parent directory is watched rather than the file so
// editors that save by rename are still seen.
func New(path string, debounce time.Duration, logger *log.Logger, onChange func(seq []int)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		watcher:  watcher,
	}, nil
}

// Run loads the file once, then reloads after every burst of changes until
// ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.load()

	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("input changed", "path", event.Name, "op", event.Op.String())
			fire = time.After(w.debounce)

		case <-fire:
			fire = nil
			w.load()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)

		case <-ctx.Done():
			w.logger.Debug("watcher stopping", "path", w.path)
			return ctx.Err()
		}
	}
}

func (w *Watcher) load() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("cannot read input", "path", w.path, "err", err)
		return
	}
	seq, rejects := parse.SequenceWithRejects(string(data))
	if len(rejects) > 0 {
		w.logger.Warn("ignored tokens", "tokens", rejects)
	}
	if len(seq) == 0 {
		w.logger.Warn("no numbers in input", "path", w.path)
		return
	}
	w.onChange(seq)
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
