// Package watch re-runs a callback when a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

// DefaultDebounce groups the burst of events an editor emits on save.
const DefaultDebounce = 100 * time.Millisecond

// Handler is invoked with the watched path after a debounced change.
type Handler func(ctx context.Context, path string) error

// Watcher watches one file by observing its parent directory, so that
// editors which replace the file on save are still picked up.
type Watcher struct {
	path     string
	dir      string
	name     string
	debounce time.Duration
	handler  Handler
	logger   *logger.Logger
	fs       *fsnotify.Watcher
}

// Option customises a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watcher diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(w *Watcher) { w.logger = log }
}

// New creates a watcher for path. Call Run to start it.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watch %s: handler is required", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		path:     path,
		dir:      filepath.Dir(abs),
		name:     filepath.Base(abs),
		debounce: DefaultDebounce,
		handler:  handler,
		logger:   logger.Nop(),
		fs:       fsw,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}
	return w, nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.name {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Run blocks until ctx is cancelled or the underlying watcher fails. Handler
// errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.WithFields(map[string]any{"op": event.Op.String(), "path": event.Name}).Debug("file event")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)

		case <-fire:
			fire = nil
			if err := w.handler(ctx, w.path); err != nil {
				w.logger.WithFields(map[string]any{"path": w.path}).Error(err, "change handler failed")
			}
		}
	}
}
