package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/debounce"
)

// DefaultReloadDelay is the quiet period after the last file event before a reload.
const DefaultReloadDelay = 250 * time.Millisecond

// Watcher reloads the catalog when its file changes. Editors often write a
// file through a temp file and rename, so the parent directory is watched
// and events are filtered by file name. Bursts of events collapse into one
// reload through a debouncer.
type Watcher struct {
	repo    *Repo
	path    string
	delay   time.Duration
	logger  *zap.Logger
	reloads *prometheus.CounterVec
	entries prometheus.Gauge
}

// NewWatcher creates a Watcher for path. delay <= 0 means DefaultReloadDelay.
func NewWatcher(repo *Repo, path string, delay time.Duration, logger *zap.Logger) *Watcher {
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		repo:   repo,
		path:   filepath.Clean(path),
		delay:  delay,
		logger: logger,
	}
}

// WithMetrics sets the reload counter (label "status": "ok"/"error") and the entry gauge.
// Either may be nil.
func (w *Watcher) WithMetrics(reloads *prometheus.CounterVec, entries prometheus.Gauge) *Watcher {
	w.reloads = reloads
	w.entries = entries
	return w
}

// Run watches until ctx is cancelled. A pending reload is dropped on exit.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close() //nolint:errcheck // best-effort on shutdown

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	reload := debounce.New(w.Reload, w.delay)
	defer reload.Cancel()

	w.logger.Info("watching catalog", zap.String("path", w.path), zap.Duration("delay", w.delay))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				reload.Call(ctx)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

// Reload reads the file and publishes it. A file that fails to load leaves
// the previous snapshot in place.
func (w *Watcher) Reload(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := w.repo.LoadFile(w.path); err != nil {
		w.count("error")
		w.logger.Warn("catalog reload failed, keeping previous snapshot",
			zap.String("path", w.path),
			zap.Error(err),
		)
		return
	}
	w.count("ok")
	n := w.repo.Len()
	if w.entries != nil {
		w.entries.Set(float64(n))
	}
	w.logger.Info("catalog reloaded", zap.String("path", w.path), zap.Int("entries", n))
}

func (w *Watcher) count(status string) {
	if w.reloads != nil {
		w.reloads.WithLabelValues(status).Inc()
	}
}
