//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=assets
package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"artspace/internal/app/errors"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

// changeBuffer bounds pending change notifications; extra refs are dropped while the UI is busy
const changeBuffer = 16

// Watcher reloads override art when files in assets.dir change
type Watcher interface {
	Enabled() bool
	Start() error
	Changes() <-chan string
	Close()
}

type watcher struct {
	dir       string
	provider  Provider
	matcher   Matcher
	debouncer Debouncer
	fsWatcher *fsnotify.Watcher
	changes   chan string
	enabled   bool
	closed    bool
	mu        sync.Mutex
	log       logger.Logger
}

// NewWatcher creates a Watcher for assets.dir; it stays disabled unless assets.watch is set
func NewWatcher(cfg *config.Config, provider Provider, log logger.Logger) (Watcher, error) {
	m, err := NewMatcher(cfg.Assets.Patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidAssetPattern, err)
	}

	w := &watcher{
		provider: provider,
		matcher:  m,
		changes:  make(chan string, changeBuffer),
		enabled:  cfg.Assets.Watch && cfg.Assets.Dir != "",
		log:      log.WithComponent("WATCHER"),
	}

	if w.enabled {
		dir, err := filepath.Abs(cfg.Assets.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrAssetDirNotExist, err)
		}

		w.dir = dir
	}

	w.debouncer = NewDebouncer(cfg.Assets.Debounce, w.reload)

	return w, nil
}

func (w *watcher) Enabled() bool {
	return w.enabled
}

// Start begins watching assets.dir; it is a no-op when the watcher is disabled
func (w *watcher) Start() error {
	if !w.enabled {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.fsWatcher != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWatchAsset, err)
	}

	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return fmt.Errorf("%w: %w", errors.ErrFailedToWatchAsset, err)
	}

	w.fsWatcher = fsw
	w.log.Info().Msgf("Started watching art in %s", w.dir)

	go w.processEvents(fsw)

	return nil
}

// Changes delivers the image refs whose art was reloaded
func (w *watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.debouncer.Stop()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	close(w.changes)
}

// processEvents handles fsnotify events until the underlying watcher is closed
func (w *watcher) processEvents(fsw *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// handleEvent forwards relevant art file events to the debouncer
func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	if w.matcher.Match(event.Name) {
		w.debouncer.Trigger(event.Name)
	}
}

// reload drops cached art for changed files and notifies subscribers
func (w *watcher) reload(files []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	for _, file := range files {
		ref, ok := w.matcher.Ref(file)
		if !ok {
			continue
		}

		w.provider.Invalidate(ref)
		w.log.Debug().Msgf("Art for '%s' changed", ref)

		select {
		case w.changes <- ref:
		default:
			w.log.Warn().Msgf("Dropped change notification for '%s'", ref)
		}
	}
}

// isRelevantEvent returns true if the event should trigger a reload
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
