package skincfg

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WatchOptions configures skin file watching behavior.
type WatchOptions struct {
	// PollInterval for file stat checks (clamped to MinPollInterval).
	PollInterval time.Duration

	// Debounce duration to avoid re-decoding mid-rewrite.
	Debounce time.Duration

	// Logger receives reload activity and decode failures.
	Logger *zap.Logger
}

// DefaultWatchOptions returns sensible defaults for skin file watching.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
	}
}

// SkinWatcher polls a skin definition file and re-decodes it into a fresh
// store whenever the file settles after a change. The watcher never touches
// an existing store or chain: subscribers receive the new store and the
// owning context rebuilds its resolution chain with it.
type SkinWatcher struct {
	mu          sync.Mutex
	subscribers []chan *SkinStore

	path       string
	opts       WatchOptions
	decodeOpts DecodeOptions
	log        *zap.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// WatchFile starts watching a skin definition file. The file must exist and
// decode successfully at start; the initial store is returned so the caller
// can build its first chain before any change events arrive.
func WatchFile(path string, opts WatchOptions, decodeOpts DecodeOptions) (*SkinWatcher, *SkinStore, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	initial, err := DecodeFile(path, decodeOpts)
	if err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &SkinWatcher{
		path:       path,
		opts:       opts,
		decodeOpts: decodeOpts,
		log:        log,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	go w.poll(ctx, info.ModTime(), info.Size())
	return w, initial, nil
}

// Subscribe returns a channel delivering freshly decoded stores. Slow
// subscribers drop intermediate stores rather than blocking the watcher.
func (w *SkinWatcher) Subscribe() <-chan *SkinStore {
	ch := make(chan *SkinStore, 1)
	w.mu.Lock()
	w.subscribers = append(w.subscribers, ch)
	w.mu.Unlock()
	return ch
}

// Stop terminates the watcher and closes all subscriber channels.
func (w *SkinWatcher) Stop() {
	w.cancel()
	<-w.done

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subscribers {
		close(ch)
	}
	w.subscribers = nil
}

// poll stats the file on each tick and re-decodes once a detected change has
// settled for the debounce period.
func (w *SkinWatcher) poll(ctx context.Context, modTime time.Time, size int64) {
	defer close(w.done)

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	var changedAt time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		info, err := os.Stat(w.path)
		if err != nil {
			// File temporarily missing during an atomic replace; keep polling.
			continue
		}

		if !info.ModTime().Equal(modTime) || info.Size() != size {
			modTime = info.ModTime()
			size = info.Size()
			changedAt = time.Now()
			continue
		}

		if !changedAt.IsZero() && time.Since(changedAt) >= w.opts.Debounce {
			changedAt = time.Time{}
			w.reload()
		}
	}
}

func (w *SkinWatcher) reload() {
	store, err := DecodeFile(w.path, w.decodeOpts)
	if err != nil {
		w.log.Warn("skin reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.log.Debug("skin definition reloaded", zap.String("path", w.path))

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subscribers {
		select {
		case ch <- store:
		default:
			// Drop the stale pending store so the newest one wins.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- store:
			default:
			}
		}
	}
}
