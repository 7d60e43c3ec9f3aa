package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// startFsNotify triggers detect() when fsnotify reports changes to the
// database file. The directory is watched rather than the file itself, since
// SQLite rewrites can replace the inode.
func (w *Watcher) startFsNotify(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	w.mu.RLock()
	dir := filepath.Dir(w.dbPath)
	name := filepath.Base(w.dbPath)
	debounce := w.debounce
	w.mu.RUnlock()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	// Channel to request debounce resets
	resetCh := make(chan struct{}, 1)

	go func() {
		var t *time.Timer
		for range resetCh {
			if t != nil {
				t.Stop()
			}
			t = time.AfterFunc(debounce, func() {
				defer func() {
					if r := recover(); r != nil {
						w.log.Error("detect panic", "panic", r)
					}
				}()
				w.detect()
			})
		}
	}()
	defer close(resetCh)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				w.log.Error("events channel closed")
				return nil
			}

			w.log.Debug("event", "name", ev.Name, "op", ev.Op.String())

			// the database file itself, or its WAL/journal sidecars
			base := filepath.Base(ev.Name)
			if base != name && base != name+"-wal" && base != name+"-journal" {
				continue
			}

			// Non-blocking send to reset debounce
			select {
			case resetCh <- struct{}{}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify error", "error", err)
		}
	}
}
