package watcher

import (
	"os"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/scheduler"
)

// detect enqueues a backup job if the database changed since the last
// trigger and its size is no longer moving.
func (w *Watcher) detect() {
	w.mu.RLock()
	path := w.dbPath
	last := w.lastModTime
	w.mu.RUnlock()

	info, err := os.Stat(path)
	if err != nil {
		return
	}

	mod := info.ModTime()
	if !mod.After(last) {
		return
	}

	if !w.isStable() {
		w.log.Debug("database still changing, skipping trigger")
		return
	}

	w.mu.Lock()
	w.lastModTime = mod
	w.mu.Unlock()

	w.log.Debug("database changed", "modtime", mod)
	w.mb.Put(scheduler.Job{Trigger: "watch", Time: time.Now()})
}

// isStable samples the file size twice across the stability window.
func (w *Watcher) isStable() bool {
	w.mu.RLock()
	path := w.dbPath
	stability := w.stability
	w.mu.RUnlock()

	info1, err := os.Stat(path)
	if err != nil {
		return false
	}

	time.Sleep(stability)

	info2, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info1.Size() == info2.Size()
}
