// Package watcher observes the live database file and enqueues backup jobs
// when it changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/config"
	"github.com/archivist-tools/sqlite-archiver/internal/fsprobe"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
	"github.com/archivist-tools/sqlite-archiver/internal/mailbox"
	"github.com/archivist-tools/sqlite-archiver/internal/scheduler"
)

// Watcher tracks one database file and emits a job whenever its mod time
// advances and its size has settled.
type Watcher struct {
	mu sync.RWMutex

	dbPath    string
	mode      string
	interval  time.Duration
	debounce  time.Duration
	stability time.Duration

	log logging.Logger

	lastModTime time.Time

	mb *mailbox.Mailbox[scheduler.Job]
}

// New creates a watcher for dbPath from the watch configuration.
func New(dbPath string, cfg config.WatchConfig, log logging.Logger, mb *mailbox.Mailbox[scheduler.Job]) *Watcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Watcher{
		dbPath:    dbPath,
		mode:      cfg.Mode,
		interval:  cfg.PollInterval.Std(),
		debounce:  cfg.DebounceWindow.Std(),
		stability: cfg.StabilityWindow.Std(),
		log:       log,
		mb:        mb,
	}
}

// Start blocks until ctx is cancelled, watching with the configured
// strategy. "auto" probes the database's directory and falls back to
// polling when fsnotify is unreliable there.
func (w *Watcher) Start(ctx context.Context) error {
	switch w.mode {
	case "fsnotify":
		return w.startFsNotify(ctx)

	case "poll":
		w.startPolling(ctx)
		return nil

	case "auto":
		res := fsprobe.Probe(filepath.Dir(w.dbPath))
		if res.FsnotifySupported {
			return w.startFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled, polling instead", "reason", res.Reason)
		w.startPolling(ctx)
		return nil

	default:
		return fmt.Errorf("unknown watch mode %q", w.mode)
	}
}
