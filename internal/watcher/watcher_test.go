package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-tools/sqlite-archiver/internal/config"
	"github.com/archivist-tools/sqlite-archiver/internal/mailbox"
	"github.com/archivist-tools/sqlite-archiver/internal/scheduler"
)

func newTestWatcher(t *testing.T) (*Watcher, string, *mailbox.Mailbox[scheduler.Job]) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "app.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("data"), 0o644))

	mb := mailbox.New[scheduler.Job]()
	w := New(dbPath, config.WatchConfig{
		Mode:            "poll",
		PollInterval:    config.Duration(10 * time.Millisecond),
		DebounceWindow:  config.Duration(time.Millisecond),
		StabilityWindow: config.Duration(time.Millisecond),
	}, nil, mb)
	return w, dbPath, mb
}

func TestDetectEnqueuesOnChange(t *testing.T) {
	w, dbPath, mb := newTestWatcher(t)

	// the first observation counts as a change
	w.detect()
	job := mb.TryTake()
	require.NotNil(t, job)
	assert.Equal(t, "watch", job.Trigger)

	// unchanged file: nothing enqueued
	w.detect()
	assert.Nil(t, mb.TryTake())

	// mod time advancing past the last trigger enqueues again
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(dbPath, future, future))
	w.detect()
	require.NotNil(t, mb.TryTake())
}

func TestDetectMissingFileEnqueuesNothing(t *testing.T) {
	w, dbPath, mb := newTestWatcher(t)
	require.NoError(t, os.Remove(dbPath))

	w.detect()
	assert.Nil(t, mb.TryTake())
}

func TestDetectSkipsUnstableFile(t *testing.T) {
	w, dbPath, mb := newTestWatcher(t)
	w.stability = 100 * time.Millisecond

	// grow the file while the stability window is open
	go func() {
		time.Sleep(20 * time.Millisecond)
		f, err := os.OpenFile(dbPath, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		_, _ = f.WriteString("still growing")
		_ = f.Close()
	}()

	w.detect()
	assert.Nil(t, mb.TryTake(), "a file changing size must not trigger a backup")
}

func TestStartPollStopsOnCancel(t *testing.T) {
	w, _, _ := newTestWatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancellation")
	}
}

func TestStartRejectsUnknownMode(t *testing.T) {
	w, _, _ := newTestWatcher(t)
	w.mode = "telepathy"

	require.Error(t, w.Start(context.Background()))
}
