package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-tools/sqlite-archiver/internal/backup"
	"github.com/archivist-tools/sqlite-archiver/internal/mailbox"
	"github.com/archivist-tools/sqlite-archiver/internal/retention"
	"github.com/archivist-tools/sqlite-archiver/internal/snapshot"
)

// copyEngine backs up by copying and always verifies clean.
type copyEngine struct{}

func (copyEngine) Backup(_ context.Context, src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func (e copyEngine) Compact(ctx context.Context, src, dst string) error {
	return e.Backup(ctx, src, dst)
}

func (copyEngine) Check(_ context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return "ok", nil
}

func (copyEngine) Digest(_ context.Context, _ string) (string, error) {
	return "deadbeef", nil
}

func testManager(t *testing.T) *backup.Manager {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "app.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("data"), 0o644))

	mgr, err := backup.NewManager(backup.Config{
		DatabasePath: dbPath,
		BackupDir:    filepath.Join(dir, "backups"),
	}, copyEngine{}, nil, nil)
	require.NoError(t, err)
	return mgr
}

func intp(v int) *int { return &v }

func TestHandleBackupAndRetention(t *testing.T) {
	mgr := testManager(t)
	mb := mailbox.New[Job]()

	s := New(mgr, snapshot.NativeCopy, retention.Policy{MaxCount: intp(1)}, mb, nil)

	ctx := context.Background()
	s.handle(ctx, Job{Trigger: "cron"})
	s.handle(ctx, Job{Trigger: "watch"})
	s.handle(ctx, Job{Trigger: "cron"})

	// retention keeps exactly one snapshot behind
	infos, err := mgr.ListBackups(ctx, false)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestHandleWithoutPolicySkipsCleanup(t *testing.T) {
	mgr := testManager(t)
	mb := mailbox.New[Job]()

	s := New(mgr, snapshot.NativeCopy, retention.Policy{}, mb, nil)

	ctx := context.Background()
	s.handle(ctx, Job{Trigger: "cron"})

	infos, err := mgr.ListBackups(ctx, false)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestStartCronRejectsBadSpec(t *testing.T) {
	s := New(testManager(t), snapshot.NativeCopy, retention.Policy{}, mailbox.New[Job](), nil)
	require.Error(t, s.StartCron("not a cron spec"))
}

func TestRunHandlesJobAndStopsOnCancel(t *testing.T) {
	mgr := testManager(t)
	mb := mailbox.New[Job]()
	s := New(mgr, snapshot.NativeCopy, retention.Policy{}, mb, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	mb.Put(Job{Trigger: "watch", Time: time.Now()})

	// the queued job is handled before shutdown
	require.Eventually(t, func() bool {
		infos, err := mgr.ListBackups(context.Background(), false)
		return err == nil && len(infos) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
