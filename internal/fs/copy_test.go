package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")
	dst := filepath.Join(dir, "dst.db")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	f := New()
	require.NoError(t, f.CopyFile(context.Background(), src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	f := New()
	err := f.CopyFile(context.Background(), filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	require.Error(t, err)
}

func TestCopyFileOverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")
	dst := filepath.Join(dir, "dst.db")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old old old"), 0o644))

	f := New()
	require.NoError(t, f.CopyFile(context.Background(), src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestReadDirSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.db"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	f := New()
	infos, err := f.ReadDir(dir)
	require.NoError(t, err)

	require.Len(t, infos, 1)
	assert.Equal(t, "a.db", infos[0].Name)
	assert.Equal(t, filepath.Join(dir, "a.db"), infos[0].Path)
	assert.False(t, infos[0].MTime.IsZero())
}

func TestSourceChanged(t *testing.T) {
	base := FileInfo{Size: 10, Inode: 7}

	assert.False(t, sourceChanged(base, base))
	assert.True(t, sourceChanged(base, FileInfo{Size: 11, Inode: 7}))
	assert.True(t, sourceChanged(base, FileInfo{Size: 10, Inode: 8}))
	// unknown inodes fall back to size/mtime comparison
	assert.False(t, sourceChanged(FileInfo{Size: 10}, FileInfo{Size: 10}))
}
