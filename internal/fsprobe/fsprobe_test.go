package fsprobe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeMissingDirectory(t *testing.T) {
	res := Probe(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, res.FsnotifySupported)
	assert.Contains(t, res.Reason, "stat failed")
}

func TestProbeNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	res := Probe(path)
	assert.False(t, res.FsnotifySupported)
	assert.Equal(t, "not a directory", res.Reason)
}

func TestProbeLocalDirectory(t *testing.T) {
	res := Probe(t.TempDir())
	assert.True(t, res.FsnotifySupported, "reason: %s", res.Reason)
}

func TestProbeLeavesNoResidue(t *testing.T) {
	dir := t.TempDir()
	Probe(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
