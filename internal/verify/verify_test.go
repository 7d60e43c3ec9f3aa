package verify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-tools/sqlite-archiver/internal/fs"
)

type stubEngine struct {
	checkToken string
	checkErr   error
	digest     string
	digestErr  error
}

func (s *stubEngine) Backup(_ context.Context, _, _ string) error  { return nil }
func (s *stubEngine) Compact(_ context.Context, _, _ string) error { return nil }

func (s *stubEngine) Check(_ context.Context, _ string) (string, error) {
	return s.checkToken, s.checkErr
}

func (s *stubEngine) Digest(_ context.Context, _ string) (string, error) {
	return s.digest, s.digestErr
}

func existingFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestVerifyOkToken(t *testing.T) {
	v := NewVerifier(&stubEngine{checkToken: "ok"}, fs.New(), nil)
	assert.True(t, v.Verify(context.Background(), existingFile(t)))
}

func TestVerifyFailClosed(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		v := NewVerifier(&stubEngine{checkToken: "ok"}, fs.New(), nil)
		assert.False(t, v.Verify(ctx, "/nonexistent/app.db"))
	})

	t.Run("tool failure", func(t *testing.T) {
		v := NewVerifier(&stubEngine{checkErr: errors.New("sqlite3: command not found")}, fs.New(), nil)
		assert.False(t, v.Verify(ctx, existingFile(t)))
	})

	t.Run("non-ok verdict", func(t *testing.T) {
		v := NewVerifier(&stubEngine{checkToken: "database disk image is malformed"}, fs.New(), nil)
		assert.False(t, v.Verify(ctx, existingFile(t)))
	})

	t.Run("empty verdict", func(t *testing.T) {
		v := NewVerifier(&stubEngine{checkToken: ""}, fs.New(), nil)
		assert.False(t, v.Verify(ctx, existingFile(t)))
	})
}

func TestChecksum(t *testing.T) {
	sum, ok := NewChecksummer(&stubEngine{digest: "ab12"}, nil).Checksum(context.Background(), "/any")
	assert.True(t, ok)
	assert.Equal(t, "ab12", sum)
}

func TestChecksumNeverFaults(t *testing.T) {
	sum, ok := NewChecksummer(&stubEngine{digestErr: errors.New("read error")}, nil).Checksum(context.Background(), "/any")
	assert.False(t, ok)
	assert.Empty(t, sum)
}
