package fs

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

func TestRetryGivesUpOnPermanentError(t *testing.T) {
	calls := 0
	err := retry(context.Background(), logging.Nop(), "op", func() error {
		calls++
		return errors.New("no such device")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "a non-transient error must not be retried")
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	calls := 0
	err := retry(context.Background(), logging.Nop(), "op", func() error {
		calls++
		if calls < 3 {
			return syscall.EBUSY
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry(ctx, logging.Nop(), "op", func() error {
		t.Fatal("fn must not run under a cancelled context")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}
