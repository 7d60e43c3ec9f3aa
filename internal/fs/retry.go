package fs

import (
	"context"
	"fmt"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

// retry runs fn up to maxRetries times with exponential backoff, but only
// for errors classified as transient. Repeated attempts are reported
// through log at debug level.
func retry(ctx context.Context, log logging.Logger, opName string, fn func() error) error {
	const maxRetries = 5
	base := 100 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !isTransient(err) {
			return fmt.Errorf("%s failed permanently: %w", opName, err)
		}

		if attempt == maxRetries {
			break
		}

		log.Debug("transient error, retrying", "op", opName, "attempt", attempt, "error", err)
		time.Sleep(base * (1 << (attempt - 1)))
	}

	return fmt.Errorf("%s failed after %d retries: %w", opName, maxRetries, lastErr)
}
