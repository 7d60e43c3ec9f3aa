// Package engine abstracts the database tooling sqlite-archiver depends on:
// hot-copy snapshots, integrity checks, and content digests. The concrete
// implementation shells out to host commands; the interface exists so the
// tooling can be swapped for a native binding without touching the core.
package engine

import "context"

type Engine interface {
	// Backup produces a transactionally consistent copy of the database at
	// src, written to dst, using the engine's online backup mechanism.
	Backup(ctx context.Context, src, dst string) error

	// Compact is Backup with a compacting rewrite: free pages are not
	// carried into dst.
	Compact(ctx context.Context, src, dst string) error

	// Check runs the engine's consistency check against path and returns
	// the raw verdict token ("ok" means healthy).
	Check(ctx context.Context, path string) (string, error)

	// Digest returns the hex content digest of the file at path.
	Digest(ctx context.Context, path string) (string, error)
}
