// Package snapshot produces point-in-time copies of a database file.
package snapshot

import "fmt"

// Strategy selects how a snapshot is produced.
type Strategy string

const (
	// NativeCopy uses the engine's online backup mechanism. Safe against a
	// concurrently written source; the default.
	NativeCopy Strategy = "native"

	// RawCopy is a byte-for-byte filesystem copy. Only safe when the source
	// is quiescent; that is the caller's responsibility.
	RawCopy Strategy = "raw"

	// CompactCopy asks the engine for a compacting rewrite. Slower than
	// NativeCopy, but free pages are reclaimed in the result.
	CompactCopy Strategy = "compact"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case NativeCopy, RawCopy, CompactCopy:
		return Strategy(s), nil
	case "":
		return NativeCopy, nil
	default:
		return "", fmt.Errorf("unknown backup method %q", s)
	}
}
