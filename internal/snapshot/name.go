package snapshot

import (
	"path/filepath"
	"strings"
	"time"
)

// characters in RFC 3339 stamps that are unsafe in filenames
var stampSanitizer = strings.NewReplacer(":", "-", ".", "-")

// Stamp renders t as a filename-safe UTC timestamp.
func Stamp(t time.Time) string {
	return stampSanitizer.Replace(t.UTC().Format(time.RFC3339))
}

// TargetFilename derives the snapshot filename for a database at dbPath.
// A custom name is used as-is, except that the database file extension is
// appended when missing. Generated names follow
// <basename>-backup[-<stamp>]<ext>.
func TargetFilename(dbPath, custom string, timestamp bool, now time.Time) string {
	ext := filepath.Ext(dbPath)
	if ext == "" {
		ext = ".db"
	}

	if custom != "" {
		if !strings.HasSuffix(custom, ext) {
			custom += ext
		}
		return custom
	}

	name := strings.TrimSuffix(filepath.Base(dbPath), ext) + "-backup"
	if timestamp {
		name += "-" + Stamp(now)
	}
	return name + ext
}
