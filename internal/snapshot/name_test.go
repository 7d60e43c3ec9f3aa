package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStampIsFilenameSafe(t *testing.T) {
	ts := time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)
	got := Stamp(ts)

	assert.Equal(t, "2026-08-31T12-30-45Z", got)
	assert.NotContains(t, got, ":")
	assert.NotContains(t, got, ".")
}

func TestTargetFilename(t *testing.T) {
	ts := time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name      string
		dbPath    string
		custom    string
		timestamp bool
		want      string
	}{
		{"generated with timestamp", "/data/app.db", "", true, "app-backup-2026-08-31T12-30-45Z.db"},
		{"generated without timestamp", "/data/app.db", "", false, "app-backup.db"},
		{"custom name gets extension", "/data/app.db", "backup1", true, "backup1.db"},
		{"custom name keeps extension", "/data/app.db", "backup1.db", false, "backup1.db"},
		{"extensionless database", "/data/state", "", false, "state-backup.db"},
		{"sqlite3 extension", "/data/app.sqlite3", "weekly", false, "weekly.sqlite3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetFilename(tt.dbPath, tt.custom, tt.timestamp, ts))
		})
	}
}
