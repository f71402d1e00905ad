// Package archive relocates daily logs older than the retention window
// into month-bucketed folders under .claude/memory/archive/.
package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/recallhq/recall/pkg/dailylog"
)

// DefaultRetentionDays is the window during which daily logs stay in
// daily/.
const DefaultRetentionDays = 14

// Archiver moves expired daily logs. Re-running after everything eligible
// has been moved is a no-op.
type Archiver struct {
	store         *dailylog.Store
	archiveDir    string
	retentionDays int
	log           *slog.Logger
}

// New creates an Archiver. retentionDays <= 0 falls back to the default.
func New(store *dailylog.Store, archiveDir string, retentionDays int, log *slog.Logger) *Archiver {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &Archiver{store: store, archiveDir: archiveDir, retentionDays: retentionDays, log: log}
}

// Run archives every daily log whose filename date falls before the
// retention threshold. Per-file failures are logged and do not abort the
// batch. Returns the number of logs moved.
func (a *Archiver) Run(now time.Time) (int, error) {
	dates, err := a.store.Dates()
	if err != nil {
		return 0, fmt.Errorf("listing daily logs: %w", err)
	}

	// Compare whole dates: a log exactly retentionDays old stays put
	// regardless of the time of day the archiver runs.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	threshold := today.AddDate(0, 0, -a.retentionDays)
	moved := 0

	for _, date := range dates {
		fileDate, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		if !fileDate.Before(threshold) {
			continue
		}

		bucket := filepath.Join(a.archiveDir, fileDate.Format("2006-01"))
		if err := os.MkdirAll(bucket, 0o755); err != nil {
			a.log.Warn("failed to create archive bucket", "bucket", bucket, "error", err)
			continue
		}

		src := a.store.Path(date)
		dst := filepath.Join(bucket, date+".md")
		if err := os.Rename(src, dst); err != nil {
			a.log.Warn("failed to archive daily log", "log", date, "error", err)
			continue
		}
		moved++
	}

	if moved > 0 {
		a.log.Info("archived old daily logs", "count", moved)
	}
	return moved, nil
}
