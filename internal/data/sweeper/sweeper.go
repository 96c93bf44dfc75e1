package sweeper

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/akolanti/pdfreader/internal/metrics"
	"github.com/akolanti/pdfreader/pkg/logger_i"
)

var logger = logger_i.NewLogger("Retention Sweeper")

// artifact extensions written by the store; the metadata sidecar ages out
// together with its session's pages
var patterns = []string{"*.txt", "*.json"}

// Sweep deletes artifacts directly under dir whose modification time is older
// than maxAge. Per-file failures are logged and skipped, a missing file is not
// an error. Returns the number of files removed.
func Sweep(dir string, maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			logger.Error("Error enumerating artifacts", "pattern", pattern, "error", err)
			continue
		}
		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil {
				// already gone, nothing to do
				continue
			}
			if !info.ModTime().Before(cutoff) {
				continue
			}
			logger.Info("Cleaning up old artifact", "path", path)
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				logger.Error("Error removing old artifact", "path", path, "error", err)
				continue
			}
			removed++
			metrics.IncrementSweeperDeletions()
		}
	}
	return removed
}

// RunPeriodic re-sweeps on an interval until ctx is cancelled.
// The caller owns the WaitGroup Add.
func RunPeriodic(ctx context.Context, dir string, maxAge, interval time.Duration, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Periodic sweeping started", "interval", interval, "maxAge", maxAge)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Periodic sweeping stopped")
			return
		case <-ticker.C:
			Sweep(dir, maxAge)
		}
	}
}
