// Package worker holds the background jobs started next to the HTTP server.
package worker

import (
	"context"
	"time"

	"fullsco_api/internal/logger"
)

// OrphanSweeper removes stored files that no record points to
type OrphanSweeper interface {
	SweepOrphans(ctx context.Context, grace time.Duration) (int, error)
}

// MediaCleanupWorker periodically deletes uploads left behind by failed or interrupted requests
type MediaCleanupWorker struct {
	sweeper  OrphanSweeper
	interval time.Duration // time between runs
	grace    time.Duration // files younger than this are never removed
}

// NewMediaCleanupWorker returns a worker running every interval. Values under a minute fall back
// to one hour for interval and grace.
func NewMediaCleanupWorker(sweeper OrphanSweeper, interval, grace time.Duration) *MediaCleanupWorker {
	if interval < time.Minute {
		interval = time.Hour
	}
	if grace < time.Minute {
		grace = time.Hour
	}
	return &MediaCleanupWorker{
		sweeper:  sweeper,
		interval: interval,
		grace:    grace,
	}
}

// Start runs until ctx is cancelled
func (w *MediaCleanupWorker) Start(ctx context.Context) {
	log := logger.WithModule("worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]any{
		"interval": w.interval.String(),
		"grace":    w.grace.String(),
	}).Info("[MEDIA_CLEANUP] Starting Media Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("[MEDIA_CLEANUP] Media Cleanup Worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs one sweep. A panic is logged and the next tick tries again.
func (w *MediaCleanupWorker) RunOnce(ctx context.Context) int {
	log := logger.WithModule("worker")
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("[MEDIA_CLEANUP] Panic while sweeping uploads, retrying on next run")
		}
	}()

	removed, err := w.sweeper.SweepOrphans(ctx, w.grace)
	if err != nil {
		log.WithError(err).Error("[MEDIA_CLEANUP] Failed to sweep orphaned uploads")
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("[MEDIA_CLEANUP] Removed orphaned uploads")
	}
	return removed
}
