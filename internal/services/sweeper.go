package services

import (
	"context"
	"log"
	"time"

	"github.com/centuriesmutual/activity-ledger/internal/models"
)

// Sweep purges audit events older than the retention horizon relative to
// now. It is idempotent: a second run with the same now purges nothing more.
// Deletion is per-event so the sweep never blocks concurrent appends, and a
// failed deletion is logged and skipped rather than aborting the sweep.
// Events appended after now can never fall before the cutoff, so they are
// never touched regardless of timing.
func (l *Ledger) Sweep(ctx context.Context, now time.Time) (int64, error) {
	cutoff := l.cfg.RetentionHorizon(now)

	var ids []uint64
	err := l.db.WithContext(ctx).Model(&models.AuditEvent{}).
		Where("timestamp < ?", cutoff).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}

	var purged int64
	for _, id := range ids {
		res := l.db.WithContext(ctx).Delete(&models.AuditEvent{}, id)
		if res.Error != nil {
			log.Printf("sweep: failed to purge audit event %d: %v", id, res.Error)
			continue
		}
		purged += res.RowsAffected
	}

	if purged > 0 {
		log.Printf("sweep: purged %d audit events older than %s", purged, cutoff.Format(time.RFC3339))
	}
	return purged, nil
}

// SweepExpiredLinks clears share links whose expiry has lapsed as of now.
// Lazy invalidation already refuses access to lapsed links; this only tidies
// the stored columns.
func (l *Ledger) SweepExpiredLinks(ctx context.Context, now time.Time) (int64, error) {
	res := l.db.WithContext(ctx).Model(&models.Document{}).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Updates(map[string]interface{}{
			"shared_link": "",
			"expires_at":  nil,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("sweep: cleared %d expired share links", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// RunSweeper runs Sweep and SweepExpiredLinks on the configured interval
// until ctx is cancelled. Intended to run as a background goroutine
// independent of request handling.
func (l *Ledger) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(l.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now().UTC()
			if _, err := l.Sweep(ctx, now); err != nil {
				log.Printf("sweep: audit purge failed: %v", err)
			}
			if _, err := l.SweepExpiredLinks(ctx, now); err != nil {
				log.Printf("sweep: link cleanup failed: %v", err)
			}
		}
	}
}
