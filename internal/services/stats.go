package services

import (
	"context"
	"fmt"
	"time"

	"github.com/centuriesmutual/activity-ledger/internal/models"
	"gorm.io/gorm"
)

// Stats is the derived per-client activity view.
type Stats struct {
	ClientID       string     `json:"client_id"`
	TotalMessages  int64      `json:"total_messages"`
	TotalDocuments int64      `json:"total_documents"`
	LastActivity   *time.Time `json:"last_activity,omitempty"`
}

// GetStats derives a client's activity counts and last activity. All reads
// run inside one transaction so the counts and the last-activity timestamp
// come from the same snapshot of the store.
func (l *Ledger) GetStats(ctx context.Context, clientID string) (*Stats, error) {
	stats := Stats{ClientID: clientID}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := clientExists(tx, clientID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: client %q", ErrNotFound, clientID)
		}

		if err := tx.Model(&models.Message{}).
			Where("client_id = ?", clientID).
			Count(&stats.TotalMessages).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Document{}).
			Where("client_id = ?", clientID).
			Count(&stats.TotalDocuments).Error; err != nil {
			return err
		}

		var latest []*time.Time
		if stats.TotalMessages > 0 {
			var t time.Time
			if err := tx.Model(&models.Message{}).
				Where("client_id = ?", clientID).
				Select("MAX(created_at)").
				Scan(&t).Error; err != nil {
				return err
			}
			latest = append(latest, &t)
		}
		if stats.TotalDocuments > 0 {
			var t time.Time
			if err := tx.Model(&models.Document{}).
				Where("client_id = ?", clientID).
				Select("MAX(created_at)").
				Scan(&t).Error; err != nil {
				return err
			}
			latest = append(latest, &t)
		}

		for _, t := range latest {
			if stats.LastActivity == nil || t.After(*stats.LastActivity) {
				stats.LastActivity = t
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
