package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/centuriesmutual/activity-ledger/internal/config"
	"github.com/centuriesmutual/activity-ledger/internal/models"
	"gorm.io/gorm"
)

// Ledger is the transactional store for clients, messages, documents and the
// audit trail. All mutation goes through its methods; no component writes
// entity fields directly. Safe for concurrent use.
type Ledger struct {
	db  *gorm.DB
	cfg *config.Config

	// auditMu serializes audit timestamp allocation so timestamps are
	// strictly increasing across the whole store.
	auditMu   sync.Mutex
	lastAudit time.Time
}

// Meta carries the request attribution attached to audit events. The API
// gateway supplies these values; the ledger trusts them as given.
type Meta struct {
	IPAddress string
	UserAgent string
}

// New creates a Ledger over an open database connection.
func New(db *gorm.DB, cfg *config.Config) *Ledger {
	return &Ledger{db: db, cfg: cfg}
}

// DB exposes the underlying connection for health checks.
func (l *Ledger) DB() *gorm.DB {
	return l.db
}

// Config returns the policy configuration the ledger runs with.
func (l *Ledger) Config() *config.Config {
	return l.cfg
}

// nextAuditTime allocates the next audit timestamp. Allocation is serialized
// and strictly increasing, stepping by one microsecond when the wall clock
// has not advanced, so audit ordering survives timestamp rounding in every
// supported backend.
func (l *Ledger) nextAuditTime() time.Time {
	l.auditMu.Lock()
	defer l.auditMu.Unlock()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(l.lastAudit) {
		now = l.lastAudit.Add(time.Microsecond)
	}
	l.lastAudit = now
	return now
}

// runWrite executes fn in a transaction, retrying optimistic-concurrency
// conflicts (errWriteConflict) with a short backoff until the configured
// lock-wait bound is exceeded. Writes on different rows never conflict, so
// they proceed without blocking each other.
func (l *Ledger) runWrite(ctx context.Context, fn func(tx *gorm.DB) error) error {
	deadline := time.Now().Add(l.cfg.LockWaitTimeout)

	for {
		err := l.db.WithContext(ctx).Transaction(fn)
		if !errors.Is(err, errWriteConflict) {
			return err
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w after %s", ErrTimeout, l.cfg.LockWaitTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Millisecond):
		}
	}
}

// clientExists checks the referential invariant shared by every write path:
// messages, documents and audit events must reference a client that exists
// at insert time. Deactivated clients still satisfy it.
func clientExists(tx *gorm.DB, clientID string) (bool, error) {
	var n int64
	if err := tx.Model(&models.Client{}).Where("client_id = ?", clientID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
