package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fundline/internal/model"
	"fundline/internal/repository"
)

// AuditLogger records admin actions asynchronously so moderation calls never
// wait on the audit trail. A nil *AuditLogger records nothing.
type AuditLogger struct {
	repo repository.AdminActionRepository
	ch   chan model.AdminAction
}

// NewAuditLogger creates an audit logger and starts its background worker.
func NewAuditLogger(repo repository.AdminActionRepository) *AuditLogger {
	l := &AuditLogger{
		repo: repo,
		ch:   make(chan model.AdminAction, 100),
	}
	go l.worker(context.Background())
	return l
}

// Record queues an audit entry. adminUserID is nil when the caller supplied
// no identity.
func (l *AuditLogger) Record(ctx context.Context, adminUserID *uuid.UUID, action string) {
	if l == nil {
		return
	}
	entry := model.AdminAction{
		AdminUserID: adminUserID,
		Action:      action,
		At:          time.Now().UTC(),
	}
	select {
	case l.ch <- entry:
	default:
		// Channel full, write synchronously as fallback
		_ = l.repo.Create(ctx, &entry)
	}
}

// worker batches queued entries and flushes them periodically.
func (l *AuditLogger) worker(ctx context.Context) {
	batch := make([]model.AdminAction, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-l.ch:
			if !ok {
				if len(batch) > 0 {
					_ = l.repo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= 10 {
				_ = l.repo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = l.repo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}
