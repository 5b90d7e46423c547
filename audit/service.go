// audit/service.go
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	logger "github.com/ZORO77a/Lockey/logging"
)

// DefaultMaxLimit bounds Recent queries when no limit is configured.
const DefaultMaxLimit = 500

type Service interface {
	Append(ctx context.Context, entry AuditEntry) error
	Recent(ctx context.Context, limit int) ([]AuditEntry, error)
	RecentForSubject(ctx context.Context, subjectID string, limit int) ([]AuditEntry, error)
}

type service struct {
	repo     Repository
	maxLimit int
	now      func() time.Time
}

func NewService(repo Repository, maxLimit int) Service {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &service{repo: repo, maxLimit: maxLimit, now: time.Now}
}

// Append stamps the entry and stores it. When the store is unavailable the
// entry is written to the error log so it is never silently dropped, and
// ErrDatabaseOperation is returned.
func (s *service) Append(ctx context.Context, entry AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		logger.Error("Failed to append audit entry",
			zap.Error(err),
			zap.String("auditID", entry.ID),
			zap.String("subjectID", entry.SubjectID),
			zap.String("action", entry.Action),
			zap.Time("timestamp", entry.Timestamp),
			zap.ByteString("context", entry.Context))
		return fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]AuditEntry, error) {
	entries, err := s.repo.Recent(ctx, s.clamp(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return entries, nil
}

func (s *service) RecentForSubject(ctx context.Context, subjectID string, limit int) ([]AuditEntry, error) {
	entries, err := s.repo.RecentForSubject(ctx, subjectID, s.clamp(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return entries, nil
}

func (s *service) clamp(limit int) int {
	if limit <= 0 || limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

// Record appends and only logs a failure. Callers use it where the audit
// write must not change the response they are about to return.
func Record(ctx context.Context, svc Service, entry AuditEntry) {
	if err := svc.Append(ctx, entry); err != nil {
		logger.Warn("Audit entry not persisted; continuing",
			zap.String("subjectID", entry.SubjectID),
			zap.String("action", entry.Action))
	}
}
