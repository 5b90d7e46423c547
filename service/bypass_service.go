package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZORO77a/Lockey/audit"
	lockey_errors "github.com/ZORO77a/Lockey/errors"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
	"github.com/ZORO77a/Lockey/util"
)

const defaultRequestListLimit = 100

type IBypassService interface {
	Grant(ctx context.Context, subjectID string, until time.Time, actorID string) error
	Revoke(ctx context.Context, subjectID, actorID string) (int, error)
	IsActive(ctx context.Context, subjectID string, now time.Time) (bool, error)
	RequestBypass(ctx context.Context, subjectID string, start, end time.Time, reason string) (*model.BypassRequest, error)
	ListRequests(ctx context.Context, status model.BypassStatus, limit int) ([]*model.BypassRequest, error)
	Approve(ctx context.Context, requestID, actorID string) (*model.BypassRequest, error)
	Reject(ctx context.Context, requestID, actorID string) (*model.BypassRequest, error)
}

// BypassService manages per-subject overrides of the access policy and the
// request workflow that produces them.
type BypassService struct {
	store          BypassStore
	validationUtil *util.ValidationUtil
	auditService   audit.Service
	eventBus       EventPublisher
	now            func() time.Time
}

func NewBypassService(store BypassStore, validationUtil *util.ValidationUtil, auditService audit.Service, eventBus EventPublisher) *BypassService {
	return &BypassService{
		store:          store,
		validationUtil: validationUtil,
		auditService:   auditService,
		eventBus:       eventBus,
		now:            time.Now,
	}
}

// Grant replaces any existing grant for subjectID.
func (s *BypassService) Grant(ctx context.Context, subjectID string, until time.Time, actorID string) error {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return lockey_errors.NewBypassValidationError("subject", "is required")
	}
	if until.IsZero() {
		return lockey_errors.NewBypassValidationError("until", "is required")
	}

	grant := model.BypassGrant{SubjectID: subjectID, Until: until.UTC()}
	if err := s.store.UpsertGrant(ctx, grant); err != nil {
		return err
	}

	audit.Record(ctx, s.auditService, audit.NewEntry(actorID, audit.ActionBypassGranted, map[string]interface{}{
		"subject": subjectID,
		"until":   grant.Until,
	}))
	s.eventBus.Publish(ctx, util.EventBypassGranted, grant)
	return nil
}

// Revoke clears the subject's grant and revokes its approved requests,
// returning how many requests changed. A subject with nothing to revoke
// yields 0 and no error.
func (s *BypassService) Revoke(ctx context.Context, subjectID, actorID string) (int, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return 0, lockey_errors.NewBypassValidationError("subject", "is required")
	}

	count, err := s.store.RevokeGrant(ctx, subjectID, actorID, s.now().UTC())
	if err != nil {
		return 0, err
	}

	audit.Record(ctx, s.auditService, audit.NewEntry(actorID, audit.ActionBypassRevoked, map[string]interface{}{
		"subject":       subjectID,
		"revoked_count": count,
	}))
	s.eventBus.Publish(ctx, util.EventBypassRevoked, subjectID)

	logger.Info("Bypass revoked",
		zap.String("subjectID", subjectID),
		zap.String("actorID", actorID),
		zap.Int("revokedCount", count))
	return count, nil
}

// IsActive reports whether subjectID holds a grant that expires strictly
// after now.
func (s *BypassService) IsActive(ctx context.Context, subjectID string, now time.Time) (bool, error) {
	grant, err := s.store.GetGrant(ctx, subjectID)
	if err != nil {
		return false, err
	}
	return grant.ActiveAt(now), nil
}

func (s *BypassService) RequestBypass(ctx context.Context, subjectID string, start, end time.Time, reason string) (*model.BypassRequest, error) {
	if err := s.validationUtil.ValidateBypassRequest(start, end); err != nil {
		return nil, err
	}

	req := model.BypassRequest{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
		Reason:    strings.TrimSpace(reason),
		Status:    model.BypassPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.auditService, audit.NewEntry(subjectID, audit.ActionBypassRequested, map[string]interface{}{
		"request_id": req.ID,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	}))
	s.eventBus.Publish(ctx, util.EventBypassRequested, req)
	return &req, nil
}

func (s *BypassService) ListRequests(ctx context.Context, status model.BypassStatus, limit int) ([]*model.BypassRequest, error) {
	if limit <= 0 {
		limit = defaultRequestListLimit
	}
	return s.store.ListRequests(ctx, status, limit)
}

// Approve grants the requester a bypass until the request's end date.
func (s *BypassService) Approve(ctx context.Context, requestID, actorID string) (*model.BypassRequest, error) {
	return s.decide(ctx, requestID, actorID, model.BypassApproved, audit.ActionBypassApproved, util.EventBypassApproved)
}

func (s *BypassService) Reject(ctx context.Context, requestID, actorID string) (*model.BypassRequest, error) {
	return s.decide(ctx, requestID, actorID, model.BypassRejected, audit.ActionBypassRejected, util.EventBypassRejected)
}

func (s *BypassService) decide(ctx context.Context, requestID, actorID string, status model.BypassStatus, action, event string) (*model.BypassRequest, error) {
	req, err := s.store.DecideRequest(ctx, requestID, status, actorID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	audit.Record(ctx, s.auditService, audit.NewEntry(actorID, action, map[string]interface{}{
		"request_id": req.ID,
		"subject":    req.SubjectID,
		"end_date":   req.EndDate,
	}))
	s.eventBus.Publish(ctx, event, *req)
	return req, nil
}
