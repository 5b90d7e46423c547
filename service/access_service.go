package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ZORO77a/Lockey/audit"
	lockey_errors "github.com/ZORO77a/Lockey/errors"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
	"github.com/ZORO77a/Lockey/pdp/engine"
	pdp_model "github.com/ZORO77a/Lockey/pdp/model"
)

type IAccessService interface {
	RetrieveFile(ctx context.Context, identity model.Identity, fileID string, reqCtx pdp_model.RequestContext) (*model.BlobContent, error)
	RejectRequest(ctx context.Context, identity model.Identity, fileID string, cause error) error
}

// AccessService gates file retrieval behind the policy engine. Every call
// writes exactly one audit entry, whatever the outcome.
type AccessService struct {
	policyService IPolicyConfigService
	bypassService IBypassService
	vault         BlobVault
	auditService  audit.Service
	evaluator     *engine.PolicyEvaluator
	now           func() time.Time
}

// NewAccessService wires the retrieval flow. now supplies the evaluation time;
// working hours are compared in the location it returns.
func NewAccessService(policyService IPolicyConfigService, bypassService IBypassService, vault BlobVault, auditService audit.Service, now func() time.Time) *AccessService {
	if now == nil {
		now = time.Now
	}
	return &AccessService{
		policyService: policyService,
		bypassService: bypassService,
		vault:         vault,
		auditService:  auditService,
		evaluator:     engine.NewPolicyEvaluator(),
		now:           now,
	}
}

// RetrieveFile evaluates the caller's claimed context and, on allow, returns
// the decrypted file. A denial is returned as *PolicyDeniedError and the
// store is not touched.
func (s *AccessService) RetrieveFile(ctx context.Context, identity model.Identity, fileID string, reqCtx pdp_model.RequestContext) (*model.BlobContent, error) {
	now := s.now()
	subjectID := identity.SubjectID

	var policy *model.PolicyConfig
	var bypassActive bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		policy, err = s.policyService.GetPolicyConfig(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bypassActive, err = s.bypassService.IsActive(gctx, subjectID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load access state", zap.Error(err), zap.String("subjectID", subjectID))
		s.record(ctx, subjectID, audit.ActionStorageError, fileID, reqCtx, map[string]interface{}{"stage": "load_access_state"})
		return nil, err
	}

	decision := s.evaluator.Evaluate(engine.Input{
		SubjectID:    subjectID,
		Policy:       *policy,
		BypassActive: bypassActive,
		Request:      reqCtx,
		Now:          now,
	})

	if !decision.Allowed() {
		s.record(ctx, subjectID, decision.AuditAction(), fileID, reqCtx, nil)
		logger.Info("File access denied",
			zap.String("subjectID", subjectID),
			zap.String("fileID", fileID),
			zap.String("reason", string(decision.Reason)))
		return nil, &lockey_errors.PolicyDeniedError{Reason: string(decision.Reason)}
	}

	content, err := s.vault.Retrieve(ctx, fileID)
	if err != nil {
		s.record(ctx, subjectID, failureAction(err), fileID, reqCtx, nil)
		return nil, err
	}

	s.record(ctx, subjectID, decision.AuditAction(), fileID, reqCtx, map[string]interface{}{
		"filename": content.Name,
		"bypassed": decision.Bypassed,
	})
	logger.Info("File access granted",
		zap.String("subjectID", subjectID),
		zap.String("fileID", fileID),
		zap.Bool("bypassed", decision.Bypassed))
	return content, nil
}

// RejectRequest audits a retrieval whose claimed context could not be read
// and returns cause unchanged. The policy is not evaluated.
func (s *AccessService) RejectRequest(ctx context.Context, identity model.Identity, fileID string, cause error) error {
	details := map[string]interface{}{
		"file_id": fileID,
		"error":   cause.Error(),
	}
	var verr *lockey_errors.ValidationError
	if errors.As(cause, &verr) {
		details["field"] = verr.Field
	}
	audit.Record(ctx, s.auditService, audit.NewEntry(identity.SubjectID, audit.ActionInvalidRequest, details))
	logger.Warn("Rejected file retrieval request",
		zap.String("subjectID", identity.SubjectID),
		zap.String("fileID", fileID),
		zap.Error(cause))
	return cause
}

func (s *AccessService) record(ctx context.Context, subjectID, action, fileID string, reqCtx pdp_model.RequestContext, extra map[string]interface{}) {
	details := map[string]interface{}{
		"file_id":             fileID,
		"lat":                 reqCtx.Latitude,
		"lon":                 reqCtx.Longitude,
		"client_network_hint": reqCtx.NetworkHint,
	}
	for k, v := range extra {
		details[k] = v
	}
	audit.Record(ctx, s.auditService, audit.NewEntry(subjectID, action, details))
}

// failureAction names the audit action for a blob store error.
func failureAction(err error) string {
	switch {
	case errors.Is(err, lockey_errors.ErrFileNotFound):
		return audit.ActionDeniedFileNotFound
	case errors.Is(err, lockey_errors.ErrDecryptionFailed):
		return audit.ActionDecryptError
	case errors.Is(err, lockey_errors.ErrKeyUnavailable):
		return audit.ActionKeyUnavailable
	default:
		return audit.ActionStorageError
	}
}
