package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ZORO77a/Lockey/audit"
	lockey_errors "github.com/ZORO77a/Lockey/errors"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
	"github.com/ZORO77a/Lockey/util"
)

type IPolicyConfigService interface {
	GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error)
	SetPolicyConfig(ctx context.Context, raw map[string]interface{}, actorID string) (*model.PolicyConfig, error)
}

// PolicyConfigService reads and writes the global access policy.
type PolicyConfigService struct {
	store          PolicyConfigStore
	cache          PolicyConfigCache
	validationUtil *util.ValidationUtil
	auditService   audit.Service
	eventBus       EventPublisher
	now            func() time.Time
}

// NewPolicyConfigService creates a new instance of PolicyConfigService.
// cache may be nil.
func NewPolicyConfigService(store PolicyConfigStore, cache PolicyConfigCache, validationUtil *util.ValidationUtil, auditService audit.Service, eventBus EventPublisher) *PolicyConfigService {
	return &PolicyConfigService{
		store:          store,
		cache:          cache,
		validationUtil: validationUtil,
		auditService:   auditService,
		eventBus:       eventBus,
		now:            time.Now,
	}
}

// GetPolicyConfig returns the saved policy, or the built-in default when no
// policy was ever saved. The default is not written back.
func (s *PolicyConfigService) GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error) {
	if s.cache != nil {
		cached, err := s.cache.GetPolicyConfig(ctx)
		if err != nil {
			logger.Warn("Policy config cache read failed; falling back to store", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	cfg, err := s.store.GetPolicyConfig(ctx)
	if errors.Is(err, lockey_errors.ErrPolicyConfigNotFound) {
		def := model.DefaultPolicyConfig()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPolicyConfig(ctx, *cfg); err != nil {
			logger.Warn("Failed to cache policy config", zap.Error(err))
		}
	}
	return cfg, nil
}

// SetPolicyConfig validates raw and replaces the saved policy. Nothing is
// written when validation fails. The call fails if the cache could still
// serve the previous policy.
func (s *PolicyConfigService) SetPolicyConfig(ctx context.Context, raw map[string]interface{}, actorID string) (*model.PolicyConfig, error) {
	cfg, err := s.validationUtil.NormalizePolicyConfig(raw)
	if err != nil {
		logger.Warn("Rejected policy config", zap.Error(err), zap.String("actorID", actorID))
		return nil, err
	}
	cfg.UpdatedAt = s.now().UTC()

	if err := s.store.UpsertPolicyConfig(ctx, cfg); err != nil {
		return nil, err
	}

	cacheErr := s.refreshCache(ctx, cfg)

	audit.Record(ctx, s.auditService, audit.NewEntry(actorID, audit.ActionUpdatedSettings, cfg))
	s.eventBus.Publish(ctx, util.EventPolicyUpdated, cfg)

	if cacheErr != nil {
		return nil, cacheErr
	}

	logger.Info("Policy config updated",
		zap.String("actorID", actorID),
		zap.Int("radiusMeters", cfg.RadiusMeters),
		zap.String("startTime", cfg.StartTime.String()),
		zap.String("endTime", cfg.EndTime.String()))
	return &cfg, nil
}

// refreshCache drops the cached policy, or overwrites it with cfg when the
// delete fails.
func (s *PolicyConfigService) refreshCache(ctx context.Context, cfg model.PolicyConfig) error {
	if s.cache == nil {
		return nil
	}
	delErr := s.cache.DeletePolicyConfig(ctx)
	if delErr == nil {
		return nil
	}
	logger.Warn("Failed to invalidate cached policy config; writing through", zap.Error(delErr))

	if err := s.cache.SetPolicyConfig(ctx, cfg); err != nil {
		logger.Error("Cached policy config may be stale",
			zap.NamedError("deleteError", delErr),
			zap.NamedError("setError", err))
		return fmt.Errorf("%w: policy saved but cached copy could not be replaced: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return nil
}
