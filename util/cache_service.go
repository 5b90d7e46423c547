// util/cache_service.go

package util

import (
	"context"

	"github.com/ZORO77a/Lockey/db"
	"github.com/ZORO77a/Lockey/model"
)

// CacheService fronts the Redis copy of the policy config.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error) {
	return db.GetCachedPolicyConfig(ctx)
}

func (c *CacheService) SetPolicyConfig(ctx context.Context, cfg model.PolicyConfig) error {
	return db.CachePolicyConfig(ctx, &cfg)
}

func (c *CacheService) DeletePolicyConfig(ctx context.Context) error {
	return db.DeleteCachedPolicyConfig(ctx)
}
