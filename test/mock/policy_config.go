// test/mock/policy_config.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ZORO77a/Lockey/model"
)

type MockPolicyConfigStore struct {
	mock.Mock
}

func (m *MockPolicyConfigStore) GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*model.PolicyConfig)
	return cfg, args.Error(1)
}

func (m *MockPolicyConfigStore) UpsertPolicyConfig(ctx context.Context, cfg model.PolicyConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

type MockPolicyConfigCache struct {
	mock.Mock
}

func (m *MockPolicyConfigCache) GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*model.PolicyConfig)
	return cfg, args.Error(1)
}

func (m *MockPolicyConfigCache) SetPolicyConfig(ctx context.Context, cfg model.PolicyConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockPolicyConfigCache) DeletePolicyConfig(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPolicyConfigService is a mock implementation of service.IPolicyConfigService
type MockPolicyConfigService struct {
	mock.Mock
}

func (m *MockPolicyConfigService) GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*model.PolicyConfig)
	return cfg, args.Error(1)
}

func (m *MockPolicyConfigService) SetPolicyConfig(ctx context.Context, raw map[string]interface{}, actorID string) (*model.PolicyConfig, error) {
	args := m.Called(ctx, raw, actorID)
	cfg, _ := args.Get(0).(*model.PolicyConfig)
	return cfg, args.Error(1)
}
