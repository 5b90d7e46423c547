// test/mock/bypass.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ZORO77a/Lockey/model"
)

type MockBypassStore struct {
	mock.Mock
}

func (m *MockBypassStore) GetGrant(ctx context.Context, subjectID string) (*model.BypassGrant, error) {
	args := m.Called(ctx, subjectID)
	grant, _ := args.Get(0).(*model.BypassGrant)
	return grant, args.Error(1)
}

func (m *MockBypassStore) UpsertGrant(ctx context.Context, grant model.BypassGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockBypassStore) RevokeGrant(ctx context.Context, subjectID, actorID string, now time.Time) (int, error) {
	args := m.Called(ctx, subjectID, actorID, now)
	return args.Int(0), args.Error(1)
}

func (m *MockBypassStore) CreateRequest(ctx context.Context, req model.BypassRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBypassStore) GetRequest(ctx context.Context, id string) (*model.BypassRequest, error) {
	args := m.Called(ctx, id)
	req, _ := args.Get(0).(*model.BypassRequest)
	return req, args.Error(1)
}

func (m *MockBypassStore) ListRequests(ctx context.Context, status model.BypassStatus, limit int) ([]*model.BypassRequest, error) {
	args := m.Called(ctx, status, limit)
	reqs, _ := args.Get(0).([]*model.BypassRequest)
	return reqs, args.Error(1)
}

func (m *MockBypassStore) DecideRequest(ctx context.Context, id string, status model.BypassStatus, actorID string, now time.Time) (*model.BypassRequest, error) {
	args := m.Called(ctx, id, status, actorID, now)
	req, _ := args.Get(0).(*model.BypassRequest)
	return req, args.Error(1)
}

// MockBypassService is a mock implementation of service.IBypassService
type MockBypassService struct {
	mock.Mock
}

func (m *MockBypassService) Grant(ctx context.Context, subjectID string, until time.Time, actorID string) error {
	args := m.Called(ctx, subjectID, until, actorID)
	return args.Error(0)
}

func (m *MockBypassService) Revoke(ctx context.Context, subjectID, actorID string) (int, error) {
	args := m.Called(ctx, subjectID, actorID)
	return args.Int(0), args.Error(1)
}

func (m *MockBypassService) IsActive(ctx context.Context, subjectID string, now time.Time) (bool, error) {
	args := m.Called(ctx, subjectID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockBypassService) RequestBypass(ctx context.Context, subjectID string, start, end time.Time, reason string) (*model.BypassRequest, error) {
	args := m.Called(ctx, subjectID, start, end, reason)
	req, _ := args.Get(0).(*model.BypassRequest)
	return req, args.Error(1)
}

func (m *MockBypassService) ListRequests(ctx context.Context, status model.BypassStatus, limit int) ([]*model.BypassRequest, error) {
	args := m.Called(ctx, status, limit)
	reqs, _ := args.Get(0).([]*model.BypassRequest)
	return reqs, args.Error(1)
}

func (m *MockBypassService) Approve(ctx context.Context, requestID, actorID string) (*model.BypassRequest, error) {
	args := m.Called(ctx, requestID, actorID)
	req, _ := args.Get(0).(*model.BypassRequest)
	return req, args.Error(1)
}

func (m *MockBypassService) Reject(ctx context.Context, requestID, actorID string) (*model.BypassRequest, error) {
	args := m.Called(ctx, requestID, actorID)
	req, _ := args.Get(0).(*model.BypassRequest)
	return req, args.Error(1)
}
