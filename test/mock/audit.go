// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ZORO77a/Lockey/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Append(ctx context.Context, entry audit.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditService) Recent(ctx context.Context, limit int) ([]audit.AuditEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]audit.AuditEntry)
	return entries, args.Error(1)
}

func (m *MockAuditService) RecentForSubject(ctx context.Context, subjectID string, limit int) ([]audit.AuditEntry, error) {
	args := m.Called(ctx, subjectID, limit)
	entries, _ := args.Get(0).([]audit.AuditEntry)
	return entries, args.Error(1)
}

// Actions returns the action of every Append call, in order.
func (m *MockAuditService) Actions() []string {
	var actions []string
	for _, call := range m.Calls {
		if call.Method == "Append" {
			actions = append(actions, call.Arguments.Get(1).(audit.AuditEntry).Action)
		}
	}
	return actions
}

// MockAuditRepository is a mock implementation of audit.Repository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, entry audit.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) Recent(ctx context.Context, limit int) ([]audit.AuditEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]audit.AuditEntry)
	return entries, args.Error(1)
}

func (m *MockAuditRepository) RecentForSubject(ctx context.Context, subjectID string, limit int) ([]audit.AuditEntry, error) {
	args := m.Called(ctx, subjectID, limit)
	entries, _ := args.Get(0).([]audit.AuditEntry)
	return entries, args.Error(1)
}
