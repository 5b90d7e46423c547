// test/mock/blob.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ZORO77a/Lockey/model"
)

// MockBlobVault is a mock implementation of service.BlobVault
type MockBlobVault struct {
	mock.Mock
}

func (m *MockBlobVault) Store(ctx context.Context, name string, plaintext []byte, meta model.BlobMetadata) (string, error) {
	args := m.Called(ctx, name, plaintext, meta)
	return args.String(0), args.Error(1)
}

func (m *MockBlobVault) Retrieve(ctx context.Context, id string) (*model.BlobContent, error) {
	args := m.Called(ctx, id)
	content, _ := args.Get(0).(*model.BlobContent)
	return content, args.Error(1)
}

func (m *MockBlobVault) List(ctx context.Context, limit int) ([]*model.BlobRecord, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]*model.BlobRecord)
	return records, args.Error(1)
}

// MockEventPublisher records published events.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) {
	m.Called(ctx, eventType, payload)
}
