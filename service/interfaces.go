package service

import (
	"context"
	"time"

	"github.com/ZORO77a/Lockey/model"
)

// PolicyConfigStore persists the singleton policy. GetPolicyConfig returns
// ErrPolicyConfigNotFound when nothing was saved yet.
type PolicyConfigStore interface {
	GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error)
	UpsertPolicyConfig(ctx context.Context, cfg model.PolicyConfig) error
}

// PolicyConfigCache is a read-through copy of the policy. A miss is nil, nil.
type PolicyConfigCache interface {
	GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error)
	SetPolicyConfig(ctx context.Context, cfg model.PolicyConfig) error
	DeletePolicyConfig(ctx context.Context) error
}

type BypassStore interface {
	GetGrant(ctx context.Context, subjectID string) (*model.BypassGrant, error)
	UpsertGrant(ctx context.Context, grant model.BypassGrant) error
	RevokeGrant(ctx context.Context, subjectID, actorID string, now time.Time) (int, error)
	CreateRequest(ctx context.Context, req model.BypassRequest) error
	GetRequest(ctx context.Context, id string) (*model.BypassRequest, error)
	ListRequests(ctx context.Context, status model.BypassStatus, limit int) ([]*model.BypassRequest, error)
	DecideRequest(ctx context.Context, id string, status model.BypassStatus, actorID string, now time.Time) (*model.BypassRequest, error)
}

// BlobVault is the encrypted file store.
type BlobVault interface {
	Store(ctx context.Context, name string, plaintext []byte, meta model.BlobMetadata) (string, error)
	Retrieve(ctx context.Context, id string) (*model.BlobContent, error)
	List(ctx context.Context, limit int) ([]*model.BlobRecord, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{})
}
