// Package blobstore keeps files encrypted at rest. Plaintext never reaches
// the repository and is never returned unless its tag verifies.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	"github.com/ZORO77a/Lockey/keyring"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
)

// Repository persists BlobRecords. GetBlob returns ErrFileNotFound for an
// unknown ID and ErrDatabaseOperation when the backend fails.
type Repository interface {
	CreateBlob(ctx context.Context, rec model.BlobRecord) error
	GetBlob(ctx context.Context, id string) (*model.BlobRecord, error)
	ListBlobs(ctx context.Context, limit int) ([]*model.BlobRecord, error)
}

type Store struct {
	repo Repository
	keys keyring.Provider
	now  func() time.Time
}

func NewStore(repo Repository, keys keyring.Provider) *Store {
	return &Store{repo: repo, keys: keys, now: time.Now}
}

// Store encrypts plaintext under the active key and returns the new blob ID.
func (s *Store) Store(ctx context.Context, name string, plaintext []byte, meta model.BlobMetadata) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: file name is required", lockey_errors.ErrInvalidFileData)
	}

	key, err := s.keys.ActiveKey(ctx)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	sealed, err := seal(key.Material, aadFields{BlobID: id, KeyID: key.ID, Name: name}, plaintext)
	if err != nil {
		return "", fmt.Errorf("sealing blob: %w", err)
	}

	rec := model.BlobRecord{
		ID:         id,
		Name:       name,
		Ciphertext: sealed,
		KeyID:      key.ID,
		Size:       int64(len(plaintext)),
		UploadedAt: s.now().UTC(),
		UploadedBy: meta.UploadedBy,
	}
	if err := s.repo.CreateBlob(ctx, rec); err != nil {
		return "", err
	}

	logger.Info("Blob stored",
		zap.String("blobID", id),
		zap.String("keyID", key.ID),
		zap.Int64("size", rec.Size))
	return id, nil
}

// Retrieve decrypts a blob in full. On ErrDecryptionFailed nothing is returned.
func (s *Store) Retrieve(ctx context.Context, id string) (*model.BlobContent, error) {
	if strings.TrimSpace(id) == "" {
		return nil, lockey_errors.ErrFileNotFound
	}

	rec, err := s.repo.GetBlob(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, lockey_errors.ErrFileNotFound
	}

	key, err := s.keys.KeyByID(ctx, rec.KeyID)
	if err != nil {
		// With a working keyring, a key ID it cannot resolve is a record
		// that fails authentication, not a configuration problem.
		if _, activeErr := s.keys.ActiveKey(ctx); activeErr == nil {
			logger.Error("Blob names an unknown key", zap.String("blobID", id), zap.String("keyID", rec.KeyID))
			return nil, fmt.Errorf("%w: unknown key id %q", lockey_errors.ErrDecryptionFailed, rec.KeyID)
		}
		return nil, err
	}

	plaintext, err := open(key.Material, aadFields{BlobID: rec.ID, KeyID: rec.KeyID, Name: rec.Name}, rec.Ciphertext)
	if err != nil {
		if errors.Is(err, lockey_errors.ErrDecryptionFailed) {
			logger.Error("Blob failed authentication", zap.String("blobID", id), zap.String("keyID", rec.KeyID))
		}
		return nil, err
	}

	return &model.BlobContent{ID: rec.ID, Name: rec.Name, Data: plaintext}, nil
}

// List returns record metadata only; ciphertext is stripped.
func (s *Store) List(ctx context.Context, limit int) ([]*model.BlobRecord, error) {
	records, err := s.repo.ListBlobs(ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		r.Ciphertext = nil
	}
	return records, nil
}
