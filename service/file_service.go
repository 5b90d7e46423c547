package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ZORO77a/Lockey/audit"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
	"github.com/ZORO77a/Lockey/util"
)

const defaultFileListLimit = 200

type IFileService interface {
	Upload(ctx context.Context, name string, data []byte, actorID string) (string, error)
	List(ctx context.Context, limit int) ([]*model.BlobRecord, error)
	AdminDownload(ctx context.Context, fileID, actorID string) (*model.BlobContent, error)
}

// FileService covers the admin side of the vault: upload, listing and
// download without policy evaluation.
type FileService struct {
	vault          BlobVault
	validationUtil *util.ValidationUtil
	auditService   audit.Service
	maxUploadSize  int64
}

func NewFileService(vault BlobVault, validationUtil *util.ValidationUtil, auditService audit.Service, maxUploadSize int64) *FileService {
	return &FileService{
		vault:          vault,
		validationUtil: validationUtil,
		auditService:   auditService,
		maxUploadSize:  maxUploadSize,
	}
}

func (s *FileService) Upload(ctx context.Context, name string, data []byte, actorID string) (string, error) {
	if err := s.validationUtil.ValidateUpload(name, int64(len(data)), s.maxUploadSize); err != nil {
		audit.Record(ctx, s.auditService, audit.NewEntry(actorID, audit.ActionUploadFailed, map[string]interface{}{
			"filename": name,
			"error":    err.Error(),
		}))
		return "", err
	}

	id, err := s.vault.Store(ctx, name, data, model.BlobMetadata{UploadedBy: actorID})
	if err != nil {
		logger.Error("Failed to store uploaded file", zap.Error(err), zap.String("filename", name))
		audit.Record(ctx, s.auditService, audit.NewEntry(actorID, audit.ActionUploadFailed, map[string]interface{}{
			"filename": name,
			"error":    err.Error(),
		}))
		return "", err
	}

	audit.Record(ctx, s.auditService, audit.NewEntry(actorID, audit.ActionUploadedFile, map[string]interface{}{
		"file_id":  id,
		"filename": name,
		"size":     len(data),
	}))
	return id, nil
}

func (s *FileService) List(ctx context.Context, limit int) ([]*model.BlobRecord, error) {
	if limit <= 0 {
		limit = defaultFileListLimit
	}
	return s.vault.List(ctx, limit)
}

func (s *FileService) AdminDownload(ctx context.Context, fileID, actorID string) (*model.BlobContent, error) {
	content, err := s.vault.Retrieve(ctx, fileID)
	if err != nil {
		audit.Record(ctx, s.auditService, audit.NewEntry(actorID, failureAction(err), map[string]interface{}{
			"file_id": fileID,
			"admin":   true,
		}))
		return nil, err
	}

	audit.Record(ctx, s.auditService, audit.NewEntry(actorID, audit.ActionAdminDownload, map[string]interface{}{
		"file_id":  fileID,
		"filename": content.Name,
	}))
	return content, nil
}
