// dao/blob_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/ZORO77a/Lockey/db"
	lockey_errors "github.com/ZORO77a/Lockey/errors"
	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
)

// BlobDAO stores encrypted files as BLOB nodes, ciphertext in a byte array
// property. It implements blobstore.Repository.
type BlobDAO struct {
	Driver neo4j.DriverWithContext
}

func NewBlobDAO(driver neo4j.DriverWithContext) *BlobDAO {
	return &BlobDAO{Driver: driver}
}

func (dao *BlobDAO) CreateBlob(ctx context.Context, rec model.BlobRecord) error {
	start := time.Now()
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `
        CREATE (b:BLOB {id: $id})
        SET b += $props
        `, map[string]interface{}{
			"id": rec.ID,
			"props": map[string]interface{}{
				"name":       rec.Name,
				"ciphertext": rec.Ciphertext,
				"keyId":      rec.KeyID,
				"size":       rec.Size,
				"uploadedAt": rec.UploadedAt,
				"uploadedBy": rec.UploadedBy,
			},
		})
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	if err != nil {
		logger.Error("Failed to create blob", zap.Error(err), zap.String("blobID", rec.ID))
		return fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Blob created",
		zap.String("blobID", rec.ID),
		zap.Int64("size", rec.Size),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *BlobDAO) GetBlob(ctx context.Context, id string) (*model.BlobRecord, error) {
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `
        MATCH (b:BLOB {id: $id})
        RETURN b.id AS id, b.name AS name, b.ciphertext AS ciphertext, b.keyId AS keyId,
               b.size AS size, b.uploadedAt AS uploadedAt, b.uploadedBy AS uploadedBy
        `, map[string]interface{}{"id": id})
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			if err := res.Err(); err != nil {
				return nil, err
			}
			return nil, lockey_errors.ErrFileNotFound
		}
		rec, err := blobRecordFromRecord(res.Record())
		if err != nil {
			return nil, err
		}
		if rec.Ciphertext, _, err = neo4j.GetRecordValue[[]byte](res.Record(), "ciphertext"); err != nil {
			return nil, err
		}
		return rec, nil
	})
	if err != nil {
		if errors.Is(err, lockey_errors.ErrFileNotFound) {
			return nil, lockey_errors.ErrFileNotFound
		}
		logger.Error("Failed to read blob", zap.Error(err), zap.String("blobID", id))
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return result.(*model.BlobRecord), nil
}

// ListBlobs returns metadata only, newest upload first.
func (dao *BlobDAO) ListBlobs(ctx context.Context, limit int) ([]*model.BlobRecord, error) {
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `
        MATCH (b:BLOB)
        RETURN b.id AS id, b.name AS name, b.keyId AS keyId, b.size AS size,
               b.uploadedAt AS uploadedAt, b.uploadedBy AS uploadedBy
        ORDER BY b.uploadedAt DESC
        LIMIT $limit
        `, map[string]interface{}{"limit": int64(limit)})
		if err != nil {
			return nil, err
		}
		var records []*model.BlobRecord
		for res.Next(ctx) {
			rec, err := blobRecordFromRecord(res.Record())
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, res.Err()
	})
	if err != nil {
		logger.Error("Failed to list blobs", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return result.([]*model.BlobRecord), nil
}

func blobRecordFromRecord(record *neo4j.Record) (*model.BlobRecord, error) {
	rec := &model.BlobRecord{}
	var err error

	if rec.ID, _, err = neo4j.GetRecordValue[string](record, "id"); err != nil {
		return nil, err
	}
	if rec.Name, _, err = neo4j.GetRecordValue[string](record, "name"); err != nil {
		return nil, err
	}
	if rec.KeyID, _, err = neo4j.GetRecordValue[string](record, "keyId"); err != nil {
		return nil, err
	}
	if rec.Size, _, err = neo4j.GetRecordValue[int64](record, "size"); err != nil {
		return nil, err
	}
	if rec.UploadedAt, _, err = neo4j.GetRecordValue[time.Time](record, "uploadedAt"); err != nil {
		return nil, err
	}
	if rec.UploadedBy, _, err = neo4j.GetRecordValue[string](record, "uploadedBy"); err != nil {
		return nil, err
	}
	return rec, nil
}
