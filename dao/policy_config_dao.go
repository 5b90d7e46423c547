// dao/policy_config_dao.go
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

// PolicyConfigDAO stores the singleton policy as one POLICY_CONFIG node.
type PolicyConfigDAO struct {
	Driver neo4j.DriverWithContext
}

func NewPolicyConfigDAO(driver neo4j.DriverWithContext) *PolicyConfigDAO {
	return &PolicyConfigDAO{Driver: driver}
}

// GetPolicyConfig returns ErrPolicyConfigNotFound when no policy was ever saved.
func (dao *PolicyConfigDAO) GetPolicyConfig(ctx context.Context) (*model.PolicyConfig, error) {
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
        MATCH (p:POLICY_CONFIG {id: $id})
        RETURN p.latitude AS latitude, p.longitude AS longitude, p.radiusMeters AS radiusMeters,
               p.networkFingerprint AS networkFingerprint, p.startMinute AS startMinute,
               p.endMinute AS endMinute, p.updatedAt AS updatedAt
        `
		res, err := tx.Run(ctx, query, map[string]interface{}{"id": model.PolicyConfigID})
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			if err := res.Err(); err != nil {
				return nil, err
			}
			return nil, lockey_errors.ErrPolicyConfigNotFound
		}
		return policyConfigFromRecord(res.Record())
	})
	if err != nil {
		if errors.Is(err, lockey_errors.ErrPolicyConfigNotFound) {
			return nil, lockey_errors.ErrPolicyConfigNotFound
		}
		logger.Error("Failed to read policy config", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}

	cfg := result.(model.PolicyConfig)
	return &cfg, nil
}

// UpsertPolicyConfig replaces the stored policy. Concurrent writers race as
// last write wins.
func (dao *PolicyConfigDAO) UpsertPolicyConfig(ctx context.Context, cfg model.PolicyConfig) error {
	start := time.Now()
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
        MERGE (p:POLICY_CONFIG {id: $id})
        SET p += $props
        `
		params := map[string]interface{}{
			"id": model.PolicyConfigID,
			"props": map[string]interface{}{
				"latitude":           cfg.Latitude,
				"longitude":          cfg.Longitude,
				"radiusMeters":       int64(cfg.RadiusMeters),
				"networkFingerprint": cfg.NetworkFingerprint,
				"startMinute":        int64(cfg.StartTime),
				"endMinute":          int64(cfg.EndTime),
				"updatedAt":          cfg.UpdatedAt,
			},
		}
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	if err != nil {
		logger.Error("Failed to upsert policy config", zap.Error(err))
		return fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Policy config upserted",
		zap.Time("updatedAt", cfg.UpdatedAt),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func policyConfigFromRecord(record *neo4j.Record) (model.PolicyConfig, error) {
	var cfg model.PolicyConfig
	var err error

	if cfg.Latitude, _, err = neo4j.GetRecordValue[float64](record, "latitude"); err != nil {
		return cfg, err
	}
	if cfg.Longitude, _, err = neo4j.GetRecordValue[float64](record, "longitude"); err != nil {
		return cfg, err
	}
	radius, _, err := neo4j.GetRecordValue[int64](record, "radiusMeters")
	if err != nil {
		return cfg, err
	}
	cfg.RadiusMeters = int(radius)
	if cfg.NetworkFingerprint, _, err = neo4j.GetRecordValue[string](record, "networkFingerprint"); err != nil {
		return cfg, err
	}
	startMinute, _, err := neo4j.GetRecordValue[int64](record, "startMinute")
	if err != nil {
		return cfg, err
	}
	endMinute, _, err := neo4j.GetRecordValue[int64](record, "endMinute")
	if err != nil {
		return cfg, err
	}
	cfg.StartTime = model.ClockTime(startMinute)
	cfg.EndTime = model.ClockTime(endMinute)
	if cfg.UpdatedAt, _, err = neo4j.GetRecordValue[time.Time](record, "updatedAt"); err != nil {
		return cfg, err
	}
	return cfg, nil
}
