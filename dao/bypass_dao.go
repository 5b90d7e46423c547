// dao/bypass_dao.go
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

// BypassDAO keeps a subject's standing grant as the bypassUntil property of
// its USER node and bypass requests as BYPASS_REQUEST nodes linked by
// REQUESTED.
type BypassDAO struct {
	Driver neo4j.DriverWithContext
}

func NewBypassDAO(driver neo4j.DriverWithContext) *BypassDAO {
	return &BypassDAO{Driver: driver}
}

const bypassRequestReturn = `
        RETURN r.id AS id, r.requestedBy AS requestedBy, r.startDate AS startDate,
               r.endDate AS endDate, r.reason AS reason, r.status AS status,
               r.createdAt AS createdAt, r.decidedAt AS decidedAt, r.decidedBy AS decidedBy
`

// GetGrant returns nil, nil when the subject has no grant.
func (dao *BypassDAO) GetGrant(ctx context.Context, subjectID string) (*model.BypassGrant, error) {
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `
        MATCH (u:USER {id: $subjectID})
        WHERE u.bypassUntil IS NOT NULL
        RETURN u.bypassUntil AS until
        `, map[string]interface{}{"subjectID": subjectID})
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			return nil, res.Err()
		}
		until, _, err := neo4j.GetRecordValue[time.Time](res.Record(), "until")
		if err != nil {
			return nil, err
		}
		return &model.BypassGrant{SubjectID: subjectID, Until: until}, nil
	})
	if err != nil {
		logger.Error("Failed to read bypass grant", zap.Error(err), zap.String("subjectID", subjectID))
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	if result == nil {
		return nil, nil
	}
	return result.(*model.BypassGrant), nil
}

// UpsertGrant replaces any existing grant for the subject.
func (dao *BypassDAO) UpsertGrant(ctx context.Context, grant model.BypassGrant) error {
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `
        MERGE (u:USER {id: $subjectID})
        SET u.bypassUntil = $until
        `, map[string]interface{}{"subjectID": grant.SubjectID, "until": grant.Until})
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	if err != nil {
		logger.Error("Failed to upsert bypass grant", zap.Error(err), zap.String("subjectID", grant.SubjectID))
		return fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Bypass grant upserted",
		zap.String("subjectID", grant.SubjectID),
		zap.Time("until", grant.Until))
	return nil
}

// RevokeGrant clears the subject's grant and moves its approved requests to
// revoked in one transaction. It returns how many requests were revoked.
func (dao *BypassDAO) RevokeGrant(ctx context.Context, subjectID, actorID string, now time.Time) (int, error) {
	result, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		params := map[string]interface{}{
			"subjectID": subjectID,
			"actorID":   actorID,
			"now":       now,
			"approved":  string(model.BypassApproved),
			"revoked":   string(model.BypassRevoked),
		}

		cleared, err := tx.Run(ctx, `
        MATCH (u:USER {id: $subjectID})
        REMOVE u.bypassUntil
        `, params)
		if err != nil {
			return nil, err
		}
		if _, err = cleared.Consume(ctx); err != nil {
			return nil, err
		}

		res, err := tx.Run(ctx, `
        MATCH (r:BYPASS_REQUEST {requestedBy: $subjectID, status: $approved})
        SET r.status = $revoked, r.decidedAt = $now, r.decidedBy = $actorID
        RETURN count(r) AS revoked
        `, params)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		count, _, err := neo4j.GetRecordValue[int64](record, "revoked")
		if err != nil {
			return nil, err
		}
		return int(count), nil
	})
	if err != nil {
		logger.Error("Failed to revoke bypass grant", zap.Error(err), zap.String("subjectID", subjectID))
		return 0, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return result.(int), nil
}

func (dao *BypassDAO) CreateRequest(ctx context.Context, req model.BypassRequest) error {
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `
        MERGE (u:USER {id: $requestedBy})
        CREATE (r:BYPASS_REQUEST {id: $id})
        SET r += $props
        CREATE (u)-[:REQUESTED]->(r)
        `, map[string]interface{}{
			"id":          req.ID,
			"requestedBy": req.SubjectID,
			"props": map[string]interface{}{
				"requestedBy": req.SubjectID,
				"startDate":   req.StartDate,
				"endDate":     req.EndDate,
				"reason":      req.Reason,
				"status":      string(req.Status),
				"createdAt":   req.CreatedAt,
			},
		})
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	if err != nil {
		logger.Error("Failed to create bypass request", zap.Error(err), zap.String("subjectID", req.SubjectID))
		return fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return nil
}

func (dao *BypassDAO) GetRequest(ctx context.Context, id string) (*model.BypassRequest, error) {
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `MATCH (r:BYPASS_REQUEST {id: $id})`+bypassRequestReturn,
			map[string]interface{}{"id": id})
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			if err := res.Err(); err != nil {
				return nil, err
			}
			return nil, lockey_errors.ErrBypassRequestNotFound
		}
		return bypassRequestFromRecord(res.Record())
	})
	if err != nil {
		if errors.Is(err, lockey_errors.ErrBypassRequestNotFound) {
			return nil, lockey_errors.ErrBypassRequestNotFound
		}
		logger.Error("Failed to read bypass request", zap.Error(err), zap.String("requestID", id))
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return result.(*model.BypassRequest), nil
}

// ListRequests returns requests newest first. An empty status lists all.
func (dao *BypassDAO) ListRequests(ctx context.Context, status model.BypassStatus, limit int) ([]*model.BypassRequest, error) {
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		res, err := tx.Run(ctx, `
        MATCH (r:BYPASS_REQUEST)
        WHERE $status = '' OR r.status = $status
        WITH r ORDER BY r.createdAt DESC LIMIT $limit`+bypassRequestReturn,
			map[string]interface{}{"status": string(status), "limit": int64(limit)})
		if err != nil {
			return nil, err
		}
		var requests []*model.BypassRequest
		for res.Next(ctx) {
			req, err := bypassRequestFromRecord(res.Record())
			if err != nil {
				return nil, err
			}
			requests = append(requests, req)
		}
		return requests, res.Err()
	})
	if err != nil {
		logger.Error("Failed to list bypass requests", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return result.([]*model.BypassRequest), nil
}

// DecideRequest moves a pending request to status. Approving also grants the
// requester a bypass until the request's end date, in the same transaction.
// A request that is no longer pending yields ErrBypassRequestDecided.
func (dao *BypassDAO) DecideRequest(ctx context.Context, id string, status model.BypassStatus, actorID string, now time.Time) (*model.BypassRequest, error) {
	result, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		params := map[string]interface{}{
			"id":      id,
			"status":  string(status),
			"pending": string(model.BypassPending),
			"actorID": actorID,
			"now":     now,
			"grant":   status == model.BypassApproved,
		}

		lookup, err := tx.Run(ctx, `MATCH (r:BYPASS_REQUEST {id: $id}) RETURN r.status AS status`, params)
		if err != nil {
			return nil, err
		}
		if !lookup.Next(ctx) {
			if err := lookup.Err(); err != nil {
				return nil, err
			}
			return nil, lockey_errors.ErrBypassRequestNotFound
		}
		current, _, err := neo4j.GetRecordValue[string](lookup.Record(), "status")
		if err != nil {
			return nil, err
		}
		if current != string(model.BypassPending) {
			return nil, lockey_errors.ErrBypassRequestDecided
		}

		res, err := tx.Run(ctx, `
        MATCH (r:BYPASS_REQUEST {id: $id, status: $pending})
        SET r.status = $status, r.decidedAt = $now, r.decidedBy = $actorID
        FOREACH (_ IN CASE WHEN $grant THEN [1] ELSE [] END |
            MERGE (u:USER {id: r.requestedBy})
            SET u.bypassUntil = r.endDate
        )`+bypassRequestReturn, params)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return bypassRequestFromRecord(record)
	})
	if err != nil {
		switch {
		case errors.Is(err, lockey_errors.ErrBypassRequestNotFound):
			return nil, lockey_errors.ErrBypassRequestNotFound
		case errors.Is(err, lockey_errors.ErrBypassRequestDecided):
			return nil, lockey_errors.ErrBypassRequestDecided
		}
		logger.Error("Failed to decide bypass request", zap.Error(err), zap.String("requestID", id))
		return nil, fmt.Errorf("%w: %v", lockey_errors.ErrDatabaseOperation, err)
	}
	return result.(*model.BypassRequest), nil
}

func bypassRequestFromRecord(record *neo4j.Record) (*model.BypassRequest, error) {
	req := &model.BypassRequest{}
	var err error

	if req.ID, _, err = neo4j.GetRecordValue[string](record, "id"); err != nil {
		return nil, err
	}
	if req.SubjectID, _, err = neo4j.GetRecordValue[string](record, "requestedBy"); err != nil {
		return nil, err
	}
	if req.StartDate, _, err = neo4j.GetRecordValue[time.Time](record, "startDate"); err != nil {
		return nil, err
	}
	if req.EndDate, _, err = neo4j.GetRecordValue[time.Time](record, "endDate"); err != nil {
		return nil, err
	}
	if req.Reason, _, err = neo4j.GetRecordValue[string](record, "reason"); err != nil {
		return nil, err
	}
	status, _, err := neo4j.GetRecordValue[string](record, "status")
	if err != nil {
		return nil, err
	}
	req.Status = model.BypassStatus(status)
	if req.CreatedAt, _, err = neo4j.GetRecordValue[time.Time](record, "createdAt"); err != nil {
		return nil, err
	}
	decidedAt, isNil, err := neo4j.GetRecordValue[time.Time](record, "decidedAt")
	if err != nil {
		return nil, err
	}
	if !isNil {
		req.DecidedAt = &decidedAt
	}
	if req.DecidedBy, _, err = neo4j.GetRecordValue[string](record, "decidedBy"); err != nil {
		return nil, err
	}
	return req, nil
}
