// db/db.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/ZORO77a/Lockey/config"
	logger "github.com/ZORO77a/Lockey/logging"
)

var Neo4jDriver neo4j.DriverWithContext

func InitNeo4j() error {
	var err error
	uri := config.GetString("neo4j.uri")
	logger.Info("Connecting to Neo4j at URI", zap.String("uri", uri))
	Neo4jDriver, err = neo4j.NewDriverWithContext(
		uri,
		neo4j.BasicAuth(
			config.GetString("neo4j.username"),
			config.GetString("neo4j.password"),
			"",
		),
		func(c *neo4j.Config) {
			c.MaxConnectionLifetime = 30 * time.Minute
			c.MaxConnectionPoolSize = 50
			c.Log = neo4j.ConsoleLogger(neo4j.ERROR)
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = Neo4jDriver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("failed to connect to Neo4j: %w", err)
	}

	if err = ensureConstraints(ctx); err != nil {
		return err
	}

	logger.Info("Successfully connected to Neo4j")
	return nil
}

// ensureConstraints makes the id properties unique so MERGE upserts stay
// single-node under concurrent writers.
func ensureConstraints(ctx context.Context) error {
	statements := []string{
		"CREATE CONSTRAINT policy_config_id IF NOT EXISTS FOR (p:POLICY_CONFIG) REQUIRE p.id IS UNIQUE",
		"CREATE CONSTRAINT subject_id IF NOT EXISTS FOR (u:USER) REQUIRE u.id IS UNIQUE",
		"CREATE CONSTRAINT bypass_request_id IF NOT EXISTS FOR (r:BYPASS_REQUEST) REQUIRE r.id IS UNIQUE",
		"CREATE CONSTRAINT blob_id IF NOT EXISTS FOR (b:BLOB) REQUIRE b.id IS UNIQUE",
	}
	for _, stmt := range statements {
		if _, err := neo4j.ExecuteQuery(ctx, Neo4jDriver, stmt, nil, neo4j.EagerResultTransformer); err != nil {
			return fmt.Errorf("failed to create constraint: %w", err)
		}
	}
	return nil
}

func CloseNeo4j() {
	if Neo4jDriver != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := Neo4jDriver.Close(ctx); err != nil {
			logger.Error("Error closing Neo4j connection", zap.Error(err))
		} else {
			logger.Info("Neo4j connection closed successfully")
		}
	}
}

// ExecuteReadTransaction executes a read transaction
func ExecuteReadTransaction(ctx context.Context, driver neo4j.DriverWithContext, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("failed to execute read transaction: %w", err)
	}

	return result, nil
}

// ExecuteWriteTransaction executes a write transaction
func ExecuteWriteTransaction(ctx context.Context, driver neo4j.DriverWithContext, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("failed to execute write transaction: %w", err)
	}

	return result, nil
}
