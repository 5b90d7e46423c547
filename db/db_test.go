package db

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoRows = errors.New("no rows")

// recordingDriver hands out a recordingSession and keeps the config it was asked for.
type recordingDriver struct {
	neo4j.DriverWithContext
	config  neo4j.SessionConfig
	session *recordingSession
}

func (d *recordingDriver) NewSession(_ context.Context, config neo4j.SessionConfig) neo4j.SessionWithContext {
	d.config = config
	return d.session
}

type recordingSession struct {
	neo4j.SessionWithContext
	calls  []string
	closed bool
}

func (s *recordingSession) ExecuteRead(_ context.Context, work neo4j.ManagedTransactionWork, _ ...func(*neo4j.TransactionConfig)) (any, error) {
	s.calls = append(s.calls, "read")
	return work(nil)
}

func (s *recordingSession) ExecuteWrite(_ context.Context, work neo4j.ManagedTransactionWork, _ ...func(*neo4j.TransactionConfig)) (any, error) {
	s.calls = append(s.calls, "write")
	return work(nil)
}

func (s *recordingSession) Close(context.Context) error {
	s.closed = true
	return nil
}

func TestExecuteReadTransaction(t *testing.T) {
	session := &recordingSession{}
	driver := &recordingDriver{session: session}

	result, err := ExecuteReadTransaction(context.Background(), driver, func(neo4j.ManagedTransaction) (interface{}, error) {
		return "policy", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "policy", result)
	assert.Equal(t, neo4j.AccessModeRead, driver.config.AccessMode)
	assert.Equal(t, []string{"read"}, session.calls)
	assert.True(t, session.closed)
}

func TestExecuteWriteTransaction_KeepsSentinel(t *testing.T) {
	session := &recordingSession{}
	driver := &recordingDriver{session: session}

	result, err := ExecuteWriteTransaction(context.Background(), driver, func(neo4j.ManagedTransaction) (interface{}, error) {
		return nil, errNoRows
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errNoRows)
	assert.Equal(t, neo4j.AccessModeWrite, driver.config.AccessMode)
	assert.Equal(t, []string{"write"}, session.calls)
	assert.True(t, session.closed)
}
