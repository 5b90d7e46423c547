package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ZORO77a/Lockey/audit"
	lockey_errors "github.com/ZORO77a/Lockey/errors"
	logger "github.com/ZORO77a/Lockey/logging"
	lockey_mock "github.com/ZORO77a/Lockey/test/mock"
)

func TestAppend_StampsIDAndTimestamp(t *testing.T) {
	repo := new(lockey_mock.MockAuditRepository)
	repo.On("Append", mock.Anything, mock.MatchedBy(func(e audit.AuditEntry) bool {
		return e.ID != "" && !e.Timestamp.IsZero() && e.Action == audit.ActionUploadedFile
	})).Return(nil)

	svc := audit.NewService(repo, 100)
	err := svc.Append(context.Background(), audit.NewEntry("admin@example.com", audit.ActionUploadedFile, map[string]string{"filename": "a.pdf"}))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAppend_StoreDownLogsToFallback(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger.UseLogger(zap.New(core))
	defer logger.UseLogger(zap.NewNop())

	repo := new(lockey_mock.MockAuditRepository)
	repo.On("Append", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := audit.NewService(repo, 100)
	err := svc.Append(context.Background(), audit.NewEntry("emp@example.com", "denied_geofence", map[string]float64{"lat": 1, "lon": 2}))

	assert.ErrorIs(t, err, lockey_errors.ErrDatabaseOperation)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "emp@example.com", fields["subjectID"])
	assert.Equal(t, "denied_geofence", fields["action"])
}

func TestRecent_ClampsLimit(t *testing.T) {
	repo := new(lockey_mock.MockAuditRepository)
	entries := []audit.AuditEntry{
		{ID: "2", Timestamp: time.Now()},
		{ID: "1", Timestamp: time.Now().Add(-time.Minute)},
	}
	repo.On("Recent", mock.Anything, 50).Return(entries, nil).Twice()
	repo.On("Recent", mock.Anything, 10).Return(entries, nil).Once()

	svc := audit.NewService(repo, 50)
	ctx := context.Background()

	_, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	_, err = svc.Recent(ctx, 10_000)
	require.NoError(t, err)
	got, err := svc.Recent(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, entries, got)
	repo.AssertExpectations(t)
}

func TestRecentForSubject_StorageError(t *testing.T) {
	repo := new(lockey_mock.MockAuditRepository)
	repo.On("RecentForSubject", mock.Anything, "emp@example.com", 100).Return(nil, errors.New("timeout"))

	_, err := audit.NewService(repo, 0).RecentForSubject(context.Background(), "emp@example.com", 100)
	assert.ErrorIs(t, err, lockey_errors.ErrDatabaseOperation)
}

func TestNewEntry_MarshalsContext(t *testing.T) {
	e := audit.NewEntry("s", "updated_settings", map[string]int{"radius_m": 1000})
	assert.JSONEq(t, `{"radius_m":1000}`, string(e.Context))

	assert.Nil(t, audit.NewEntry("s", "x", nil).Context)
}
