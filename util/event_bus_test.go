package util

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
)

func TestEventBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	var got []string
	for _, name := range []string{"a", "b"} {
		name := name
		bus.Subscribe(EventPolicyUpdated, func(ctx context.Context, e Event) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, name+":"+e.Type)
			return nil
		})
	}

	bus.Publish(context.Background(), EventPolicyUpdated, model.DefaultPolicyConfig())
	bus.Publish(context.Background(), EventBypassApproved, nil)
	bus.Wait()

	assert.ElementsMatch(t, []string{"a:policy.updated", "b:policy.updated"}, got)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	id := bus.Subscribe(EventBypassRevoked, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})
	bus.Unsubscribe(EventBypassRevoked, id)

	bus.Publish(context.Background(), EventBypassRevoked, "emp@example.com")
	bus.Wait()

	assert.Equal(t, 0, calls)
}

func TestEventBus_HandlerSurvivesCancelledRequest(t *testing.T) {
	bus := NewEventBus()

	var handlerErr error
	bus.Subscribe(EventBypassGranted, func(ctx context.Context, e Event) error {
		handlerErr = ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, EventBypassGranted, nil)
	bus.Wait()

	assert.NoError(t, handlerErr)
}

func TestEventBus_HandlerErrorsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger.UseLogger(zap.New(core))
	defer logger.UseLogger(zap.NewNop())

	bus := NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	bus.Subscribe(EventPolicyUpdated, func(ctx context.Context, e Event) error {
		return errors.New("smtp down")
	})
	bus.Publish(context.Background(), EventPolicyUpdated, model.DefaultPolicyConfig())
	bus.Wait()

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Event handler error", logs.All()[0].Message)
}

func TestNotificationService_RejectsPendingDecision(t *testing.T) {
	n := NewNotificationService()

	err := n.NotifyBypassDecision(context.Background(), model.BypassRequest{Status: model.BypassPending})
	assert.Error(t, err)

	err = n.NotifyBypassDecision(context.Background(), model.BypassRequest{Status: model.BypassApproved, SubjectID: "emp@example.com"})
	assert.NoError(t, err)
}
