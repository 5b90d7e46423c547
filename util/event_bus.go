// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/ZORO77a/Lockey/logging"
)

// Event types published by the services.
const (
	EventPolicyUpdated   = "policy.updated"
	EventBypassRequested = "bypass.requested"
	EventBypassApproved  = "bypass.approved"
	EventBypassRejected  = "bypass.rejected"
	EventBypassRevoked   = "bypass.revoked"
	EventBypassGranted   = "bypass.granted"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

type subscription struct {
	id      int
	handler EventHandler
}

// EventBus fans events out to subscribers asynchronously. Handler errors
// never reach the publisher; they are logged by the loop started with Start.
type EventBus struct {
	subscribers map[string][]subscription
	nextID      int
	mu          sync.RWMutex
	errorChan   chan error
	wg          sync.WaitGroup
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]subscription),
		errorChan:   make(chan error, 100),
	}
}

// Subscribe registers handler for eventType and returns an id for Unsubscribe.
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) int {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextID++
	eb.subscribers[eventType] = append(eb.subscribers[eventType], subscription{id: eb.nextID, handler: handler})
	return eb.nextID
}

// Unsubscribe removes the subscription returned by Subscribe.
func (eb *EventBus) Unsubscribe(eventType string, id int) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[eventType]
	for i, s := range subs {
		if s.id == id {
			eb.subscribers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers. The handlers run detached from
// ctx's cancellation so a finished HTTP request does not abort them.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	subs := append([]subscription(nil), eb.subscribers[eventType]...)
	eb.mu.RUnlock()

	if len(subs) == 0 {
		return
	}

	event := Event{Type: eventType, Payload: payload}
	detached := context.WithoutCancel(ctx)

	for _, s := range subs {
		eb.wg.Add(1)
		go func(h EventHandler) {
			defer eb.wg.Done()
			if err := h(detached, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error for %s: %w", eventType, err):
				default:
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", eventType))
				}
			}
		}(s.handler)
	}
}

// Wait blocks until every handler started by Publish has returned.
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}

// Start begins processing handler errors until ctx is done.
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
