// Package event handles triggering of operations without direct dependency
package event

import (
	"sync"

	"go.uber.org/zap"
)

// EventType represents the type of event
type EventType int

const (
	// FolderDeleted is published when a project folder is removed; data is the folder id.
	FolderDeleted EventType = iota
	// SessionChanged is published on every auth transition; data is the current
	// account id, or the empty string when anonymous.
	SessionChanged
)

// Event represents an event with its type and associated data
type Event struct {
	Type EventType
	Data interface{}
}

// EventHandler is a function type for event handlers
type EventHandler func(Event)

// EventManager manages event subscriptions and publications. Handlers run
// synchronously on the publishing goroutine; mutations triggered by an event
// complete before the publishing operation returns.
type EventManager struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
	logger      *zap.Logger
}

// NewEventManager creates a new EventManager instance
func NewEventManager(logger *zap.Logger) *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
		logger:      logger,
	}
}

// Subscribe adds a new event handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (em *EventManager) Publish(event Event) {
	em.mu.RLock()
	handlers := em.subscribers[event.Type]
	em.mu.RUnlock()

	for _, handler := range handlers {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					em.logger.Error("Panic in event handler",
						zap.Int("eventType", int(event.Type)),
						zap.Any("panic", r))
				}
			}()
			h(event)
		}(handler)
	}
}
