// internal/pkg/events/bus.go
package events

import "sync"

// Topic identifies which part of the engine state changed.
type Topic string

const (
	TopicCart     Topic = "cart"
	TopicWishlist Topic = "wishlist"
	TopicCompare  Topic = "compare"
	TopicOrder    Topic = "order"
	TopicCheckout Topic = "checkout"
	TopicUser     Topic = "user"
)

// Event describes a committed state mutation.
type Event struct {
	SessionID string
	Topic     Topic
}

// Bus delivers mutation events to subscribers synchronously, in
// subscription order, after each committed mutation.
type Bus struct {
	mu          sync.RWMutex
	subscribers []func(Event)
}

// NewBus creates an event bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a callback invoked after every committed mutation.
func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish delivers an event to all subscribers.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subscribers := make([]func(Event), len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn(event)
	}
}
