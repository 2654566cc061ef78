package events

import (
	"log/slog"
	"sync"
)

// Bus fans catalog events out to subscribers and optionally appends
// them to a Log. Delivery is non-blocking: a subscriber with a full
// channel misses the event rather than stalling the catalog.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan Event
	log    *Log // may be nil
	logger *slog.Logger
	closed bool
}

// NewBus creates a new event bus. The Log is optional - pass nil to
// disable persistence.
func NewBus(log *Log, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		log:    log,
		logger: logger,
	}
}

// Publish delivers an event to all subscribers and appends it to the
// log when one is configured. Log failures are reported but never block
// delivery.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	targets := make([]chan Event, len(b.subs))
	copy(targets, b.subs)
	b.mu.RUnlock()

	if b.log != nil {
		if _, err := b.log.Append(e); err != nil {
			b.logger.Error("failed to persist event", "type", e.EventType(), "error", err)
		}
	}

	for _, ch := range targets {
		select {
		case ch <- e:
		default:
			b.logger.Warn("subscriber channel full, dropping event",
				"type", e.EventType(), "entity_id", e.EntityID())
		}
	}
}

// Subscribe returns a channel receiving every published event.
func (b *Bus) Subscribe(bufferSize int) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, bufferSize)
	b.subs = append(b.subs, ch)
	return ch
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil

	return nil
}
