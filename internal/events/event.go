// Package events provides a pub/sub bus and a persistent log for
// catalog mutations.
package events

import (
	"time"

	"github.com/mediacat/mediacat/internal/media"
)

// Event is the base interface all events implement.
type Event interface {
	EventType() string
	EntityType() string // kind label of the item the event concerns
	EntityID() int64
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity_type"`
	ID        int64     `json:"entity_id"`
	Timestamp time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) EntityType() string    { return e.Entity }
func (e BaseEvent) EntityID() int64       { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

func newBaseEvent(eventType string, kind media.Kind, id int64) BaseEvent {
	return BaseEvent{
		Type:      eventType,
		Entity:    string(kind),
		ID:        id,
		Timestamp: time.Now(),
	}
}

// Event type names.
const (
	TypeItemAdded     = "item.added"
	TypeStatusChanged = "item.status_changed"
	TypeItemDeleted   = "item.deleted"
)

// ItemAdded is emitted when a new item enters the catalog.
type ItemAdded struct {
	BaseEvent
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// NewItemAdded builds an ItemAdded event for the given item.
func NewItemAdded(it *media.Item) ItemAdded {
	return ItemAdded{
		BaseEvent: newBaseEvent(TypeItemAdded, it.Kind, it.ID),
		Title:     it.Title,
		Year:      it.Year,
	}
}

// StatusChanged is emitted when an item's lifecycle status changes.
type StatusChanged struct {
	BaseEvent
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// NewStatusChanged builds a StatusChanged event for the given item.
func NewStatusChanged(it *media.Item, old, now media.Status) StatusChanged {
	return StatusChanged{
		BaseEvent: newBaseEvent(TypeStatusChanged, it.Kind, it.ID),
		OldStatus: old.Name(),
		NewStatus: now.Name(),
	}
}

// ItemDeleted is emitted when an item is removed from the catalog.
type ItemDeleted struct {
	BaseEvent
	Title string `json:"title"`
}

// NewItemDeleted builds an ItemDeleted event for the given item.
func NewItemDeleted(it *media.Item) ItemDeleted {
	return ItemDeleted{
		BaseEvent: newBaseEvent(TypeItemDeleted, it.Kind, it.ID),
		Title:     it.Title,
	}
}
