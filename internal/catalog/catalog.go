// Package catalog coordinates the in-memory media collection, the
// storage collaborator, and the factories behind a single facade.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/mediacat/mediacat/internal/events"
	"github.com/mediacat/mediacat/internal/media"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_storage.go -package=mocks

// Storage is the persistence collaborator. Insert assigns the item's
// ID; InsertAll writes a batch atomically.
type Storage interface {
	Init() error
	LoadAll() ([]*media.Item, error)
	Insert(*media.Item) error
	InsertAll([]*media.Item) error
	Update(*media.Item) error
	Delete(*media.Item) error
}

// Catalog is the facade over the media collection. The in-memory slice
// is the source of truth for display; storage is a durable mirror kept
// in sync on every mutation. Not safe for concurrent use: all calls are
// expected from a single flow of control.
type Catalog struct {
	items   []*media.Item
	storage Storage
	bus     *events.Bus // may be nil
	log     *slog.Logger
}

// New initializes storage, loads all persisted items, and returns the
// ready catalog. The bus is optional.
func New(storage Storage, bus *events.Bus, log *slog.Logger) (*Catalog, error) {
	if log == nil {
		log = slog.Default()
	}
	c := &Catalog{
		storage: storage,
		bus:     bus,
		log:     log,
	}
	if err := storage.Init(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Create builds a default-initialized item of the given kind without
// adding it to the catalog. Returns ErrUnknownKind for an unregistered
// label.
func (c *Catalog) Create(kind string) (*media.Item, error) {
	return media.NewItem(kind)
}

// Kinds returns the registered kind labels in stable order.
func (c *Catalog) Kinds() []string {
	return media.Kinds()
}

// Add validates the item, persists it, and appends it to the
// collection. On a persistence failure the collection is untouched.
func (c *Catalog) Add(item *media.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	if err := c.storage.Insert(item); err != nil {
		return fmt.Errorf("add %s: %w", item.Kind, err)
	}
	c.items = append(c.items, item)
	c.log.Debug("item added", "kind", item.Kind, "id", item.ID, "title", item.Title)
	c.publish(events.NewItemAdded(item))
	return nil
}

// AddAll validates every item up front, persists the batch atomically,
// and appends it to the collection. A failure anywhere leaves both
// storage and the collection untouched.
func (c *Catalog) AddAll(items []*media.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidItem, item.Title, err)
		}
	}
	if err := c.storage.InsertAll(items); err != nil {
		return fmt.Errorf("add batch: %w", err)
	}
	c.items = append(c.items, items...)
	for _, item := range items {
		c.log.Debug("item added", "kind", item.Kind, "id", item.ID, "title", item.Title)
		c.publish(events.NewItemAdded(item))
	}
	return nil
}

// Update validates and persists field edits to an already-added item.
func (c *Catalog) Update(item *media.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	if err := c.storage.Update(item); err != nil {
		return fmt.Errorf("update %s %d: %w", item.Kind, item.ID, err)
	}
	c.log.Debug("item updated", "kind", item.Kind, "id", item.ID)
	return nil
}

// ChangeStatus applies the named action to the item's lifecycle status
// and persists the result. The in-memory status is mutated before the
// write; a persistence failure is returned but not rolled back, so the
// collection can be ahead of storage until the next Refresh.
func (c *Catalog) ChangeStatus(item *media.Item, action string) error {
	a, err := media.ParseAction(action)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	old := item.Status
	item.Status = old.Apply(a)

	if err := c.storage.Update(item); err != nil {
		return fmt.Errorf("change status of %s %d: %w", item.Kind, item.ID, err)
	}
	c.log.Debug("status changed",
		"kind", item.Kind, "id", item.ID, "from", old.Name(), "to", item.Status.Name())
	if old != item.Status {
		c.publish(events.NewStatusChanged(item, old, item.Status))
	}
	return nil
}

// Delete removes the item from storage, then from the collection. If
// the storage call fails the item stays in memory.
func (c *Catalog) Delete(item *media.Item) error {
	if err := c.storage.Delete(item); err != nil {
		return fmt.Errorf("delete %s %d: %w", item.Kind, item.ID, err)
	}
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.log.Debug("item deleted", "kind", item.Kind, "id", item.ID)
	c.publish(events.NewItemDeleted(item))
	return nil
}

// Refresh reloads the collection from storage, discarding the current
// in-memory state.
func (c *Catalog) Refresh() error {
	items, err := c.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	c.items = items
	c.log.Debug("catalog refreshed", "items", len(items))
	return nil
}

// Items returns a copy of the collection in display order.
func (c *Catalog) Items() []*media.Item {
	out := make([]*media.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the collection.
func (c *Catalog) Len() int { return len(c.items) }

// Get finds an item by kind and ID, or nil.
func (c *Catalog) Get(kind media.Kind, id int64) *media.Item {
	for _, it := range c.items {
		if it.Kind == kind && it.ID == id {
			return it
		}
	}
	return nil
}

func (c *Catalog) publish(e events.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
