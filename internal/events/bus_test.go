package events

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mediacat/mediacat/internal/media"
	"github.com/mediacat/mediacat/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func testItem() *media.Item {
	return &media.Item{
		ID:    42,
		Kind:  media.KindBook,
		Title: "Dune",
		Year:  1965,
	}
}

func TestBus_PublishToSubscriber(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.Subscribe(1)
	bus.Publish(NewItemAdded(testItem()))

	select {
	case e := <-ch:
		if e.EventType() != TypeItemAdded {
			t.Errorf("event type = %q, want %q", e.EventType(), TypeItemAdded)
		}
		if e.EntityID() != 42 {
			t.Errorf("entity id = %d, want 42", e.EntityID())
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBus_DeliversAllEventTypesInOrder(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	all := bus.Subscribe(4)
	it := testItem()
	bus.Publish(NewItemAdded(it))
	bus.Publish(NewStatusChanged(it, media.StatusPlanned, media.StatusCompleted))
	bus.Publish(NewItemDeleted(it))

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case e := <-all:
			got = append(got, e.EventType())
		default:
			t.Fatalf("missing event %d", i)
		}
	}
	want := []string{TypeItemAdded, TypeStatusChanged, TypeItemDeleted}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBus_FullChannelDropsEvent(t *testing.T) {
	bus := NewBus(nil, nil)
	defer bus.Close()

	ch := bus.Subscribe(1)
	bus.Publish(NewItemAdded(testItem()))
	bus.Publish(NewItemAdded(testItem())) // dropped, channel full

	<-ch
	select {
	case <-ch:
		t.Error("second event should have been dropped")
	default:
	}
}

func TestBus_PublishAfterClose(t *testing.T) {
	bus := NewBus(nil, nil)
	ch := bus.Subscribe(1)
	_ = bus.Close()

	// Must not panic or deliver.
	bus.Publish(NewItemAdded(testItem()))

	if _, ok := <-ch; ok {
		t.Error("channel should be closed with no events")
	}
}

func TestLog_AppendAndQuery(t *testing.T) {
	db := setupTestDB(t)
	log := NewLog(db)

	it := testItem()
	if _, err := log.Append(NewItemAdded(it)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := log.Append(NewStatusChanged(it, media.StatusPlanned, media.StatusInProgress)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	recent, err := log.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d events, want 2", len(recent))
	}
	if recent[0].EventType != TypeStatusChanged {
		t.Errorf("newest first: got %q", recent[0].EventType)
	}

	forItem, err := log.ForEntity("Book", 42)
	if err != nil {
		t.Fatalf("ForEntity: %v", err)
	}
	if len(forItem) != 2 {
		t.Errorf("ForEntity returned %d events, want 2", len(forItem))
	}
	if len(forItem) > 0 && forItem[0].EventType != TypeItemAdded {
		t.Errorf("oldest first: got %q", forItem[0].EventType)
	}
}

func TestBus_PersistsThroughLog(t *testing.T) {
	db := setupTestDB(t)
	log := NewLog(db)
	bus := NewBus(log, nil)
	defer bus.Close()

	bus.Publish(NewItemAdded(testItem()))

	recent, err := log.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("published event not persisted")
	}
	if recent[0].EntityType != "Book" || recent[0].EntityID != 42 {
		t.Errorf("persisted event mismatch: %+v", recent[0])
	}
}
