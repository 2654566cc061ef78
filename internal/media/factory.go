package media

import (
	"errors"
	"time"
)

// ErrUnknownKind indicates a kind label with no registered factory.
var ErrUnknownKind = errors.New("unknown media kind")

// kinds lists the registered kinds in display order.
var kinds = []Kind{KindBook, KindMovie, KindGame, KindMusic}

// Kinds returns the registered kind labels in stable order.
func Kinds() []string {
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = string(k)
	}
	return labels
}

// ParseKind matches a label against the registered kinds.
func ParseKind(label string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == label {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// NewItem builds a default-initialized item of the given kind: status
// Planned, current year, zero rating, kind-specific fields empty. The
// caller populates the fields and hands the item to the catalog.
func NewItem(label string) (*Item, error) {
	kind, err := ParseKind(label)
	if err != nil {
		return nil, err
	}

	item := &Item{
		Kind:   kind,
		Year:   time.Now().Year(),
		Status: StatusPlanned,
	}
	if kind == KindMusic {
		item.Format = "mp3"
	}
	return item, nil
}
