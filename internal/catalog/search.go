package catalog

import (
	"strings"

	"github.com/mediacat/mediacat/internal/media"
)

// Search returns every item whose title, genre, book author, or movie
// director contains text as a case-insensitive substring. Blank text
// returns the whole collection.
func (c *Catalog) Search(text string) []*media.Item {
	text = strings.TrimSpace(text)
	if text == "" {
		return c.Items()
	}

	needle := strings.ToLower(text)
	var out []*media.Item
	for _, it := range c.items {
		if matchesText(it, needle) {
			out = append(out, it)
		}
	}
	return out
}

// matchesText checks the searchable fields of an item against an
// already-lowercased needle.
func matchesText(it *media.Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Genre), needle) {
		return true
	}
	switch it.Kind {
	case media.KindBook:
		return strings.Contains(strings.ToLower(it.Author), needle)
	case media.KindMovie:
		return strings.Contains(strings.ToLower(it.Director), needle)
	}
	return false
}

// FilterByKind returns the items of the kind produced by the given
// label. The sentinel label "All" returns the whole collection.
func (c *Catalog) FilterByKind(label string) ([]*media.Item, error) {
	if label == media.KindAll {
		return c.Items(), nil
	}

	kind, err := media.ParseKind(label)
	if err != nil {
		return nil, err
	}

	var out []*media.Item
	for _, it := range c.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}
