package catalog

import (
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/mediacat/mediacat/internal/media"
)

// suggestFloor is the minimum similarity for a suggestion to qualify.
const suggestFloor = 0.70

// Suggestion pairs an item with its similarity to the query.
type Suggestion struct {
	Item  *media.Item
	Score float64 // Jaro-Winkler similarity over normalized titles
}

// Suggest ranks items by fuzzy title similarity to the query, best
// first, keeping at most limit entries above the similarity floor. It
// complements Search for the case where a substring match comes back
// empty because of a typo.
func (c *Catalog) Suggest(text string, limit int) []Suggestion {
	query := normalizeTitle(text)
	if query == "" {
		return nil
	}

	var out []Suggestion
	for _, it := range c.items {
		score := float64(edlib.JaroWinklerSimilarity(query, normalizeTitle(it.Title)))
		if score >= suggestFloor {
			out = append(out, Suggestion{Item: it, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
