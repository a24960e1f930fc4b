package selector

import (
	"sort"
	"sync"

	"github.com/mrlokans/wordmail/internal/entities"
)

// Catalog is an immutable set of curated entries keyed by normalized headword.
type Catalog struct {
	entries   map[string]entities.VocabularyEntry
	headwords []string // sorted, so a seeded rand picks the same words every run
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the built-in catalog. It is built once and shared.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog(seedEntries)
	})
	return defaultCatalog
}

// NewCatalog builds a catalog from seed entries that may repeat headwords.
// For each headword the first entry whose definition is not too complex
// wins; if none qualifies the first entry listed is kept.
func NewCatalog(seed []entities.VocabularyEntry) *Catalog {
	c := &Catalog{entries: make(map[string]entities.VocabularyEntry)}
	simple := make(map[string]bool)

	for _, e := range seed {
		key := entities.NormalizeHeadword(e.Headword)
		if key == "" {
			continue
		}
		e.Headword = key

		existing, seen := c.entries[key]
		switch {
		case !seen:
			c.entries[key] = e
			c.headwords = append(c.headwords, key)
			simple[key] = !IsTooComplex(e.Definition)
		case !simple[key] && !IsTooComplex(e.Definition):
			if e.Example == "" {
				e.Example = existing.Example
			}
			c.entries[key] = e
			simple[key] = true
		}
	}

	sort.Strings(c.headwords)
	return c
}

// Lookup returns the curated entry for a headword.
func (c *Catalog) Lookup(headword string) (entities.VocabularyEntry, bool) {
	e, ok := c.entries[entities.NormalizeHeadword(headword)]
	return e, ok
}

// Headwords returns the distinct headwords in sorted order.
func (c *Catalog) Headwords() []string {
	out := make([]string, len(c.headwords))
	copy(out, c.headwords)
	return out
}

// Size is the number of distinct headwords.
func (c *Catalog) Size() int {
	return len(c.headwords)
}

// ExampleFor returns the example sentence for a headword: the shared example
// table first, then the catalog entry, then a generic sentence built from definition.
func (c *Catalog) ExampleFor(headword, definition string) string {
	key := entities.NormalizeHeadword(headword)
	if example, ok := curatedExamples[key]; ok {
		return example
	}
	if e, ok := c.entries[key]; ok && e.Example != "" {
		return e.Example
	}
	return GenericExample(key, definition)
}
