package dictionary

import (
	"context"
	"errors"
)

var (
	// ErrWordNotFound is returned when the dictionary has no entry for the word.
	ErrWordNotFound = errors.New("word not found")
	// ErrNoDefinitions is returned when an entry exists but carries no definitions.
	ErrNoDefinitions = errors.New("no definitions")
)

// Definition is a single sense of a word.
type Definition struct {
	PartOfSpeech string
	Definition   string
	Example      string
}

// LookupResult contains the result of a dictionary lookup.
type LookupResult struct {
	Word        string
	Definitions []Definition
}

// First returns the first definition of the first meaning.
func (r *LookupResult) First() (Definition, bool) {
	if r == nil || len(r.Definitions) == 0 {
		return Definition{}, false
	}
	return r.Definitions[0], true
}

// Client defines the interface for dictionary API providers.
type Client interface {
	Lookup(ctx context.Context, word string) (*LookupResult, error)
	Name() string
}
