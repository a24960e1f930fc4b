// Package selector picks the daily vocabulary words.
//
// Candidates are drawn from the curated catalog, checked against a
// dictionary, and normalised into short, child-friendly entries. Lookup
// failures and unsuitable dictionary text always fall back to the curated
// entry, so selection itself never fails: when too many words are excluded
// it simply returns fewer entries.
package selector

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/wordmail/internal/dictionary"
	"github.com/mrlokans/wordmail/internal/entities"
	"github.com/mrlokans/wordmail/internal/logging"
)

// Policy decides whose text wins when a dictionary definition passes every quality check.
type Policy int

const (
	// PolicyPreferCurated keeps the catalog wording; the lookup only confirms the word.
	PolicyPreferCurated Policy = iota
	// PolicyPreferExternal uses the simplified dictionary wording.
	PolicyPreferExternal
)

func (p Policy) String() string {
	switch p {
	case PolicyPreferExternal:
		return "external"
	default:
		return "curated"
	}
}

// ParsePolicy converts a configuration value into a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "curated":
		return PolicyPreferCurated, nil
	case "external":
		return PolicyPreferExternal, nil
	default:
		return PolicyPreferCurated, fmt.Errorf("unknown definition policy %q", value)
	}
}

// attemptsPerWord bounds the random draws spent per requested word.
const attemptsPerWord = 3

// Selector chooses vocabulary entries. It is safe for concurrent use.
type Selector struct {
	catalog *Catalog
	lookup  dictionary.Client
	policy  Policy
	logger  logrus.FieldLogger

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Selector)

// WithCatalog replaces the built-in catalog.
func WithCatalog(c *Catalog) Option {
	return func(s *Selector) { s.catalog = c }
}

// WithPolicy sets the definition policy.
func WithPolicy(p Policy) Option {
	return func(s *Selector) { s.policy = p }
}

// WithSeed makes selection reproducible.
func WithSeed(seed int64) Option {
	return func(s *Selector) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses the given random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) { s.rng = r }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Selector) { s.logger = l }
}

// New creates a selector. lookup may be nil, in which case only curated
// entries are used.
func New(lookup dictionary.Client, opts ...Option) *Selector {
	s := &Selector{
		catalog: DefaultCatalog(),
		lookup:  lookup,
		policy:  PolicyPreferCurated,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Catalog exposes the catalog the selector draws from.
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

// SelectWords returns up to count entries with distinct headwords, none of
// which appear in excluded. Fewer entries are returned only when the catalog
// runs out of unexcluded words.
func (s *Selector) SelectWords(ctx context.Context, count int, excluded []string) []entities.VocabularyEntry {
	if count <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	skip := lo.Associate(excluded, func(w string) (string, struct{}) {
		return entities.NormalizeHeadword(w), struct{}{}
	})
	chosen := make(map[string]struct{}, count)
	result := make([]entities.VocabularyEntry, 0, count)

	headwords := s.catalog.headwords
	if len(headwords) == 0 {
		return result
	}

	for attempt := 0; attempt < attemptsPerWord*count && len(result) < count; attempt++ {
		candidate := headwords[s.rng.Intn(len(headwords))]
		if _, dup := chosen[candidate]; dup {
			continue
		}
		if _, ex := skip[candidate]; ex {
			continue
		}

		result = append(result, s.resolve(ctx, candidate))
		chosen[candidate] = struct{}{}
	}

	if len(result) < count {
		remaining := lo.Filter(headwords, func(h string, _ int) bool {
			_, dup := chosen[h]
			_, ex := skip[h]
			return !dup && !ex
		})
		s.rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})

		for _, h := range remaining {
			if len(result) >= count {
				break
			}
			entry, _ := s.catalog.Lookup(h)
			entry.Example = s.catalog.ExampleFor(h, entry.Definition)
			result = append(result, entry)
			chosen[h] = struct{}{}
		}
		if len(remaining) > 0 {
			s.logger.Debugf("Topped up selection from catalog, %d candidates remained", len(remaining))
		}
	}

	if len(result) < count {
		s.logger.Warnf("Catalog exhausted: returning %d of %d requested words", len(result), count)
	}

	s.logger.Infof("Selected %d new words", len(result))
	return result
}

// resolve builds the entry for a catalog headword, consulting the dictionary when available.
func (s *Selector) resolve(ctx context.Context, headword string) entities.VocabularyEntry {
	curated, _ := s.catalog.Lookup(headword)
	curated.Example = s.catalog.ExampleFor(headword, curated.Definition)

	if s.lookup == nil {
		return curated
	}

	log := s.logger.WithField("word", headword)

	result, err := s.lookup.Lookup(ctx, headword)
	if err != nil {
		log.WithError(err).Warn("Dictionary lookup failed, using curated entry")
		return curated
	}
	def, ok := result.First()
	if !ok {
		log.Warn("Dictionary returned no definitions, using curated entry")
		return curated
	}

	entry := s.evaluate(headword, curated, def)
	log.WithField("source", entrySource(entry, curated)).Debug("Resolved word")
	return entry
}

// evaluate applies the quality rules to a looked-up definition.
func (s *Selector) evaluate(headword string, curated entities.VocabularyEntry, def dictionary.Definition) entities.VocabularyEntry {
	log := s.logger.WithField("word", headword)

	if IsCircularDefinition(headword, def.Definition) {
		log.Info("Dictionary definition is circular, using better definition")
		entry := curated
		if hasBetterDefinition(headword) {
			entry.Definition = BetterDefinition(headword)
		}
		if entry.PartOfSpeech == "" {
			entry.PartOfSpeech = def.PartOfSpeech
		}
		return entry
	}

	if IsTooComplex(def.Definition) {
		log.Info("Dictionary definition too complex, using curated entry")
		return curated
	}

	if s.policy == PolicyPreferCurated {
		entry := curated
		if entry.PartOfSpeech == "" {
			entry.PartOfSpeech = def.PartOfSpeech
		}
		return entry
	}

	simplified := SimplifyDefinition(headword, def.Definition)
	entry := entities.VocabularyEntry{
		Headword:     headword,
		Definition:   capitalize(strings.TrimRight(simplified, ". ")),
		PartOfSpeech: lo.Ternary(def.PartOfSpeech != "", def.PartOfSpeech, curated.PartOfSpeech),
	}
	entry.Example = s.catalog.ExampleFor(headword, entry.Definition)
	return entry
}

func entrySource(entry, curated entities.VocabularyEntry) string {
	if entry.Definition == curated.Definition {
		return "catalog"
	}
	return "dictionary"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
