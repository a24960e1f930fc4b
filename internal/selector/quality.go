package selector

import (
	"strings"

	"github.com/mrlokans/wordmail/internal/entities"
)

// MaxDefinitionLength is the longest definition still considered simple.
const MaxDefinitionLength = 50

// complexMarkers flag vocabulary too advanced for the target reader.
// Matching is by substring, so "adapt" also catches "adaptable".
var complexMarkers = []string{
	"obstinately", "refusing", "inquisitive", "connotation", "nosy", "prying",
	"tending", "investigate", "withstand", "recover", "difficult", "conditions",
	"conscientiousness", "adapt", "adapted", "functions", "activities",
	"occurrence", "development", "beneficial", "transitory", "persuasive",
	"genuine", "methods", "advanced", "creative", "firmly", "course", "action",
}

// circularPatterns are phrasings that define a word with its own root.
var circularPatterns = []string{
	"to feel compassion",
	"with compassion",
	"having compassion",
	"showing compassion",
	"regard with compassion",
	"feeling compassion",
	"compassion for",
	"compassion with",
}

// selfReferenceStems maps a headword to the noun it is usually defined by.
var selfReferenceStems = map[string]string{
	"compassionate": "compassion",
	"courageous":    "courage",
	"curious":       "curiosity",
	"imaginative":   "imagination",
	"enthusiastic":  "enthusiasm",
	"generous":      "generosity",
	"optimistic":    "optimism",
	"resilient":     "resilience",
	"tenacious":     "tenacity",
	"adventurous":   "adventure",
	"persistent":    "persistence",
	"diligent":      "diligence",
}

const genericBetterDefinition = "Having a special quality that makes something good or interesting"

var betterDefinitions = map[string]string{
	"compassionate": "Caring about others and their feelings",
	"serendipity":   "Finding something nice without looking for it",
	"ephemeral":     "Something that doesn't last very long",
	"ubiquitous":    "Something that is everywhere you look",
	"eloquent":      "Speaking in a beautiful and clear way",
	"resilient":     "Bouncing back quickly when something bad happens",
	"authentic":     "Real and true, not fake",
	"innovative":    "Coming up with new and clever ideas",
	"persistent":    "Not giving up, even when it's hard",
	"versatile":     "Able to do many different things",
	"diligent":      "Working hard and being careful with your work",
	"magnificent":   "Very beautiful and impressive",
	"curious":       "Wanting to know more about things",
	"generous":      "Sharing with others and being kind",
	"courageous":    "Brave and not afraid to do the right thing",
	"brilliant":     "Very smart and clever",
	"adventurous":   "Loving to try new things and explore",
	"enthusiastic":  "Very excited and happy about something",
	"determined":    "Having a strong goal and working hard to reach it",
	"imaginative":   "Good at thinking of fun new ideas",
}

// IsTooComplex reports whether a definition is unsuitable for a young reader:
// it uses a marker word, runs past MaxDefinitionLength, or packs several
// senses together with a semicolon.
func IsTooComplex(definition string) bool {
	lower := strings.ToLower(definition)
	for _, marker := range complexMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	if len([]rune(definition)) > MaxDefinitionLength {
		return true
	}
	return strings.Contains(definition, ";")
}

// IsCircularDefinition reports whether definition explains headword in terms of itself.
func IsCircularDefinition(headword, definition string) bool {
	lower := strings.ToLower(definition)
	for _, pattern := range circularPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	key := entities.NormalizeHeadword(headword)
	if key == "" {
		return false
	}
	if strings.Contains(lower, key) {
		return true
	}
	if stem, ok := selfReferenceStems[key]; ok && strings.Contains(lower, stem) {
		return true
	}
	return false
}

// BetterDefinition returns the hand-written replacement for a headword whose
// dictionary definition was rejected.
func BetterDefinition(headword string) string {
	if def, ok := betterDefinitions[entities.NormalizeHeadword(headword)]; ok {
		return def
	}
	return genericBetterDefinition
}

func hasBetterDefinition(headword string) bool {
	_, ok := betterDefinitions[entities.NormalizeHeadword(headword)]
	return ok
}
