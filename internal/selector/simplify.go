package selector

import (
	"strings"
)

// phraseReplacements maps whole dictionary phrasings to their simple versions.
var phraseReplacements = []struct {
	complex string
	simple  string
}{
	{"the occurrence and development of events by chance in a happy or beneficial way", "Finding something nice without looking for it"},
	{"lasting for a very short time", "Something that doesn't last very long"},
	{"present, appearing, or found everywhere", "Something that is everywhere you look"},
	{"fluent or persuasive in speaking or writing", "Speaking in a beautiful and clear way"},
	{"able to withstand or recover quickly from difficult conditions", "Bouncing back quickly when something bad happens"},
	{"genuine or real; not false or copied", "Real and true, not fake"},
	{"featuring new methods, advanced ideas, or creative thinking", "Coming up with new and clever ideas"},
	{"continuing firmly or obstinately in a course of action", "Not giving up, even when it's hard"},
	{"able to adapt or be adapted to many different functions or activities", "Able to do many different things"},
	{"having or showing care and conscientiousness in one's work or duties", "Working hard and being careful with your work"},
	{"transitory", "Temporary"},
}

// complexPhrases trigger a switch to the headword's better definition when
// no whole-phrase replacement matched.
var complexPhrases = []string{
	"the occurrence and development of",
	"by chance in a happy or beneficial way",
	"able to withstand or recover quickly from",
	"featuring new methods, advanced ideas, or",
	"continuing firmly or obstinately in",
	"having or showing care and conscientiousness in",
	"able to adapt or be adapted to many different functions or activities",
	"to feel compassion",
	"with regard to something",
	"to regard someone or something with",
}

// SimplifyDefinition rewrites known dictionary phrasings into simpler ones.
// Definitions that match nothing are returned unchanged.
func SimplifyDefinition(headword, definition string) string {
	if IsCircularDefinition(headword, definition) {
		return BetterDefinition(headword)
	}

	lower := strings.ToLower(definition)
	for _, r := range phraseReplacements {
		if strings.Contains(lower, r.complex) {
			return r.simple
		}
	}

	if hasBetterDefinition(headword) {
		for _, phrase := range complexPhrases {
			if strings.Contains(lower, phrase) {
				return BetterDefinition(headword)
			}
		}
	}

	return definition
}
