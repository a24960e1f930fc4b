package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooComplex(t *testing.T) {
	tests := []struct {
		definition string
		want       bool
	}{
		{"Very smart and clever", false},
		{"Something that doesn't last very long", false},
		{"Two senses; joined", true},
		{"Continuing firmly despite obstacles", true},
		{"Able to adapt to many different uses", true},
		{strings.Repeat("a", MaxDefinitionLength), false},
		{strings.Repeat("a", MaxDefinitionLength+1), true},
		{"Finding something nice when you weren't looking for it", true},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTooComplex(tt.definition), tt.definition)
	}
}

func TestIsCircularDefinition(t *testing.T) {
	assert.True(t, IsCircularDefinition("compassionate", "Having or showing compassion."))
	assert.True(t, IsCircularDefinition("kind", "to feel compassion for someone"))
	assert.True(t, IsCircularDefinition("courageous", "Not deterred by danger; full of courage"))
	assert.True(t, IsCircularDefinition("brilliant", "Extremely brilliant"))
	assert.False(t, IsCircularDefinition("compassionate", "Caring about others and their feelings"))
	assert.False(t, IsCircularDefinition("", "anything"))
}

func TestBetterDefinition(t *testing.T) {
	assert.Equal(t, "Caring about others and their feelings", BetterDefinition("Compassionate"))
	assert.Equal(t, genericBetterDefinition, BetterDefinition("zesty"))

	for word, def := range betterDefinitions {
		assert.False(t, IsTooComplex(def), "%s: %q", word, def)
	}
}

func TestSimplifyDefinition(t *testing.T) {
	tests := []struct {
		name       string
		headword   string
		definition string
		want       string
	}{
		{"circular", "compassionate", "To feel compassion for others", "Caring about others and their feelings"},
		{"known phrase", "ephemeral", "Lasting for a very short time.", "Something that doesn't last very long"},
		{"known phrase for another word", "fleeting", "lasting for a very short time", "Something that doesn't last very long"},
		{"complex phrase with better definition", "serendipity", "good luck by chance in a happy or beneficial way", "Finding something nice without looking for it"},
		{"complex phrase without better definition", "zesty", "with regard to something", "with regard to something"},
		{"unknown", "concise", "short and clear", "short and clear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimplifyDefinition(tt.headword, tt.definition))
		})
	}
}
