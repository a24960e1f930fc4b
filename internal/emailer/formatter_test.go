package emailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordmail/internal/entities"
)

var testDate = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func testWords() []entities.VocabularyEntry {
	return []entities.VocabularyEntry{
		{
			Headword:     "resilient",
			Definition:   "Able to recover quickly from difficulties",
			PartOfSpeech: "adjective",
			Example:      "The resilient child bounced back after falling down.",
		},
		{
			Headword:   "ephemeral",
			Definition: "Lasting for a very short time",
		},
	}
}

func TestFormatter_Subject(t *testing.T) {
	f := Formatter{SubjectPrefix: "📚"}
	assert.Equal(t, "📚 Daily Vocabulary - March 3, 2025", f.Subject(testDate))

	f = Formatter{}
	assert.Equal(t, "Daily Vocabulary - March 3, 2025", f.Subject(testDate))
}

func TestFormatter_Format_Text(t *testing.T) {
	f := Formatter{BotName: "Daily Vocabulary Bot", SubjectPrefix: "📚"}

	msg, err := f.Format("kid@example.com", testWords(), testDate, nil)
	require.NoError(t, err)

	assert.Equal(t, "kid@example.com", msg.To)
	assert.Equal(t, "Daily Vocabulary Bot", msg.FromName)
	assert.Equal(t, "📚 Daily Vocabulary - March 3, 2025", msg.Subject)

	assert.Contains(t, msg.Text, "Here are your vocabulary words for March 3, 2025:")
	assert.Contains(t, msg.Text, "1. Resilient\n   Definition: Able to recover quickly from difficulties\n   Part of Speech: adjective\n   Example: The resilient child bounced back after falling down.")
	assert.Contains(t, msg.Text, "2. Ephemeral\n   Definition: Lasting for a very short time\n   Example: No example available")
	assert.NotContains(t, msg.Text, "Vocabulary Statistics")
}

func TestFormatter_Format_Stats(t *testing.T) {
	f := Formatter{BotName: "Bot"}

	msg, err := f.Format("kid@example.com", testWords(), testDate, &Stats{TotalSent: 42, SentToday: 2})
	require.NoError(t, err)

	assert.Contains(t, msg.Text, "Total words sent so far: 42")
	assert.Contains(t, msg.Text, "Words sent today: 2")
	assert.Contains(t, msg.HTML, "<strong>Total words sent so far:</strong> 42")
}

func TestFormatter_Format_HTMLEscapes(t *testing.T) {
	f := Formatter{BotName: "<Bot>"}
	words := []entities.VocabularyEntry{{Headword: "curious", Definition: "Wanting to know <more>"}}

	msg, err := f.Format("kid@example.com", words, testDate, nil)
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, "&lt;Bot&gt;")
	assert.Contains(t, msg.HTML, "Wanting to know &lt;more&gt;")
	assert.False(t, strings.Contains(msg.HTML, "<more>"))
	assert.NotContains(t, msg.HTML, "Part of Speech")
}

func TestFormatter_DefaultBotName(t *testing.T) {
	msg, err := Formatter{}.Format("kid@example.com", testWords(), testDate, nil)
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "<h1>Daily Vocabulary</h1>")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Resilient", titleCase("resilient"))
	assert.Equal(t, "Well-Known", titleCase("well-known"))
	assert.Equal(t, "", titleCase(""))
}
