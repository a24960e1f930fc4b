package emailer

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
	"unicode"

	"github.com/mrlokans/wordmail/internal/entities"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DateLayout renders dates as "January 2, 2006".
const DateLayout = "January 2, 2006"

var funcs = map[string]any{
	"inc":   func(i int) int { return i + 1 },
	"title": titleCase,
}

var (
	textTemplate = texttemplate.Must(texttemplate.New("daily.txt.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/daily.txt.tmpl"))
	htmlTemplate = htmltemplate.Must(htmltemplate.New("daily.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/daily.html.tmpl"))
)

// Stats is the delivery history appended to the email.
type Stats struct {
	TotalSent int64
	SentToday int64
}

// Formatter turns a batch of words into an email.
type Formatter struct {
	BotName       string
	SubjectPrefix string
}

type templateData struct {
	BotName string
	Date    string
	Words   []entities.VocabularyEntry
	Stats   *Stats
}

// Subject returns e.g. "📚 Daily Vocabulary - March 3, 2025".
func (f Formatter) Subject(date time.Time) string {
	return strings.TrimSpace(f.SubjectPrefix + " Daily Vocabulary - " + date.Format(DateLayout))
}

// Format renders the message for words sent on date. stats may be nil.
func (f Formatter) Format(to string, words []entities.VocabularyEntry, date time.Time, stats *Stats) (Message, error) {
	data := templateData{
		BotName: f.BotName,
		Date:    date.Format(DateLayout),
		Words:   words,
		Stats:   stats,
	}
	if data.BotName == "" {
		data.BotName = "Daily Vocabulary"
	}

	var text, html bytes.Buffer
	if err := textTemplate.Execute(&text, data); err != nil {
		return Message{}, err
	}
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return Message{}, err
	}

	return Message{
		To:       to,
		FromName: f.BotName,
		Subject:  f.Subject(date),
		Text:     text.String(),
		HTML:     html.String(),
	}, nil
}

func titleCase(word string) string {
	r := []rune(word)
	for i := range r {
		if i == 0 || !unicode.IsLetter(r[i-1]) {
			r[i] = unicode.ToUpper(r[i])
		}
	}
	return string(r)
}
