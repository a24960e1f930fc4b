package entities

import (
	"strings"
	"time"
)

// VocabularyEntry is a single word ready to be delivered.
type VocabularyEntry struct {
	Headword     string `json:"word"`
	Definition   string `json:"meaning"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Example      string `json:"example"`
}

// NormalizeHeadword lower-cases and trims a word so it can be compared or used as a key.
func NormalizeHeadword(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// SentWord records a headword that has already been emailed.
type SentWord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Word         string    `gorm:"uniqueIndex;size:100;not null" json:"word"`
	Meaning      string    `gorm:"type:text" json:"meaning"`
	PartOfSpeech string    `gorm:"size:50" json:"part_of_speech"`
	Example      string    `gorm:"type:text" json:"example"`
	BatchID      string    `gorm:"index;size:36" json:"batch_id"`
	SentDate     time.Time `gorm:"index" json:"sent_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SentWord) TableName() string {
	return "sent_words"
}

// Entry converts the stored row back into a deliverable entry.
func (w SentWord) Entry() VocabularyEntry {
	return VocabularyEntry{
		Headword:     w.Word,
		Definition:   w.Meaning,
		PartOfSpeech: w.PartOfSpeech,
		Example:      w.Example,
	}
}
