// Package sentwords stores the history of delivered vocabulary words.
//
// Every headword is stored at most once, which is what keeps the daily email
// from repeating itself.
//
// # Usage
//
//	repo := sentwords.NewRepository(db)
//	excluded, err := repo.GetSentHeadwords()
package sentwords

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/wordmail/internal/entities"
)

// ErrAlreadySent is returned by MarkWordSent for a headword already in the history.
var ErrAlreadySent = errors.New("word already sent")

// Stats summarises the delivery history.
type Stats struct {
	TotalWords int64      `json:"total_words"`
	WordsToday int64      `json:"words_today"`
	FirstSent  *time.Time `json:"first_sent,omitempty"`
	LastSent   *time.Time `json:"last_sent,omitempty"`
}

// Repository handles all sent-word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sent-word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// IsWordSent reports whether the headword was delivered before.
func (r *Repository) IsWordSent(word string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.SentWord{}).
		Where("word = ?", entities.NormalizeHeadword(word)).
		Count(&count).Error
	return count > 0, err
}

// MarkWordSent records a single delivered entry.
func (r *Repository) MarkWordSent(entry entities.VocabularyEntry, batchID string, sentAt time.Time) error {
	n, err := r.MarkWordsSent(batchID, []entities.VocabularyEntry{entry}, sentAt)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entry.Headword, ErrAlreadySent)
	}
	return nil
}

// MarkWordsSent records a delivered batch in one transaction and returns how
// many rows were inserted. Headwords already in the history are skipped.
func (r *Repository) MarkWordsSent(batchID string, entries []entities.VocabularyEntry, sentAt time.Time) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	rows := make([]entities.SentWord, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entities.SentWord{
			Word:         entities.NormalizeHeadword(e.Headword),
			Meaning:      e.Definition,
			PartOfSpeech: e.PartOfSpeech,
			Example:      e.Example,
			BatchID:      batchID,
			SentDate:     sentAt.UTC(),
		})
	}

	var inserted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "word"}},
				DoNothing: true,
			}).Create(&rows[i])
			if res.Error != nil {
				return res.Error
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record sent words: %w", err)
	}
	return int(inserted), nil
}

// GetSentWords returns the most recently sent words first. A limit <= 0 returns all.
func (r *Repository) GetSentWords(limit int) ([]entities.SentWord, error) {
	var words []entities.SentWord
	query := r.db.Order("sent_date DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&words).Error
	return words, err
}

// GetSentHeadwords returns every headword in the history.
func (r *Repository) GetSentHeadwords() ([]string, error) {
	var words []string
	err := r.db.Model(&entities.SentWord{}).Order("word").Pluck("word", &words).Error
	return words, err
}

// GetBatch returns the words delivered together under batchID.
func (r *Repository) GetBatch(batchID string) ([]entities.SentWord, error) {
	var words []entities.SentWord
	err := r.db.Where("batch_id = ?", batchID).Order("id").Find(&words).Error
	return words, err
}

func (r *Repository) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&entities.SentWord{}).Count(&count).Error
	return count, err
}

// CountSentOn counts words sent on the calendar day of day, in day's location.
func (r *Repository) CountSentOn(day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.Model(&entities.SentWord{}).
		Where("sent_date >= ? AND sent_date < ?", start.UTC(), end.UTC()).
		Count(&count).Error
	return count, err
}

// GetStats summarises the history relative to now.
func (r *Repository) GetStats(now time.Time) (Stats, error) {
	var stats Stats
	var err error

	if stats.TotalWords, err = r.CountTotal(); err != nil {
		return stats, err
	}
	if stats.WordsToday, err = r.CountSentOn(now); err != nil {
		return stats, err
	}
	if stats.TotalWords == 0 {
		return stats, nil
	}

	var first, last entities.SentWord
	if err := r.db.Order("sent_date ASC").First(&first).Error; err != nil {
		return stats, err
	}
	if err := r.db.Order("sent_date DESC").First(&last).Error; err != nil {
		return stats, err
	}
	stats.FirstSent = &first.SentDate
	stats.LastSent = &last.SentDate
	return stats, nil
}

// DeleteOlderThan removes words sent before cutoff and returns how many were removed.
func (r *Repository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("sent_date < ?", cutoff.UTC()).Delete(&entities.SentWord{})
	return res.RowsAffected, res.Error
}

// Reset clears the whole history.
func (r *Repository) Reset() (int64, error) {
	res := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.SentWord{})
	return res.RowsAffected, res.Error
}
