package services

import (
	"context"
	"time"

	"github.com/mrlokans/wordmail/internal/database/sentwords"
	"github.com/mrlokans/wordmail/internal/entities"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

// WordSelector picks the day's words.
type WordSelector interface {
	SelectWords(ctx context.Context, count int, excluded []string) []entities.VocabularyEntry
}

// HistoryStore provides the sent-word history.
// Use this interface when you need to know or record what was already sent.
type HistoryStore interface {
	GetSentHeadwords() ([]string, error)
	MarkWordsSent(batchID string, entries []entities.VocabularyEntry, sentAt time.Time) (int, error)
	GetDeliveryStats(now time.Time) (sentwords.Stats, error)
}

// DeliverySettingsStore exposes the effective delivery settings and records outcomes.
type DeliverySettingsStore interface {
	GetDeliverySettings() settingsstore.DeliverySettings
	SetDeliveryStatus(status, message string, wordsSent int) error
}

// DeliveryResult contains the outcome of a delivery run.
type DeliveryResult struct {
	BatchID   string                     `json:"batch_id,omitempty"`
	Recipient string                     `json:"recipient,omitempty"`
	Subject   string                     `json:"subject,omitempty"`
	Words     []entities.VocabularyEntry `json:"words"`
	Sent      bool                       `json:"sent"`
	Recorded  int                        `json:"recorded"`
}
