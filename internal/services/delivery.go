package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/wordmail/internal/emailer"
	"github.com/mrlokans/wordmail/internal/entities"
	"github.com/mrlokans/wordmail/internal/logging"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

var (
	ErrNoNewWords         = errors.New("no new words available")
	ErrEmailNotConfigured = errors.New("email delivery is not configured")
	ErrDeliveryInProgress = errors.New("delivery already in progress")
	// ErrNotRecorded means the email went out but the history could not be updated.
	ErrNotRecorded = errors.New("email sent but database update failed")
)

// TestSubjectPrefix marks messages sent by SendTest.
const TestSubjectPrefix = "🧪 Test"

// DeliveryService runs the select → email → record pipeline.
type DeliveryService struct {
	selector WordSelector
	history  HistoryStore
	settings DeliverySettingsStore
	sender   emailer.Sender
	logger   logrus.FieldLogger
	now      func() time.Time

	mu           sync.Mutex
	isDelivering bool
}

// NewDeliveryService creates the pipeline. sender may be nil when no email
// backend is configured; Run and SendTest then fail with ErrEmailNotConfigured.
func NewDeliveryService(selector WordSelector, history HistoryStore, settings DeliverySettingsStore, sender emailer.Sender, logger logrus.FieldLogger) *DeliveryService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DeliveryService{
		selector: selector,
		history:  history,
		settings: settings,
		sender:   sender,
		logger:   logger.WithField("component", "delivery"),
		now:      time.Now,
	}
}

// IsDelivering reports whether a run is in progress.
func (s *DeliveryService) IsDelivering() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDelivering
}

func (s *DeliveryService) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isDelivering {
		return false
	}
	s.isDelivering = true
	return true
}

func (s *DeliveryService) release() {
	s.mu.Lock()
	s.isDelivering = false
	s.mu.Unlock()
}

// Run selects new words, emails them and records them as sent.
// Nothing is recorded when sending fails.
func (s *DeliveryService) Run(ctx context.Context) (*DeliveryResult, error) {
	if !s.acquire() {
		s.logger.Warn("Delivery skipped (already delivering)")
		return nil, ErrDeliveryInProgress
	}
	defer s.release()

	settings := s.settings.GetDeliverySettings()
	start := s.now()

	result, err := s.deliver(ctx, settings)
	switch {
	case err == nil:
		msg := fmt.Sprintf("Sent %d words to %s in %v", len(result.Words), result.Recipient, s.now().Sub(start).Round(time.Millisecond))
		s.logger.Info(msg)
		s.recordStatus(settingsstore.StatusSuccess, msg, len(result.Words))
	case errors.Is(err, ErrNoNewWords):
		s.logger.Warn("No new words available. All words may have been sent already.")
		s.recordStatus(settingsstore.StatusNoWords, err.Error(), 0)
	case errors.Is(err, ErrNotRecorded):
		s.logger.WithError(err).Error("Email sent but history was not updated")
		s.recordStatus(settingsstore.StatusDegraded, err.Error(), len(result.Words))
	default:
		s.logger.WithError(err).Error("Delivery failed")
		s.recordStatus(settingsstore.StatusFailed, err.Error(), 0)
	}
	return result, err
}

func (s *DeliveryService) deliver(ctx context.Context, settings settingsstore.DeliverySettings) (*DeliveryResult, error) {
	if s.sender == nil || settings.RecipientEmail == "" {
		return nil, ErrEmailNotConfigured
	}

	excluded, err := s.history.GetSentHeadwords()
	if err != nil {
		return nil, fmt.Errorf("failed to load sent words: %w", err)
	}

	words := s.selector.SelectWords(ctx, settings.WordsPerDay, excluded)
	if len(words) == 0 {
		return nil, ErrNoNewWords
	}
	s.logger.Infof("Retrieved %d new words: %v", len(words), lo.Map(words, func(w entities.VocabularyEntry, _ int) string {
		return w.Headword
	}))

	now := s.now()
	var stats *emailer.Stats
	if st, err := s.history.GetDeliveryStats(now); err != nil {
		s.logger.WithError(err).Warn("Could not load delivery statistics")
	} else {
		stats = &emailer.Stats{TotalSent: st.TotalWords, SentToday: st.WordsToday}
	}

	formatter := emailer.Formatter{BotName: settings.BotName, SubjectPrefix: settings.SubjectPrefix}
	msg, err := formatter.Format(settings.RecipientEmail, words, now, stats)
	if err != nil {
		return nil, fmt.Errorf("failed to format email: %w", err)
	}

	result := &DeliveryResult{
		BatchID:   uuid.NewString(),
		Recipient: settings.RecipientEmail,
		Subject:   msg.Subject,
		Words:     words,
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return result, fmt.Errorf("failed to send email via %s: %w", s.sender.Name(), err)
	}
	result.Sent = true

	recorded, err := s.history.MarkWordsSent(result.BatchID, words, now)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrNotRecorded, err)
	}
	result.Recorded = recorded
	if recorded < len(words) {
		s.logger.Warnf("%d of %d words were already in the history", len(words)-recorded, len(words))
	}
	return result, nil
}

func (s *DeliveryService) recordStatus(status, message string, wordsSent int) {
	if err := s.settings.SetDeliveryStatus(status, message, wordsSent); err != nil {
		s.logger.WithError(err).Warn("Failed to store delivery status")
	}
}

// Preview selects words the way Run would, without sending or recording anything.
func (s *DeliveryService) Preview(ctx context.Context, count int) ([]entities.VocabularyEntry, error) {
	if count <= 0 {
		count = s.settings.GetDeliverySettings().WordsPerDay
	}
	excluded, err := s.history.GetSentHeadwords()
	if err != nil {
		return nil, fmt.Errorf("failed to load sent words: %w", err)
	}
	words := s.selector.SelectWords(ctx, count, excluded)
	if len(words) == 0 {
		return nil, ErrNoNewWords
	}
	return words, nil
}

// SendTest emails a single word with a test subject. The word is not
// recorded, so it stays eligible for the real delivery.
func (s *DeliveryService) SendTest(ctx context.Context) (*DeliveryResult, error) {
	settings := s.settings.GetDeliverySettings()
	if s.sender == nil || settings.RecipientEmail == "" {
		return nil, ErrEmailNotConfigured
	}

	words := s.selector.SelectWords(ctx, 1, nil)
	if len(words) == 0 {
		return nil, ErrNoNewWords
	}

	formatter := emailer.Formatter{BotName: settings.BotName, SubjectPrefix: TestSubjectPrefix}
	msg, err := formatter.Format(settings.RecipientEmail, words, s.now(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format email: %w", err)
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send test email via %s: %w", s.sender.Name(), err)
	}

	s.logger.Infof("Test email sent to %s", settings.RecipientEmail)
	return &DeliveryResult{
		Recipient: settings.RecipientEmail,
		Subject:   msg.Subject,
		Words:     words,
		Sent:      true,
	}, nil
}

// TestConnection checks the email backend without sending.
func (s *DeliveryService) TestConnection(ctx context.Context) error {
	if s.sender == nil {
		return ErrEmailNotConfigured
	}
	return s.sender.TestConnection(ctx)
}
