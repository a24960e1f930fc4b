package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordmail/internal/database/sentwords"
	"github.com/mrlokans/wordmail/internal/emailer"
	"github.com/mrlokans/wordmail/internal/entities"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

type fakeSelector struct {
	words    []entities.VocabularyEntry
	gotCount int
	excluded []string
}

func (f *fakeSelector) SelectWords(_ context.Context, count int, excluded []string) []entities.VocabularyEntry {
	f.gotCount = count
	f.excluded = excluded
	if count < len(f.words) {
		return f.words[:count]
	}
	return f.words
}

type fakeHistory struct {
	sent      []string
	marked    []entities.VocabularyEntry
	batchID   string
	markErr   error
	stats     sentwords.Stats
	loadErr   error
	markCalls int
}

func (f *fakeHistory) GetSentHeadwords() ([]string, error) {
	return f.sent, f.loadErr
}

func (f *fakeHistory) MarkWordsSent(batchID string, entries []entities.VocabularyEntry, _ time.Time) (int, error) {
	f.markCalls++
	if f.markErr != nil {
		return 0, f.markErr
	}
	f.batchID = batchID
	f.marked = append(f.marked, entries...)
	return len(entries), nil
}

func (f *fakeHistory) GetDeliveryStats(time.Time) (sentwords.Stats, error) {
	return f.stats, nil
}

type fakeSettings struct {
	settings settingsstore.DeliverySettings
	status   string
	message  string
	count    int
}

func (f *fakeSettings) GetDeliverySettings() settingsstore.DeliverySettings {
	return f.settings
}

func (f *fakeSettings) SetDeliveryStatus(status, message string, wordsSent int) error {
	f.status, f.message, f.count = status, message, wordsSent
	return nil
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []emailer.Message
	sendErr error
	block   chan struct{}
}

func (f *fakeSender) Send(_ context.Context, msg emailer.Message) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) TestConnection(context.Context) error { return f.sendErr }
func (f *fakeSender) Name() string                         { return "fake" }

func twoWords() []entities.VocabularyEntry {
	return []entities.VocabularyEntry{
		{Headword: "brave", Definition: "Ready to face danger", PartOfSpeech: "adjective", Example: "The brave firefighter saved the cat."},
		{Headword: "curious", Definition: "Wanting to know or learn something", PartOfSpeech: "adjective"},
	}
}

func defaultSettings() *fakeSettings {
	return &fakeSettings{settings: settingsstore.DeliverySettings{
		Enabled:        true,
		RecipientEmail: "kid@example.com",
		WordsPerDay:    2,
		ScheduleTime:   "09:00",
		SubjectPrefix:  "📚",
		BotName:        "Daily Vocabulary Bot",
	}}
}

func newTestService(sel WordSelector, history HistoryStore, settings DeliverySettingsStore, sender emailer.Sender) *DeliveryService {
	s := NewDeliveryService(sel, history, settings, sender, nil)
	s.now = func() time.Time { return time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestDeliveryService_Run(t *testing.T) {
	sel := &fakeSelector{words: twoWords()}
	history := &fakeHistory{sent: []string{"happy"}, stats: sentwords.Stats{TotalWords: 4, WordsToday: 0}}
	settings := defaultSettings()
	sender := &fakeSender{}

	result, err := newTestService(sel, history, settings, sender).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sel.gotCount)
	assert.Equal(t, []string{"happy"}, sel.excluded)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "kid@example.com", msg.To)
	assert.Equal(t, "📚 Daily Vocabulary - March 3, 2025", msg.Subject)
	assert.Contains(t, msg.Text, "1. Brave")
	assert.Contains(t, msg.Text, "Total words sent so far: 4")

	assert.True(t, result.Sent)
	assert.Equal(t, 2, result.Recorded)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, result.BatchID, history.batchID)
	assert.Len(t, history.marked, 2)

	assert.Equal(t, settingsstore.StatusSuccess, settings.status)
	assert.Equal(t, 2, settings.count)
}

func TestDeliveryService_Run_NoWords(t *testing.T) {
	settings := defaultSettings()
	sender := &fakeSender{}
	history := &fakeHistory{}

	_, err := newTestService(&fakeSelector{}, history, settings, sender).Run(context.Background())

	assert.ErrorIs(t, err, ErrNoNewWords)
	assert.Empty(t, sender.sent)
	assert.Zero(t, history.markCalls)
	assert.Equal(t, settingsstore.StatusNoWords, settings.status)
}

func TestDeliveryService_Run_SendFailureRecordsNothing(t *testing.T) {
	settings := defaultSettings()
	history := &fakeHistory{}
	sender := &fakeSender{sendErr: errors.New("smtp down")}

	result, err := newTestService(&fakeSelector{words: twoWords()}, history, settings, sender).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
	assert.False(t, result.Sent)
	assert.Zero(t, history.markCalls)
	assert.Equal(t, settingsstore.StatusFailed, settings.status)
}

func TestDeliveryService_Run_SentButNotRecorded(t *testing.T) {
	settings := defaultSettings()
	history := &fakeHistory{markErr: errors.New("disk full")}
	sender := &fakeSender{}

	result, err := newTestService(&fakeSelector{words: twoWords()}, history, settings, sender).Run(context.Background())

	assert.ErrorIs(t, err, ErrNotRecorded)
	require.NotNil(t, result)
	assert.True(t, result.Sent)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, settingsstore.StatusDegraded, settings.status)
	assert.Equal(t, 2, settings.count)
}

func TestDeliveryService_Run_NotConfigured(t *testing.T) {
	settings := defaultSettings()

	_, err := newTestService(&fakeSelector{words: twoWords()}, &fakeHistory{}, settings, nil).Run(context.Background())
	assert.ErrorIs(t, err, ErrEmailNotConfigured)

	settings.settings.RecipientEmail = ""
	_, err = newTestService(&fakeSelector{words: twoWords()}, &fakeHistory{}, settings, &fakeSender{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
	assert.Equal(t, settingsstore.StatusFailed, settings.status)
}

func TestDeliveryService_Run_HistoryLoadError(t *testing.T) {
	history := &fakeHistory{loadErr: errors.New("locked")}
	sender := &fakeSender{}

	_, err := newTestService(&fakeSelector{words: twoWords()}, history, defaultSettings(), sender).Run(context.Background())

	require.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestDeliveryService_Run_RejectsConcurrentRun(t *testing.T) {
	sender := &fakeSender{block: make(chan struct{})}
	svc := newTestService(&fakeSelector{words: twoWords()}, &fakeHistory{}, defaultSettings(), sender)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background())
		done <- err
	}()

	require.Eventually(t, svc.IsDelivering, time.Second, 5*time.Millisecond)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrDeliveryInProgress)

	close(sender.block)
	assert.NoError(t, <-done)
	assert.False(t, svc.IsDelivering())
}

func TestDeliveryService_Preview(t *testing.T) {
	sel := &fakeSelector{words: twoWords()}
	history := &fakeHistory{sent: []string{"happy"}}
	sender := &fakeSender{}
	svc := newTestService(sel, history, defaultSettings(), sender)

	words, err := svc.Preview(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, 2, sel.gotCount)

	words, err = svc.Preview(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, words, 1)

	assert.Empty(t, sender.sent)
	assert.Zero(t, history.markCalls)
}

func TestDeliveryService_SendTest(t *testing.T) {
	sel := &fakeSelector{words: twoWords()}
	history := &fakeHistory{}
	sender := &fakeSender{}

	result, err := newTestService(sel, history, defaultSettings(), sender).SendTest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sel.gotCount)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "🧪 Test Daily Vocabulary - March 3, 2025", sender.sent[0].Subject)
	assert.Len(t, result.Words, 1)
	assert.Zero(t, history.markCalls)
}

func TestDeliveryService_TestConnection(t *testing.T) {
	svc := newTestService(&fakeSelector{}, &fakeHistory{}, defaultSettings(), nil)
	assert.ErrorIs(t, svc.TestConnection(context.Background()), ErrEmailNotConfigured)

	svc = newTestService(&fakeSelector{}, &fakeHistory{}, defaultSettings(), &fakeSender{})
	assert.NoError(t, svc.TestConnection(context.Background()))
}
