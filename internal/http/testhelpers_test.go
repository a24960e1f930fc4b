package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordmail/internal/config"
	"github.com/mrlokans/wordmail/internal/database"
	"github.com/mrlokans/wordmail/internal/entities"
	"github.com/mrlokans/wordmail/internal/logging"
	"github.com/mrlokans/wordmail/internal/scheduler"
	"github.com/mrlokans/wordmail/internal/services"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

const templatesDir = "../../templates"

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Email: config.Email{
			RecipientEmail: "kid@example.com",
			SendGridAPIKey: "SG.key",
		},
		Bot: config.Bot{
			Name:          "Daily Vocabulary Bot",
			SubjectPrefix: "📚",
		},
		Delivery: config.Delivery{
			Enabled:      true,
			WordsPerDay:  2,
			ScheduleTime: "09:00",
		},
	}
}

type fakeDelivery struct {
	mu         sync.Mutex
	words      []entities.VocabularyEntry
	previewErr error
	testErr    error
	connErr    error
	delivering bool
	previewN   int
}

func (f *fakeDelivery) Preview(_ context.Context, count int) ([]entities.VocabularyEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.previewN = count
	if f.previewErr != nil {
		return nil, f.previewErr
	}
	return f.words, nil
}

func (f *fakeDelivery) SendTest(context.Context) (*services.DeliveryResult, error) {
	if f.testErr != nil {
		return nil, f.testErr
	}
	return &services.DeliveryResult{Recipient: "kid@example.com", Words: f.words[:1], Sent: true}, nil
}

func (f *fakeDelivery) TestConnection(context.Context) error { return f.connErr }

func (f *fakeDelivery) IsDelivering() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.delivering
}

type fakeScheduler struct {
	mu            sync.Mutex
	reschedules   int
	runNow        int
	rescheduleErr error
}

func (f *fakeScheduler) Reschedule() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reschedules++
	return f.rescheduleErr
}

func (f *fakeScheduler) RunNow() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runNow++
}

func (f *fakeScheduler) Status() scheduler.Status {
	next := time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)
	return scheduler.Status{Running: true, ScheduleTime: "09:00", NextRun: &next}
}

func sampleWords() []entities.VocabularyEntry {
	return []entities.VocabularyEntry{
		{Headword: "brave", Definition: "Ready to face danger", PartOfSpeech: "adjective", Example: "The brave firefighter saved the cat."},
		{Headword: "curious", Definition: "Wanting to know or learn something", PartOfSpeech: "adjective"},
	}
}

type testServer struct {
	router    *gin.Engine
	db        *database.Database
	store     *settingsstore.SettingsStore
	delivery  *fakeDelivery
	scheduler *fakeScheduler
}

func newTestServer(t *testing.T, mutate func(*RouterConfig)) *testServer {
	t.Helper()
	db := setupTestDB(t)
	store := settingsstore.New(db, testConfig())
	delivery := &fakeDelivery{words: sampleWords()}
	sched := &fakeScheduler{}

	cfg := RouterConfig{
		Database:      db,
		History:       db,
		SettingsStore: store,
		Delivery:      delivery,
		Scheduler:     sched,
		RetentionDays: 365,
		TemplatesPath: templatesDir,
		StaticPath:    "../../static",
		Version:       "test",
	}
	if mutate != nil {
		mutate(&cfg)
	}

	return &testServer{
		router:    NewRouter(cfg),
		db:        db,
		store:     store,
		delivery:  delivery,
		scheduler: sched,
	}
}

func (s *testServer) do(method, url, body, contentType string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
