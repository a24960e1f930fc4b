package http

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wordmail/internal/database"
	"github.com/mrlokans/wordmail/internal/entities"
	"github.com/mrlokans/wordmail/internal/scheduler"
	"github.com/mrlokans/wordmail/internal/services"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

// This file consolidates the interfaces HTTP controllers depend on.
// *database.Database, *settingsstore.SettingsStore, *services.DeliveryService,
// *scheduler.DailyDeliveryScheduler and *tasks.Client satisfy them.

// HistoryStore provides access to the sent-word history.
type HistoryStore interface {
	GetSentWords(limit int) ([]entities.SentWord, error)
	GetInfo(now time.Time) (database.Info, error)
	CleanupOldWords(days int, now time.Time) (int64, error)
	ResetHistory() (int64, error)
}

// DeliverySettingsStore reads and writes the delivery settings overrides.
type DeliverySettingsStore interface {
	GetDeliverySettingsInfo() settingsstore.DeliverySettingsInfo
	UpdateDeliverySettings(update settingsstore.DeliverySettingsUpdate) error
	ClearDeliverySettings() error
	GetDeliveryStatus() settingsstore.DeliveryStatus
}

// DeliveryService runs and previews deliveries.
type DeliveryService interface {
	Preview(ctx context.Context, count int) ([]entities.VocabularyEntry, error)
	SendTest(ctx context.Context) (*services.DeliveryResult, error)
	TestConnection(ctx context.Context) error
	IsDelivering() bool
}

// DeliveryScheduler controls the daily schedule.
type DeliveryScheduler interface {
	Reschedule() error
	RunNow()
	Status() scheduler.Status
}

// TaskQueue enqueues background tasks and reports their status.
type TaskQueue interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
	Workers() int
}

// DictionaryPinger probes the dictionary API.
type DictionaryPinger interface {
	Ping(ctx context.Context) error
	Name() string
}
