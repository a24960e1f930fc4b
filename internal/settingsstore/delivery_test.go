package settingsstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordmail/internal/config"
	"github.com/mrlokans/wordmail/internal/entities"
)

func ptr[T any](v T) *T { return &v }

func TestDeliverySettingsDefaultsToConfig(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	store := New(db, testConfig())

	settings := store.GetDeliverySettings()

	assert.Equal(t, DeliverySettings{
		Enabled:        true,
		RecipientEmail: "config@example.com",
		WordsPerDay:    2,
		ScheduleTime:   "09:00",
		SubjectPrefix:  "📚",
		BotName:        "Daily Vocabulary Bot",
	}, settings)

	info := store.GetDeliverySettingsInfo()
	assert.Equal(t, SourceConfig, info.WordsPerDaySource)
	assert.Equal(t, config.EmailServiceSendGrid, info.EmailService)
}

func TestUpdateDeliverySettings(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	store := New(db, testConfig())

	err := store.UpdateDeliverySettings(DeliverySettingsUpdate{
		Enabled:        ptr(false),
		RecipientEmail: ptr(" kid@example.com "),
		WordsPerDay:    ptr(5),
		ScheduleTime:   ptr("07:45"),
	})
	require.NoError(t, err)

	settings := store.GetDeliverySettings()
	assert.False(t, settings.Enabled)
	assert.Equal(t, "kid@example.com", settings.RecipientEmail)
	assert.Equal(t, 5, settings.WordsPerDay)
	assert.Equal(t, "07:45", settings.ScheduleTime)
	assert.Equal(t, "Daily Vocabulary Bot", settings.BotName)

	info := store.GetDeliverySettingsInfo()
	assert.Equal(t, SourceDatabase, info.EnabledSource)
	assert.Equal(t, SourceDatabase, info.ScheduleTimeSource)
	assert.Equal(t, SourceConfig, info.BotNameSource)

	t.Run("clear reverts to config", func(t *testing.T) {
		require.NoError(t, store.ClearDeliverySettings())
		assert.Equal(t, 2, store.GetWordsPerDay())
		assert.True(t, store.GetDeliveryEnabled())
		assert.Equal(t, SourceConfig, store.GetDeliverySettingsInfo().ScheduleTimeSource)
	})
}

func TestUpdateDeliverySettingsTrimsBeforeValidation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	store := New(db, testConfig())

	err := store.UpdateDeliverySettings(DeliverySettingsUpdate{
		RecipientEmail: ptr("  kid@example.com\t"),
		ScheduleTime:   ptr(" 06:30 "),
		BotName:        ptr("  Word Owl  "),
	})
	require.NoError(t, err)

	settings := store.GetDeliverySettings()
	assert.Equal(t, "kid@example.com", settings.RecipientEmail)
	assert.Equal(t, "06:30", settings.ScheduleTime)
	assert.Equal(t, "Word Owl", settings.BotName)
}

func TestUpdateDeliverySettingsValidation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	store := New(db, testConfig())

	invalid := []DeliverySettingsUpdate{
		{RecipientEmail: ptr("not-an-email")},
		{WordsPerDay: ptr(0)},
		{WordsPerDay: ptr(11)},
		{ScheduleTime: ptr("25:00")},
		{ScheduleTime: ptr("morning")},
	}
	for _, update := range invalid {
		err := store.UpdateDeliverySettings(update)
		assert.ErrorIs(t, err, ErrInvalidSettings)
	}

	// Nothing was written
	assert.Equal(t, SourceConfig, store.GetDeliverySettingsInfo().WordsPerDaySource)
}

func TestGettersIgnoreBadStoredValues(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	cfg := testConfig()
	cfg.Delivery.ScheduleTime = "whenever"
	store := New(db, cfg)

	require.NoError(t, db.SetSetting(entities.SettingKeyDeliveryWordsPerDay, "42"))
	require.NoError(t, db.SetSetting(entities.SettingKeyDeliveryScheduleTime, "noon"))

	assert.Equal(t, 2, store.GetWordsPerDay())
	assert.Equal(t, config.DefaultScheduleTime, store.GetScheduleTime())
}

func TestDeliveryStatus(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	store := New(db, testConfig())

	empty := store.GetDeliveryStatus()
	assert.Nil(t, empty.LastRunAt)
	assert.Empty(t, empty.Status)

	require.NoError(t, store.SetDeliveryStatus(StatusSuccess, "Sent 2 words", 2))

	status := store.GetDeliveryStatus()
	require.NotNil(t, status.LastRunAt)
	assert.Equal(t, StatusSuccess, status.Status)
	assert.Equal(t, "Sent 2 words", status.Message)
	assert.Equal(t, 2, status.WordsSent)
}
