package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordmail/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_settings_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Setting{}))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db), cleanup
}

func TestRepository_SetSetting(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetSetting(entities.SettingKeyDeliveryScheduleTime, "07:15"))

	setting, err := repo.GetSetting(entities.SettingKeyDeliveryScheduleTime)
	require.NoError(t, err)
	assert.Equal(t, "07:15", setting.Value)

	// Second write updates in place
	require.NoError(t, repo.SetSetting(entities.SettingKeyDeliveryScheduleTime, "18:00"))

	setting, err = repo.GetSetting(entities.SettingKeyDeliveryScheduleTime)
	require.NoError(t, err)
	assert.Equal(t, "18:00", setting.Value)
}

func TestRepository_SetSettings(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetSetting(entities.SettingKeyDeliveryWordsPerDay, "2"))

	err := repo.SetSettings(map[string]string{
		entities.SettingKeyDeliveryWordsPerDay: "5",
		entities.SettingKeyDeliveryRecipient:   "kid@example.com",
	})
	require.NoError(t, err)

	words, err := repo.GetSetting(entities.SettingKeyDeliveryWordsPerDay)
	require.NoError(t, err)
	assert.Equal(t, "5", words.Value)

	recipient, err := repo.GetSetting(entities.SettingKeyDeliveryRecipient)
	require.NoError(t, err)
	assert.Equal(t, "kid@example.com", recipient.Value)
}

func TestRepository_GetSetting_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetSetting(entities.SettingKeyDeliveryLastStatus)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteSetting(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetSetting(entities.SettingKeyDeliveryBotName, "Word Buddy"))
	require.NoError(t, repo.DeleteSetting(entities.SettingKeyDeliveryBotName))

	_, err := repo.GetSetting(entities.SettingKeyDeliveryBotName)
	assert.Error(t, err)

	// Deleting a missing key is not an error
	assert.NoError(t, repo.DeleteSetting(entities.SettingKeyDeliveryBotName))
}
