package database

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordmail/internal/entities"
	"github.com/mrlokans/wordmail/internal/logging"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath, logging.Discard())
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestDatabase_Settings(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.SetSetting(entities.SettingKeyDeliveryEnabled, "false"))

	setting, err := db.GetSetting(entities.SettingKeyDeliveryEnabled)
	require.NoError(t, err)
	assert.Equal(t, "false", setting.Value)

	require.NoError(t, db.DeleteSetting(entities.SettingKeyDeliveryEnabled))
	_, err = db.GetSetting(entities.SettingKeyDeliveryEnabled)
	assert.Error(t, err)
}

func TestDatabase_History(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	_, err := db.MarkWordsSent("b1", []entities.VocabularyEntry{
		{Headword: "optimistic", Definition: "Always thinking that good things will happen"},
	}, now.AddDate(0, 0, -400))
	require.NoError(t, err)
	_, err = db.MarkWordsSent("b2", []entities.VocabularyEntry{
		{Headword: "tenacious", Definition: "Holding on tightly and not letting go"},
	}, now)
	require.NoError(t, err)

	info, err := db.GetInfo(now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.TotalWords)
	assert.Equal(t, int64(1), info.WordsToday)
	assert.Equal(t, db.Path, info.Path)
	assert.Positive(t, info.SizeBytes)

	removed, err := db.CleanupOldWords(365, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = db.CleanupOldWords(0, now)
	assert.Error(t, err)

	headwords, err := db.GetSentHeadwords()
	require.NoError(t, err)
	assert.Equal(t, []string{"tenacious"}, headwords)

	removed, err = db.ResetHistory()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
