package settingsstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/wordmail/internal/config"
	"github.com/mrlokans/wordmail/internal/database"
)

// Setting sources reported alongside effective values.
const (
	SourceDatabase = "database"
	SourceConfig   = "config"
)

// Priority: database > configuration (environment, .env file, defaults)
type SettingsStore struct {
	db  *database.Database
	cfg *config.Config
}

func New(db *database.Database, cfg *config.Config) *SettingsStore {
	return &SettingsStore{db: db, cfg: cfg}
}

// override returns the database value for key when one is stored.
func (s *SettingsStore) override(key string) (string, bool) {
	setting, err := s.db.GetSetting(key)
	if err != nil || setting.Value == "" {
		return "", false
	}
	return setting.Value, true
}

func (s *SettingsStore) source(key string) string {
	if _, ok := s.override(key); ok {
		return SourceDatabase
	}
	return SourceConfig
}

func (s *SettingsStore) clear(keys ...string) error {
	for _, key := range keys {
		if err := s.db.DeleteSetting(key); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}
