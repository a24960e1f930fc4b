package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordmail/internal/database/sentwords"
	"github.com/mrlokans/wordmail/internal/database/settings"
	"github.com/mrlokans/wordmail/internal/entities"
)

type Database struct {
	DB   *gorm.DB
	Path string

	settings  *settings.Repository
	sentWords *sentwords.Repository
}

// Info describes the database file and the delivery history it holds.
type Info struct {
	sentwords.Stats
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

func NewDatabase(dbPath string, log logrus.FieldLogger) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.SentWord{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if log != nil {
		log.Infof("Database initialized successfully at %s", dbPath)
	}

	return &Database{
		DB:        db,
		Path:      dbPath,
		settings:  settings.NewRepository(db),
		sentWords: sentwords.NewRepository(db),
	}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Settings

func (d *Database) GetSetting(key string) (*entities.Setting, error) {
	return d.settings.GetSetting(key)
}

func (d *Database) SetSetting(key, value string) error {
	return d.settings.SetSetting(key, value)
}

func (d *Database) SetSettings(values map[string]string) error {
	return d.settings.SetSettings(values)
}

func (d *Database) DeleteSetting(key string) error {
	return d.settings.DeleteSetting(key)
}

// Sent words

func (d *Database) IsWordSent(word string) (bool, error) {
	return d.sentWords.IsWordSent(word)
}

func (d *Database) MarkWordsSent(batchID string, entries []entities.VocabularyEntry, sentAt time.Time) (int, error) {
	return d.sentWords.MarkWordsSent(batchID, entries, sentAt)
}

func (d *Database) GetSentWords(limit int) ([]entities.SentWord, error) {
	return d.sentWords.GetSentWords(limit)
}

func (d *Database) GetSentHeadwords() ([]string, error) {
	return d.sentWords.GetSentHeadwords()
}

func (d *Database) GetDeliveryStats(now time.Time) (sentwords.Stats, error) {
	return d.sentWords.GetStats(now)
}

// CleanupOldWords removes history older than the given number of days.
func (d *Database) CleanupOldWords(days int, now time.Time) (int64, error) {
	if days <= 0 {
		return 0, errors.New("retention days must be positive")
	}
	return d.sentWords.DeleteOlderThan(now.AddDate(0, 0, -days))
}

// ResetHistory forgets every sent word, so all catalog words become eligible again.
func (d *Database) ResetHistory() (int64, error) {
	return d.sentWords.Reset()
}

// GetInfo reports history statistics together with the on-disk size of the database.
func (d *Database) GetInfo(now time.Time) (Info, error) {
	stats, err := d.sentWords.GetStats(now)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read delivery stats: %w", err)
	}

	info := Info{Stats: stats, Path: d.Path}
	if fi, err := os.Stat(d.Path); err == nil {
		info.SizeBytes = fi.Size()
	}
	return info, nil
}
