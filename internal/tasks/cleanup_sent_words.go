package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/sirupsen/logrus"
)

// DefaultHistoryRetentionDays is used when a task carries no retention.
const DefaultHistoryRetentionDays = 365

// HistoryCleaner deletes old sent-word history.
type HistoryCleaner interface {
	CleanupOldWords(days int, now time.Time) (int64, error)
}

// CleanupSentWordsTask removes sent words older than the retention period,
// making them eligible for selection again.
type CleanupSentWordsTask struct {
	RetentionDays int `json:"retention_days"`
}

func (t CleanupSentWordsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_sent_words",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func CleanupSentWordsProcessor(cleaner HistoryCleaner, logger logrus.FieldLogger) backlite.QueueProcessor[CleanupSentWordsTask] {
	return func(ctx context.Context, task CleanupSentWordsTask) error {
		if cleaner == nil {
			return fmt.Errorf("history cleaner not configured")
		}

		days := task.RetentionDays
		if days <= 0 {
			days = DefaultHistoryRetentionDays
		}

		deleted, err := cleaner.CleanupOldWords(days, time.Now())
		if err != nil {
			return fmt.Errorf("cleanup sent words: %w", err)
		}

		logger.Infof("[TASK] Cleaned up %d sent words older than %d days", deleted, days)
		return nil
	}
}

func NewCleanupSentWordsQueue(cleaner HistoryCleaner, logger logrus.FieldLogger) backlite.Queue {
	return backlite.NewQueue(CleanupSentWordsProcessor(cleaner, logger))
}
