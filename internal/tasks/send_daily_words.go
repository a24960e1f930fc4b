package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/wordmail/internal/services"
)

// DeliveryRunner runs one delivery of the daily email.
type DeliveryRunner interface {
	Run(ctx context.Context) (*services.DeliveryResult, error)
}

// SendDailyWordsTask sends the daily email outside the schedule.
type SendDailyWordsTask struct {
	// Trigger records who asked for the delivery ("api", "cli", ...).
	Trigger string `json:"trigger"`
}

// Config returns the queue configuration. A retry could email the same
// words twice, so the task runs at most once.
func (t SendDailyWordsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "send_daily_words",
		MaxAttempts: 1,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   7 * 24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func SendDailyWordsProcessor(runner DeliveryRunner, logger logrus.FieldLogger) backlite.QueueProcessor[SendDailyWordsTask] {
	return func(ctx context.Context, task SendDailyWordsTask) error {
		if runner == nil {
			return fmt.Errorf("delivery service not configured")
		}

		result, err := runner.Run(ctx)
		switch {
		case errors.Is(err, services.ErrNoNewWords), errors.Is(err, services.ErrDeliveryInProgress):
			logger.Warnf("[TASK] send_daily_words (%s): %v", task.Trigger, err)
			return nil
		case err != nil:
			return fmt.Errorf("send daily words: %w", err)
		}

		logger.Infof("[TASK] send_daily_words (%s): sent %d words, batch %s", task.Trigger, len(result.Words), result.BatchID)
		return nil
	}
}

func NewSendDailyWordsQueue(runner DeliveryRunner, logger logrus.FieldLogger) backlite.Queue {
	return backlite.NewQueue(SendDailyWordsProcessor(runner, logger))
}
