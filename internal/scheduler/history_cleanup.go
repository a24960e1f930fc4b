package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CleanupJob prunes the sent-word history. It may run the cleanup inline or
// hand it to the task queue.
type CleanupJob func(ctx context.Context) error

// HistoryCleanupScheduler runs CleanupJob on a cron schedule.
type HistoryCleanupScheduler struct {
	schedule string
	job      CleanupJob
	logger   logrus.FieldLogger

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewHistoryCleanupScheduler(schedule string, job CleanupJob, logger logrus.FieldLogger) *HistoryCleanupScheduler {
	return &HistoryCleanupScheduler{
		schedule: schedule,
		job:      job,
		logger:   logger.WithField("component", "history-cleanup"),
		cron:     newCron(),
	}
}

// Start schedules the cleanup. An empty schedule disables it.
func (s *HistoryCleanupScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.schedule == "" {
		s.logger.Info("History cleanup: disabled")
		return nil
	}
	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cleanup schedule '%s': %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("failed to schedule history cleanup: %w", err)
	}
	s.cron.Start()
	s.isRunning = true

	next, _ := NextRunTime(s.schedule, time.Now())
	s.logger.Infof("History cleanup: scheduled '%s'. Next run: %v", s.schedule, next)
	return nil
}

func (s *HistoryCleanupScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
}

func (s *HistoryCleanupScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *HistoryCleanupScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.job(ctx); err != nil {
		s.logger.WithError(err).Error("History cleanup failed")
	}
}
