package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/wordmail/internal/services"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

// DeliveryRunner runs one delivery.
type DeliveryRunner interface {
	Run(ctx context.Context) (*services.DeliveryResult, error)
}

// DeliverySettingsReader provides the effective delivery settings.
type DeliverySettingsReader interface {
	GetDeliverySettings() settingsstore.DeliverySettings
}

// Status is a snapshot of the scheduler for the UI and CLI.
type Status struct {
	Running      bool       `json:"running"`
	Delivering   bool       `json:"delivering"`
	ScheduleTime string     `json:"schedule_time"`
	NextRun      *time.Time `json:"next_run,omitempty"`
}

// DailyDeliveryScheduler sends the vocabulary email once a day at the configured time.
type DailyDeliveryScheduler struct {
	runner   DeliveryRunner
	settings DeliverySettingsReader
	logger   logrus.FieldLogger
	timeout  time.Duration

	cron         *cron.Cron
	entryID      cron.EntryID
	spec         string
	scheduleTime string
	parent       context.Context
	mu           sync.RWMutex
	isRunning    bool
	isDelivering bool
	cancelFunc   context.CancelFunc
}

func NewDailyDeliveryScheduler(runner DeliveryRunner, settings DeliverySettingsReader, logger logrus.FieldLogger) *DailyDeliveryScheduler {
	return &DailyDeliveryScheduler{
		runner:   runner,
		settings: settings,
		logger:   logger.WithField("component", "scheduler"),
		timeout:  5 * time.Minute,
		cron:     newCron(),
	}
}

// Start begins the scheduler if delivery is enabled. Cancelling ctx stops it.
func (s *DailyDeliveryScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	s.parent = ctx

	settings := s.settings.GetDeliverySettings()
	if !settings.Enabled {
		s.logger.Info("Daily delivery scheduler: disabled")
		return nil
	}

	spec, err := DailySpec(settings.ScheduleTime)
	if err != nil {
		return fmt.Errorf("invalid schedule time '%s': %w", settings.ScheduleTime, err)
	}

	entryID, err := s.cron.AddFunc(spec, s.runDelivery)
	if err != nil {
		return fmt.Errorf("failed to schedule delivery job: %w", err)
	}
	s.entryID = entryID
	s.spec = spec
	s.scheduleTime = settings.ScheduleTime

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	next, _ := NextRunTime(spec, time.Now())
	s.logger.Infof("Daily delivery scheduler: started, sending every day at %s. Next run: %v",
		settings.ScheduleTime, next)

	go func() {
		<-cancelCtx.Done()
		// Only the parent context stops the scheduler; our own cancel comes from Stop.
		if ctx.Err() != nil {
			s.Stop()
		}
	}()

	return nil
}

// Stop waits for a running delivery to finish, then stops the scheduler
func (s *DailyDeliveryScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	entryID := s.entryID
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.cron.Remove(entryID)
	if cancel != nil {
		cancel()
	}

	s.logger.Info("Daily delivery scheduler: stopped")
}

// Reschedule applies changed settings
func (s *DailyDeliveryScheduler) Reschedule() error {
	s.Stop()

	s.mu.RLock()
	parent := s.parent
	s.mu.RUnlock()
	if parent == nil {
		parent = context.Background()
	}
	return s.Start(parent)
}

// RunNow triggers an immediate delivery in the background
func (s *DailyDeliveryScheduler) RunNow() {
	go s.runDelivery()
}

func (s *DailyDeliveryScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *DailyDeliveryScheduler) IsDelivering() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDelivering
}

// GetNextRunTime returns when the next delivery will occur
func (s *DailyDeliveryScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	entry := s.cron.Entry(s.entryID)
	if entry.Valid() && !entry.Next.IsZero() {
		t := entry.Next
		return &t
	}
	// The cron loop fills in Next asynchronously right after Start.
	next, err := NextRunTime(s.spec, time.Now())
	if err != nil {
		return nil
	}
	return next
}

func (s *DailyDeliveryScheduler) Status() Status {
	next := s.GetNextRunTime()

	s.mu.RLock()
	defer s.mu.RUnlock()
	scheduleTime := s.scheduleTime
	if !s.isRunning || scheduleTime == "" {
		scheduleTime = s.settings.GetDeliverySettings().ScheduleTime
	}
	return Status{
		Running:      s.isRunning,
		Delivering:   s.isDelivering,
		ScheduleTime: scheduleTime,
		NextRun:      next,
	}
}

func (s *DailyDeliveryScheduler) runDelivery() {
	s.mu.Lock()
	if s.isDelivering {
		s.mu.Unlock()
		s.logger.Info("Daily delivery: skipped (already delivering)")
		return
	}
	s.isDelivering = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isDelivering = false
		s.mu.Unlock()
	}()

	if !s.settings.GetDeliverySettings().Enabled {
		s.logger.Info("Daily delivery: skipped (disabled)")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result, err := s.runner.Run(ctx)
	switch {
	case err == nil:
		s.logger.Infof("Daily delivery: sent %d words", len(result.Words))
	case errors.Is(err, services.ErrNoNewWords), errors.Is(err, services.ErrDeliveryInProgress):
		s.logger.Warnf("Daily delivery: %v", err)
	default:
		s.logger.WithError(err).Error("Daily delivery failed")
	}
}
