package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordmail/internal/services"
	"github.com/mrlokans/wordmail/internal/settingsstore"
)

type fakeRunner struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
}

func (f *fakeRunner) Run(context.Context) (*services.DeliveryResult, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &services.DeliveryResult{}, nil
}

type staticSettings struct {
	settings settingsstore.DeliverySettings
}

func (s *staticSettings) GetDeliverySettings() settingsstore.DeliverySettings {
	return s.settings
}

func enabledSettings(at string) *staticSettings {
	return &staticSettings{settings: settingsstore.DeliverySettings{Enabled: true, ScheduleTime: at, WordsPerDay: 2}}
}

func TestDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00", "0 9 * * *", false},
		{"7:05", "5 7 * * *", false},
		{"23:59", "59 23 * * *", false},
		{"24:00", "", true},
		{"9am", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := DailySpec(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, ValidateCronSchedule(got))
		})
	}
}

func TestNextRunTime(t *testing.T) {
	from := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.Local)

	next, err := NextRunTime("0 9 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 4, 9, 0, 0, 0, time.Local), *next)

	_, err = NextRunTime("not a cron", from)
	assert.Error(t, err)
}

func TestDailyDeliveryScheduler_StartStop(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewDailyDeliveryScheduler(&fakeRunner{}, enabledSettings("09:30"), logger)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 30, next.Minute())

	status := s.Status()
	assert.True(t, status.Running)
	assert.Equal(t, "09:30", status.ScheduleTime)

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
}

func TestDailyDeliveryScheduler_Disabled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	settings := enabledSettings("09:00")
	settings.settings.Enabled = false

	s := NewDailyDeliveryScheduler(&fakeRunner{}, settings, logger)
	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestDailyDeliveryScheduler_InvalidTime(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewDailyDeliveryScheduler(&fakeRunner{}, enabledSettings("25:00"), logger)

	assert.Error(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestDailyDeliveryScheduler_Reschedule(t *testing.T) {
	logger, _ := test.NewNullLogger()
	settings := enabledSettings("09:00")
	s := NewDailyDeliveryScheduler(&fakeRunner{}, settings, logger)

	require.NoError(t, s.Start(context.Background()))
	settings.settings.ScheduleTime = "18:45"
	require.NoError(t, s.Reschedule())
	defer s.Stop()

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.Equal(t, 18, next.Hour())
	assert.Equal(t, 45, next.Minute())
	assert.Len(t, s.cron.Entries(), 1)
}

func TestDailyDeliveryScheduler_ContextCancelStops(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewDailyDeliveryScheduler(&fakeRunner{}, enabledSettings("09:00"), logger)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 5*time.Millisecond)
}

func TestDailyDeliveryScheduler_RunNowSkipsOverlap(t *testing.T) {
	logger, hook := test.NewNullLogger()
	runner := &fakeRunner{release: make(chan struct{})}
	s := NewDailyDeliveryScheduler(runner, enabledSettings("09:00"), logger)

	s.RunNow()
	require.Eventually(t, s.IsDelivering, time.Second, 5*time.Millisecond)

	s.runDelivery()
	assert.Equal(t, int32(1), runner.calls.Load())
	assert.Contains(t, hook.LastEntry().Message, "already delivering")

	close(runner.release)
	assert.Eventually(t, func() bool { return !s.IsDelivering() }, time.Second, 5*time.Millisecond)
}

func TestDailyDeliveryScheduler_RunSkipsWhenDisabled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	runner := &fakeRunner{}
	settings := enabledSettings("09:00")
	settings.settings.Enabled = false

	NewDailyDeliveryScheduler(runner, settings, logger).runDelivery()
	assert.Zero(t, runner.calls.Load())
}

func TestDailyDeliveryScheduler_RunLogsFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	runner := &fakeRunner{err: errors.New("smtp down")}

	NewDailyDeliveryScheduler(runner, enabledSettings("09:00"), logger).runDelivery()

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Daily delivery failed", hook.LastEntry().Message)
}

func TestHistoryCleanupScheduler(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var calls atomic.Int32
	job := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	s := NewHistoryCleanupScheduler("30 3 * * 0", job, logger)
	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	s.Stop()
	assert.False(t, s.IsRunning())

	s.run()
	assert.Equal(t, int32(1), calls.Load())

	disabled := NewHistoryCleanupScheduler("", job, logger)
	require.NoError(t, disabled.Start())
	assert.False(t, disabled.IsRunning())

	invalid := NewHistoryCleanupScheduler("every sunday", job, logger)
	assert.Error(t, invalid.Start())
}
