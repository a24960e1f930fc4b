package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/wordmail/internal/config"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

func newCron() *cron.Cron {
	return cron.New(cron.WithParser(parser))
}

// DailySpec converts an HH:MM delivery time into a five-field cron spec.
func DailySpec(scheduleTime string) (string, error) {
	hour, minute, err := config.ParseScheduleTime(scheduleTime)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

// ValidateCronSchedule validates a five-field cron expression
func ValidateCronSchedule(schedule string) error {
	_, err := parser.Parse(schedule)
	return err
}

// NextRunTime calculates when a schedule fires next after from
func NextRunTime(schedule string, from time.Time) (*time.Time, error) {
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(from)
	return &next, nil
}
