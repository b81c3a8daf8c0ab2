// Package scheduler runs the daily study reminder.
package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/n5bot/internal/srs"
	"github.com/example/n5bot/internal/storage"
)

// DefaultReminderHour is used when REMINDER_HOUR is not configured
const DefaultReminderHour = 9

// Notifier interface for sending reminder notifications
type Notifier interface {
	SendStudyReminder(weakItems int) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	progress  storage.ProgressStore
	hour      int
}

// New creates a new scheduler instance. The reminder hour comes from
// the REMINDER_HOUR environment variable (0-23).
func New(notifier Notifier, progress storage.ProgressStore) *Scheduler {
	hour := DefaultReminderHour
	if raw := os.Getenv("REMINDER_HOUR"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h <= 23 {
			hour = h
		} else {
			log.Printf("scheduler: ignoring invalid REMINDER_HOUR %q", raw)
		}
	}

	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		notifier:  notifier,
		progress:  progress,
		hour:      hour,
	}
}

// Start begins running all scheduled tasks in the background
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", s.hour)).Do(s.sendReminder)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunManualCheck sends the reminder immediately regardless of the hour
func (s *Scheduler) RunManualCheck() {
	s.sendReminder()
}

// sendReminder counts items still at a weak srs level and pings the
// learner when there is something worth drilling
func (s *Scheduler) sendReminder() {
	stats := srs.Summarize(s.progress.LoadAll())

	weak := 0
	for _, typeStats := range stats {
		weak += typeStats.Weak()
	}
	if weak == 0 {
		return
	}

	if err := s.notifier.SendStudyReminder(weak); err != nil {
		log.Printf("scheduler: failed to send reminder: %v", err)
	}
}
