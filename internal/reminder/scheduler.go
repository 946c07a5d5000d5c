package reminder

import (
	"fmt"
	"log"
	"sync"
	"time"

	settingsrepo "habitus-backend/internal/settings/repository"
	statsusecase "habitus-backend/internal/stats/usecase"
	"habitus-backend/pkg/date"
)

// Scheduler periodically nudges users who still have open MITs for the day.
// A user is reminded at most once per local day, at their configured hour.
type Scheduler struct {
	settingsRepo settingsrepo.SettingsRepository
	stats        statsusecase.StatsUsecase
	notifier     Notifier
	interval     time.Duration
	stopChan     chan struct{}

	mu       sync.Mutex
	lastSent map[string]date.Date // userID -> local day of the last reminder

	now func() time.Time
}

// NewScheduler creates a new reminder scheduler.
func NewScheduler(settingsRepo settingsrepo.SettingsRepository, stats statsusecase.StatsUsecase, notifier Notifier, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{
		settingsRepo: settingsRepo,
		stats:        stats,
		notifier:     notifier,
		interval:     interval,
		stopChan:     make(chan struct{}),
		lastSent:     make(map[string]date.Date),
		now:          time.Now,
	}
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	log.Printf("[Scheduler] Starting reminder scheduler (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.checkAndSend()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSend()
			case <-s.stopChan:
				log.Println("[Scheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

// checkAndSend reminds every due user with incomplete MITs today.
func (s *Scheduler) checkAndSend() {
	all, err := s.settingsRepo.FindAllWithReminders()
	if err != nil {
		log.Printf("[Scheduler] Error listing reminder settings: %v", err)
		return
	}

	for _, userSettings := range all {
		loc := userSettings.Location()
		localNow := s.now().In(loc)
		if localNow.Hour() < userSettings.ReminderHour {
			continue
		}

		today := date.FromTime(localNow)
		if s.alreadySent(userSettings.UserID, today) {
			continue
		}

		aggregates, err := s.stats.GetDailyAggregates(userSettings.UserID, today, today)
		if err != nil || len(aggregates) != 1 {
			continue
		}

		day := aggregates[0]
		if day.MITTotal == 0 || day.MITCompleted >= day.MITTotal {
			// Nothing expected, or everything done: no nudge.
			s.markSent(userSettings.UserID, today)
			continue
		}

		open := day.MITTotal - day.MITCompleted
		title := "Keep your streak going"
		body := fmt.Sprintf("%d of %d important tasks still open today", open, day.MITTotal)
		if err := s.notifier.Send(userSettings.UserID, title, body); err != nil {
			log.Printf("[Scheduler] Error sending reminder to user %s: %v", userSettings.UserID, err)
			continue
		}
		s.markSent(userSettings.UserID, today)
	}
}

func (s *Scheduler) alreadySent(userID string, today date.Date) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, ok := s.lastSent[userID]
	return ok && last.Equal(today)
}

func (s *Scheduler) markSent(userID string, today date.Date) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSent[userID] = today
}
