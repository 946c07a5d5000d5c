package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	habitdomain "habitus-backend/internal/habit/domain"
	habitrepo "habitus-backend/internal/habit/repository"
	settingsdomain "habitus-backend/internal/settings/domain"
	settingsrepo "habitus-backend/internal/settings/repository"
	statsusecase "habitus-backend/internal/stats/usecase"
	"habitus-backend/pkg/date"
)

type captureNotifier struct {
	sent []string // userIDs
}

func (n *captureNotifier) Send(userID, title, body string) error {
	n.sent = append(n.sent, userID)
	return nil
}

type schedulerFixture struct {
	scheduler      *Scheduler
	notifier       *captureNotifier
	taskRepo       *habitrepo.MemoryTaskDefinitionRepository
	completionRepo *habitrepo.MemoryCompletionRepository
	settingsRepo   *settingsrepo.MemorySettingsRepository
}

func newSchedulerFixture(t *testing.T, atHour int) *schedulerFixture {
	t.Helper()
	taskRepo := habitrepo.NewMemoryTaskDefinitionRepository()
	completionRepo := habitrepo.NewMemoryCompletionRepository(taskRepo)
	settingsRepo := settingsrepo.NewMemorySettingsRepository()
	stats := statsusecase.NewStatsUsecase(taskRepo, completionRepo, nil, 90)
	notifier := &captureNotifier{}

	sched := NewScheduler(settingsRepo, stats, notifier, time.Minute)
	sched.now = func() time.Time {
		return time.Date(2024, time.June, 10, atHour, 30, 0, 0, time.UTC)
	}

	return &schedulerFixture{
		scheduler:      sched,
		notifier:       notifier,
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
		settingsRepo:   settingsRepo,
	}
}

func (f *schedulerFixture) addUser(t *testing.T, userID string, reminderHour int) {
	t.Helper()
	s := settingsdomain.Default(userID)
	s.ReminderHour = reminderHour
	require.NoError(t, f.settingsRepo.Save(s))
}

func (f *schedulerFixture) addOpenMIT(t *testing.T, userID string) *habitdomain.TaskDefinition {
	t.Helper()
	def := &habitdomain.TaskDefinition{
		UserID:      userID,
		Kind:        habitdomain.KindMIT,
		Text:        "task",
		StartDate:   date.New(2024, time.January, 1),
		IsRecurring: true,
	}
	require.NoError(t, f.taskRepo.Create(def))
	return def
}

func TestSchedulerSendsWhenMITsOpen(t *testing.T) {
	f := newSchedulerFixture(t, 20)
	f.addUser(t, "u1", 20)
	f.addOpenMIT(t, "u1")

	f.scheduler.checkAndSend()
	assert.Equal(t, []string{"u1"}, f.notifier.sent)

	// Same day, second tick: no duplicate.
	f.scheduler.checkAndSend()
	assert.Equal(t, []string{"u1"}, f.notifier.sent)
}

func TestSchedulerSkipsBeforeReminderHour(t *testing.T) {
	f := newSchedulerFixture(t, 8)
	f.addUser(t, "u1", 20)
	f.addOpenMIT(t, "u1")

	f.scheduler.checkAndSend()
	assert.Empty(t, f.notifier.sent)
}

func TestSchedulerSkipsWhenAllDone(t *testing.T) {
	f := newSchedulerFixture(t, 20)
	f.addUser(t, "u1", 20)
	def := f.addOpenMIT(t, "u1")
	require.NoError(t, f.completionRepo.Create(&habitdomain.CompletionRecord{
		UserID:           "u1",
		TaskDefinitionID: def.ID,
		Kind:             habitdomain.KindMIT,
		Date:             date.New(2024, time.June, 10),
	}))

	f.scheduler.checkAndSend()
	assert.Empty(t, f.notifier.sent)
}

func TestSchedulerSkipsNeutralDay(t *testing.T) {
	f := newSchedulerFixture(t, 20)
	f.addUser(t, "u1", 20) // no MIT definitions at all

	f.scheduler.checkAndSend()
	assert.Empty(t, f.notifier.sent)
}

func TestSchedulerSkipsRemindersOff(t *testing.T) {
	f := newSchedulerFixture(t, 20)
	s := settingsdomain.Default("u1")
	s.RemindersOn = false
	require.NoError(t, f.settingsRepo.Save(s))
	f.addOpenMIT(t, "u1")

	f.scheduler.checkAndSend()
	assert.Empty(t, f.notifier.sent)
}
