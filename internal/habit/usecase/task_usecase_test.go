package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitus-backend/internal/habit/domain"
	"habitus-backend/internal/habit/repository"
	"habitus-backend/pkg/date"
)

func newTestUsecase() (TaskUsecase, *repository.MemoryTaskDefinitionRepository, *repository.MemoryCompletionRepository) {
	taskRepo := repository.NewMemoryTaskDefinitionRepository()
	completionRepo := repository.NewMemoryCompletionRepository(taskRepo)
	return NewTaskUsecase(taskRepo, completionRepo), taskRepo, completionRepo
}

func strptr(s string) *string { return &s }

func TestCreateTask(t *testing.T) {
	uc, _, _ := newTestUsecase()

	def, err := uc.CreateTask("u1", CreateTaskRequest{
		Kind:        "mit",
		Text:        "Morning run",
		StartDate:   "2024-01-01",
		IsRecurring: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, def.ID)
	assert.Equal(t, domain.KindMIT, def.Kind)
	assert.True(t, def.IsActive)
	assert.Nil(t, def.EndDate)
}

func TestCreateTaskValidation(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.CreateTask("u1", CreateTaskRequest{Kind: "chore", Text: "x", StartDate: "2024-01-01"})
	assert.Error(t, err)

	_, err = uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "x", StartDate: "bogus"})
	assert.Error(t, err)

	_, err = uc.CreateTask("u1", CreateTaskRequest{
		Kind: "mit", Text: "x", StartDate: "2024-01-10",
		EndDate: strptr("2024-01-05"), IsRecurring: true,
	})
	assert.Error(t, err, "end before start must be rejected")
}

func TestGetTaskOwnership(t *testing.T) {
	uc, _, _ := newTestUsecase()

	def, err := uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "x", StartDate: "2024-01-01"})
	require.NoError(t, err)

	_, err = uc.GetTask("u2", def.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.GetTask("u1", "no-such-id")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTasksForDay(t *testing.T) {
	uc, _, _ := newTestUsecase()

	recurring, err := uc.CreateTask("u1", CreateTaskRequest{
		Kind: "mit", Text: "Meditate", StartDate: "2024-01-01", IsRecurring: true,
	})
	require.NoError(t, err)

	_, err = uc.CreateTask("u1", CreateTaskRequest{
		Kind: "mit", Text: "File taxes", StartDate: "2024-04-15", IsRecurring: false,
	})
	require.NoError(t, err)

	_, err = uc.CreateTask("u1", CreateTaskRequest{
		Kind: "met", Text: "Junk food", StartDate: "2024-01-01", IsRecurring: true,
	})
	require.NoError(t, err)

	day := date.New(2024, time.March, 1)
	_, err = uc.CompleteTask("u1", recurring.ID, day)
	require.NoError(t, err)

	tasks, err := uc.TasksForDay("u1", day)
	require.NoError(t, err)
	require.Len(t, tasks, 2, "one-off not yet expected on this day")

	byText := map[string]*DayTask{}
	for _, dt := range tasks {
		byText[dt.Task.Text] = dt
	}
	assert.True(t, byText["Meditate"].Completed)
	assert.False(t, byText["Junk food"].Completed)

	// The one-off shows up only on its exact start date.
	tasks, err = uc.TasksForDay("u1", date.New(2024, time.April, 15))
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestSearchTasks(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "Morning meditation", StartDate: "2024-01-01", IsRecurring: true})
	require.NoError(t, err)
	_, err = uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "Read 20 pages", StartDate: "2024-01-01", IsRecurring: true})
	require.NoError(t, err)

	hits, err := uc.SearchTasks("u1", "meditatoin")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Morning meditation", hits[0].Text)
}

func TestUpdateTask(t *testing.T) {
	uc, _, _ := newTestUsecase()

	def, err := uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "x", StartDate: "2024-01-01", IsRecurring: true})
	require.NoError(t, err)

	updated, err := uc.UpdateTask("u1", def.ID, UpdateTaskRequest{
		Text:    strptr("y"),
		EndDate: strptr("2024-06-30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "y", updated.Text)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2024-06-30", updated.EndDate.String())

	// Clearing the end date reopens the range.
	updated, err = uc.UpdateTask("u1", def.ID, UpdateTaskRequest{EndDate: strptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)

	_, err = uc.UpdateTask("u1", def.ID, UpdateTaskRequest{EndDate: strptr("2023-01-01")})
	assert.Error(t, err, "end before start must be rejected")
}

func TestDeactivateTask(t *testing.T) {
	uc, taskRepo, _ := newTestUsecase()

	def, err := uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "x", StartDate: "2024-01-01", IsRecurring: true})
	require.NoError(t, err)

	require.NoError(t, uc.DeactivateTask("u1", def.ID))

	active, err := taskRepo.FindActiveByUser("u1", domain.KindMIT)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := uc.ListTasks("u1", domain.KindMIT, true)
	require.NoError(t, err)
	assert.Len(t, all, 1, "soft delete keeps the row")

	_, err = uc.CompleteTask("u1", def.ID, date.New(2024, time.January, 2))
	assert.ErrorIs(t, err, ErrTaskInactive)
}

func TestCompleteTaskIdempotent(t *testing.T) {
	uc, _, completionRepo := newTestUsecase()

	def, err := uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "x", StartDate: "2024-01-01", IsRecurring: true})
	require.NoError(t, err)

	day := date.New(2024, time.January, 2)
	_, err = uc.CompleteTask("u1", def.ID, day)
	require.NoError(t, err)
	_, err = uc.CompleteTask("u1", def.ID, day)
	require.NoError(t, err)

	recs, err := completionRepo.FindInRange("u1", domain.KindMIT, day, day)
	require.NoError(t, err)
	assert.Len(t, recs, 1, "same task+day completes once")
}

func TestUncompleteTask(t *testing.T) {
	uc, _, completionRepo := newTestUsecase()

	def, err := uc.CreateTask("u1", CreateTaskRequest{Kind: "mit", Text: "x", StartDate: "2024-01-01", IsRecurring: true})
	require.NoError(t, err)

	day := date.New(2024, time.January, 2)
	_, err = uc.CompleteTask("u1", def.ID, day)
	require.NoError(t, err)
	require.NoError(t, uc.UncompleteTask("u1", def.ID, day))

	rec, err := completionRepo.FindByTaskAndDate(def.ID, day)
	require.NoError(t, err)
	assert.Nil(t, rec)
}
