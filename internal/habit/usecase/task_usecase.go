package usecase

import (
	"errors"

	"github.com/google/uuid"

	"habitus-backend/internal/habit/domain"
	"habitus-backend/internal/habit/repository"
	"habitus-backend/pkg/date"
	"habitus-backend/pkg/fuzzy"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTaskInactive = errors.New("task is inactive")
)

// searchThreshold is the max edit distance for fuzzy task search.
const searchThreshold = 2

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo       repository.TaskDefinitionRepository
	completionRepo repository.CompletionRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskDefinitionRepository, completionRepo repository.CompletionRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
	}
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.TaskDefinition, error) {
	kind := domain.Kind(req.Kind)
	if !kind.Valid() {
		return nil, errors.New("kind must be \"mit\" or \"met\"")
	}

	start, err := date.Parse(req.StartDate)
	if err != nil {
		return nil, err
	}

	def := &domain.TaskDefinition{
		ID:          uuid.New().String(),
		UserID:      userID,
		Kind:        kind,
		Text:        req.Text,
		StartDate:   start,
		IsRecurring: req.IsRecurring,
		IsActive:    true,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		end, err := date.Parse(*req.EndDate)
		if err != nil {
			return nil, err
		}
		if end.Before(start) {
			return nil, errors.New("end_date is before start_date")
		}
		def.EndDate = &end
	}

	if err := u.taskRepo.Create(def); err != nil {
		return nil, err
	}
	return def, nil
}

func (u *taskUsecase) GetTask(userID, taskID string) (*domain.TaskDefinition, error) {
	def, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrTaskNotFound
	}
	if def.UserID != userID {
		return nil, ErrUnauthorized
	}
	return def, nil
}

func (u *taskUsecase) ListTasks(userID string, kind domain.Kind, includeInactive bool) ([]*domain.TaskDefinition, error) {
	if !kind.Valid() {
		return nil, errors.New("kind must be \"mit\" or \"met\"")
	}
	return u.taskRepo.FindByUser(userID, kind, includeInactive)
}

func (u *taskUsecase) TasksForDay(userID string, day date.Date) ([]*DayTask, error) {
	result := []*DayTask{}

	for _, kind := range []domain.Kind{domain.KindMIT, domain.KindMET} {
		defs, err := u.taskRepo.FindActiveByUser(userID, kind)
		if err != nil {
			return nil, err
		}

		completed := map[string]bool{}
		recs, err := u.completionRepo.FindInRange(userID, kind, day, day)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			completed[rec.TaskDefinitionID] = true
		}

		for _, def := range defs {
			if def.ExpectedOn(day) {
				result = append(result, &DayTask{Task: def, Completed: completed[def.ID]})
			}
		}
	}

	return result, nil
}

func (u *taskUsecase) SearchTasks(userID, query string) ([]*domain.TaskDefinition, error) {
	matches := []*domain.TaskDefinition{}
	for _, kind := range []domain.Kind{domain.KindMIT, domain.KindMET} {
		defs, err := u.taskRepo.FindActiveByUser(userID, kind)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			if fuzzy.Match(query, def.Text, searchThreshold) {
				matches = append(matches, def)
			}
		}
	}
	return matches, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates UpdateTaskRequest) (*domain.TaskDefinition, error) {
	def, err := u.GetTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Text != nil {
		def.Text = *updates.Text
	}
	if updates.StartDate != nil && *updates.StartDate != "" {
		start, err := date.Parse(*updates.StartDate)
		if err != nil {
			return nil, err
		}
		def.StartDate = start
	}
	if updates.EndDate != nil {
		if *updates.EndDate == "" {
			def.EndDate = nil
		} else {
			end, err := date.Parse(*updates.EndDate)
			if err != nil {
				return nil, err
			}
			def.EndDate = &end
		}
	}
	if updates.IsRecurring != nil {
		def.IsRecurring = *updates.IsRecurring
	}

	if def.EndDate != nil && def.EndDate.Before(def.StartDate) {
		return nil, errors.New("end_date is before start_date")
	}

	if err := u.taskRepo.Update(def); err != nil {
		return nil, err
	}
	return def, nil
}

func (u *taskUsecase) DeactivateTask(userID, taskID string) error {
	def, err := u.GetTask(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Deactivate(def.ID)
}

func (u *taskUsecase) CompleteTask(userID, taskID string, day date.Date) (*domain.CompletionRecord, error) {
	def, err := u.GetTask(userID, taskID)
	if err != nil {
		return nil, err
	}
	if !def.IsActive {
		return nil, ErrTaskInactive
	}

	rec := &domain.CompletionRecord{
		ID:               uuid.New().String(),
		UserID:           userID,
		TaskDefinitionID: def.ID,
		Kind:             def.Kind,
		Date:             day,
	}
	if err := u.completionRepo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *taskUsecase) UncompleteTask(userID, taskID string, day date.Date) error {
	def, err := u.GetTask(userID, taskID)
	if err != nil {
		return err
	}
	return u.completionRepo.Delete(def.ID, day)
}
