package usecase

import (
	"habitus-backend/internal/habit/domain"
	"habitus-backend/pkg/date"
)

// TaskUsecase defines the business logic around task definitions and
// their completion log.
type TaskUsecase interface {
	// CreateTask creates a new task definition for the user
	CreateTask(userID string, req CreateTaskRequest) (*domain.TaskDefinition, error)

	// GetTask retrieves a definition by ID (with ownership check)
	GetTask(userID, taskID string) (*domain.TaskDefinition, error)

	// ListTasks lists a user's definitions of a kind
	ListTasks(userID string, kind domain.Kind, includeInactive bool) ([]*domain.TaskDefinition, error)

	// TasksForDay returns the active definitions expected on a day,
	// each annotated with whether it was completed that day.
	TasksForDay(userID string, day date.Date) ([]*DayTask, error)

	// SearchTasks fuzzy-matches the user's active definitions by text
	SearchTasks(userID, query string) ([]*domain.TaskDefinition, error)

	// UpdateTask updates an existing definition
	UpdateTask(userID, taskID string, updates UpdateTaskRequest) (*domain.TaskDefinition, error)

	// DeactivateTask soft-deletes a definition; its history stops counting
	DeactivateTask(userID, taskID string) error

	// CompleteTask logs a completion of a task on a day (idempotent per day)
	CompleteTask(userID, taskID string, day date.Date) (*domain.CompletionRecord, error)

	// UncompleteTask removes the completion of a task on a day
	UncompleteTask(userID, taskID string, day date.Date) error
}

// CreateTaskRequest carries the fields for a new task definition.
type CreateTaskRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Text        string  `json:"text" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date,omitempty"`
	IsRecurring bool    `json:"is_recurring"`
}

// UpdateTaskRequest carries the fields that can be updated.
type UpdateTaskRequest struct {
	Text        *string `json:"text,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
}

// DayTask is a definition expected on a particular day together with its
// completion state for that day.
type DayTask struct {
	Task      *domain.TaskDefinition `json:"task"`
	Completed bool                   `json:"completed"`
}
