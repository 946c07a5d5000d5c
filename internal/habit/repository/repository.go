package repository

import (
	"habitus-backend/internal/habit/domain"
	"habitus-backend/pkg/date"
)

// TaskDefinitionRepository defines data access for task definitions.
type TaskDefinitionRepository interface {
	// Create creates a new task definition
	Create(def *domain.TaskDefinition) error

	// FindByID finds a definition by its ID, nil when absent
	FindByID(id string) (*domain.TaskDefinition, error)

	// FindByUser finds a user's definitions of a kind. Inactive definitions
	// are excluded unless includeInactive is set.
	FindByUser(userID string, kind domain.Kind, includeInactive bool) ([]*domain.TaskDefinition, error)

	// FindActiveByUser finds the user's active definitions of a kind
	FindActiveByUser(userID string, kind domain.Kind) ([]*domain.TaskDefinition, error)

	// Update updates an existing definition
	Update(def *domain.TaskDefinition) error

	// Deactivate soft-deletes a definition. Its completion records stop
	// counting in statistics but stay in the log.
	Deactivate(id string) error
}

// CompletionRepository defines data access for completion records.
type CompletionRepository interface {
	// Create inserts a completion, ignoring duplicates for the same task and day
	Create(rec *domain.CompletionRecord) error

	// Delete removes the completion of a task on a day
	Delete(taskDefinitionID string, day date.Date) error

	// FindInRange returns a user's completions of a kind with date in
	// [from, to], restricted to records of still-active definitions.
	FindInRange(userID string, kind domain.Kind, from, to date.Date) ([]*domain.CompletionRecord, error)

	// FindByTaskAndDate returns the completion of a task on a day, nil when absent
	FindByTaskAndDate(taskDefinitionID string, day date.Date) (*domain.CompletionRecord, error)
}
