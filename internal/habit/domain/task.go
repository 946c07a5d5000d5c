package domain

import (
	"time"

	"habitus-backend/pkg/date"
)

// Kind classifies a task definition.
type Kind string

const (
	// KindMIT is a "most important task": something the user should complete.
	KindMIT Kind = "mit"
	// KindMET is a "most expendable thing": something the user should avoid,
	// tracked by whether it occurred.
	KindMET Kind = "met"
)

// Valid reports whether k is a known task kind.
func (k Kind) Valid() bool {
	return k == KindMIT || k == KindMET
}

// TaskDefinition is a habit the user tracks. A one-off definition is expected
// on exactly its start date; a recurring definition is expected on every day
// of [StartDate, EndDate] (open-ended when EndDate is nil).
type TaskDefinition struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Kind        Kind       `json:"kind" gorm:"index;not null"`
	Text        string     `json:"text" gorm:"not null"`
	StartDate   date.Date  `json:"start_date" gorm:"not null"`
	EndDate     *date.Date `json:"end_date,omitempty"`
	IsRecurring bool       `json:"is_recurring"`
	IsActive    bool       `json:"is_active" gorm:"index;default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ExpectedOn reports whether the definition is expected on day d.
//
// One-off definitions match only their start date; EndDate is deliberately
// ignored for them. Recurring definitions match every day from StartDate
// through EndDate inclusive, or forever when EndDate is nil.
func (t *TaskDefinition) ExpectedOn(d date.Date) bool {
	if !t.IsRecurring {
		return t.StartDate.Equal(d)
	}
	if d.Before(t.StartDate) {
		return false
	}
	if t.EndDate != nil && d.After(*t.EndDate) {
		return false
	}
	return true
}

// CompletionRecord logs that a task was done (MIT) or occurred (MET) on a day.
// At most one record exists per task per day.
type CompletionRecord struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"user_id" gorm:"index;not null"`
	TaskDefinitionID string    `json:"task_definition_id" gorm:"index:idx_completion_task_date,unique;not null"`
	Kind             Kind      `json:"kind" gorm:"index;not null"`
	Date             date.Date `json:"date" gorm:"index:idx_completion_task_date,unique;not null"`
	CreatedAt        time.Time `json:"created_at"`
}
