package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"habitus-backend/internal/habit/domain"
	"habitus-backend/pkg/date"
)

// gormCompletionRepository implements CompletionRepository using GORM
type gormCompletionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new GORM-based CompletionRepository
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &gormCompletionRepository{db: db}
}

// Create inserts a completion record. Completing the same task twice on the
// same day is a no-op (unique task_definition_id + date index).
func (r *gormCompletionRepository) Create(rec *domain.CompletionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_definition_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(rec).Error
}

func (r *gormCompletionRepository) Delete(taskDefinitionID string, day date.Date) error {
	return r.db.Where("task_definition_id = ? AND date = ?", taskDefinitionID, day).
		Delete(&domain.CompletionRecord{}).Error
}

// FindInRange returns completions joined to still-active definitions only:
// deactivating a definition retroactively removes its history from statistics.
func (r *gormCompletionRepository) FindInRange(userID string, kind domain.Kind, from, to date.Date) ([]*domain.CompletionRecord, error) {
	var recs []*domain.CompletionRecord
	err := r.db.
		Joins("JOIN task_definitions ON task_definitions.id = completion_records.task_definition_id").
		Where("completion_records.user_id = ? AND completion_records.kind = ?", userID, kind).
		Where("completion_records.date BETWEEN ? AND ?", from, to).
		Where("task_definitions.is_active = ?", true).
		Order("completion_records.date ASC").
		Find(&recs).Error
	return recs, err
}

func (r *gormCompletionRepository) FindByTaskAndDate(taskDefinitionID string, day date.Date) (*domain.CompletionRecord, error) {
	var rec domain.CompletionRecord
	err := r.db.Where("task_definition_id = ? AND date = ?", taskDefinitionID, day).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
