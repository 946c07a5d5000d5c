package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"habitus-backend/internal/habit/domain"
)

// gormTaskDefinitionRepository implements TaskDefinitionRepository using GORM
type gormTaskDefinitionRepository struct {
	db *gorm.DB
}

// NewTaskDefinitionRepository creates a new GORM-based TaskDefinitionRepository
func NewTaskDefinitionRepository(db *gorm.DB) TaskDefinitionRepository {
	return &gormTaskDefinitionRepository{db: db}
}

func (r *gormTaskDefinitionRepository) Create(def *domain.TaskDefinition) error {
	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	def.IsActive = true
	def.CreatedAt = time.Now()
	def.UpdatedAt = time.Now()
	return r.db.Create(def).Error
}

func (r *gormTaskDefinitionRepository) FindByID(id string) (*domain.TaskDefinition, error) {
	var def domain.TaskDefinition
	err := r.db.Where("id = ?", id).First(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

func (r *gormTaskDefinitionRepository) FindByUser(userID string, kind domain.Kind, includeInactive bool) ([]*domain.TaskDefinition, error) {
	var defs []*domain.TaskDefinition
	query := r.db.Where("user_id = ? AND kind = ?", userID, kind)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("start_date ASC, created_at ASC").Find(&defs).Error
	return defs, err
}

func (r *gormTaskDefinitionRepository) FindActiveByUser(userID string, kind domain.Kind) ([]*domain.TaskDefinition, error) {
	return r.FindByUser(userID, kind, false)
}

func (r *gormTaskDefinitionRepository) Update(def *domain.TaskDefinition) error {
	def.UpdatedAt = time.Now()
	return r.db.Save(def).Error
}

func (r *gormTaskDefinitionRepository) Deactivate(id string) error {
	return r.db.Model(&domain.TaskDefinition{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}
