package repository

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"habitus-backend/internal/settings/domain"
)

// SettingsRepository defines data access for per-user settings.
type SettingsRepository interface {
	// Find returns the user's settings, nil when none are stored
	Find(userID string) (*domain.Settings, error)

	// Save upserts the user's settings
	Save(settings *domain.Settings) error

	// FindAllWithReminders returns settings of every user with reminders on
	FindAllWithReminders() ([]*domain.Settings, error)
}

// gormSettingsRepository implements SettingsRepository using GORM
type gormSettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new GORM-based SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &gormSettingsRepository{db: db}
}

func (r *gormSettingsRepository) Find(userID string) (*domain.Settings, error) {
	var s domain.Settings
	err := r.db.Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *gormSettingsRepository) Save(settings *domain.Settings) error {
	settings.UpdatedAt = time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = settings.UpdatedAt
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"timezone", "reminder_hour", "reminders_on", "updated_at"}),
	}).Create(settings).Error
}

func (r *gormSettingsRepository) FindAllWithReminders() ([]*domain.Settings, error) {
	var out []*domain.Settings
	err := r.db.Where("reminders_on = ?", true).Find(&out).Error
	return out, err
}

// MemorySettingsRepository is an in-memory SettingsRepository for tests.
type MemorySettingsRepository struct {
	mu       sync.RWMutex
	settings map[string]*domain.Settings

	FailNext error
}

// NewMemorySettingsRepository creates an empty in-memory repository.
func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{settings: make(map[string]*domain.Settings)}
}

func (r *MemorySettingsRepository) fail() error {
	err := r.FailNext
	r.FailNext = nil
	return err
}

func (r *MemorySettingsRepository) Find(userID string) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	s, ok := r.settings[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *MemorySettingsRepository) Save(settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	settings.UpdatedAt = time.Now()
	cp := *settings
	r.settings[settings.UserID] = &cp
	return nil
}

func (r *MemorySettingsRepository) FindAllWithReminders() ([]*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	var out []*domain.Settings
	for _, s := range r.settings {
		if s.RemindersOn {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}
