package usecase

import (
	"errors"
	"log"
	"time"

	"habitus-backend/internal/settings/domain"
	"habitus-backend/internal/settings/repository"
)

// SettingsUsecase defines the business logic around per-user settings.
type SettingsUsecase interface {
	// GetSettings returns the user's settings, defaults when none stored
	GetSettings(userID string) (*domain.Settings, error)

	// UpdateSettings applies partial updates and persists the result
	UpdateSettings(userID string, updates UpdateSettingsRequest) (*domain.Settings, error)

	// LocationFor resolves the user's reporting timezone, UTC on any failure.
	// Satisfies the statistics usecase's LocationResolver.
	LocationFor(userID string) *time.Location
}

// UpdateSettingsRequest carries the fields that can be updated.
type UpdateSettingsRequest struct {
	Timezone     *string `json:"timezone,omitempty"`
	ReminderHour *int    `json:"reminder_hour,omitempty"`
	RemindersOn  *bool   `json:"reminders_on,omitempty"`
}

// settingsUsecase implements SettingsUsecase
type settingsUsecase struct {
	repo repository.SettingsRepository
}

// NewSettingsUsecase creates a new instance of settingsUsecase
func NewSettingsUsecase(repo repository.SettingsRepository) SettingsUsecase {
	return &settingsUsecase{repo: repo}
}

func (u *settingsUsecase) GetSettings(userID string) (*domain.Settings, error) {
	s, err := u.repo.Find(userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return domain.Default(userID), nil
	}
	return s, nil
}

func (u *settingsUsecase) UpdateSettings(userID string, updates UpdateSettingsRequest) (*domain.Settings, error) {
	s, err := u.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if updates.Timezone != nil {
		if _, err := time.LoadLocation(*updates.Timezone); err != nil {
			return nil, errors.New("unknown timezone: " + *updates.Timezone)
		}
		s.Timezone = *updates.Timezone
	}
	if updates.ReminderHour != nil {
		if *updates.ReminderHour < 0 || *updates.ReminderHour > 23 {
			return nil, errors.New("reminder_hour must be 0..23")
		}
		s.ReminderHour = *updates.ReminderHour
	}
	if updates.RemindersOn != nil {
		s.RemindersOn = *updates.RemindersOn
	}

	if err := u.repo.Save(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *settingsUsecase) LocationFor(userID string) *time.Location {
	s, err := u.repo.Find(userID)
	if err != nil {
		log.Printf("[Settings] lookup for user %s failed, using UTC: %v", userID, err)
		return time.UTC
	}
	if s == nil {
		return time.UTC
	}
	return s.Location()
}
