package domain

import "time"

// Settings are the user's service-side preferences. The mobile client keeps
// its own presentation settings; only what the backend needs lives here.
type Settings struct {
	UserID       string    `json:"user_id" gorm:"primaryKey"`
	Timezone     string    `json:"timezone" gorm:"default:UTC"` // IANA name, the user's reporting timezone
	ReminderHour int       `json:"reminder_hour" gorm:"default:20"`
	RemindersOn  bool      `json:"reminders_on" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Default returns the settings applied before a user saves any.
func Default(userID string) *Settings {
	return &Settings{
		UserID:       userID,
		Timezone:     "UTC",
		ReminderHour: 20,
		RemindersOn:  true,
	}
}

// Location resolves the stored timezone name, falling back to UTC when the
// name is empty or unknown.
func (s *Settings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
