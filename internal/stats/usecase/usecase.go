package usecase

import (
	"habitus-backend/internal/stats/domain"
	"habitus-backend/pkg/date"
)

// StatsUsecase computes daily aggregates and streaks from the task and
// completion stores. All methods are read-only and recompute from scratch
// on every call; nothing is cached between invocations.
type StatsUsecase interface {
	// GetDailyAggregates returns one aggregate per day of [from, to],
	// ascending by date. A from after to is a caller error; an unreachable
	// store degrades to an empty slice.
	GetDailyAggregates(userID string, from, to date.Date) ([]domain.DailyAggregate, error)

	// GetStreaks computes current and best MIT streaks over the configured
	// lookback window ending today in the user's reporting timezone.
	// An unreachable store degrades to a zeroed result.
	GetStreaks(userID string) (domain.StreakResult, error)
}
