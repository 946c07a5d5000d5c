package domain

import "habitus-backend/pkg/date"

// DailyAggregate is one day's expected-versus-completed counts, per task kind.
// Completed counts are deliberately not capped at the totals: a completion
// logged against a definition that is no longer expected that day still
// counts, so consumers must not assume completed <= total.
type DailyAggregate struct {
	Date         date.Date `json:"date"`
	MITTotal     int       `json:"mit_total"`
	MITCompleted int       `json:"mit_completed"`
	METTotal     int       `json:"met_total"`
	METCompleted int       `json:"met_completed"`
}

// StreakResult holds the user's consecutive-success runs for MIT completion.
type StreakResult struct {
	// CurrentStreak counts consecutive success days ending at the most
	// recent non-neutral day, stopping at the first failure.
	CurrentStreak int `json:"current_streak"`
	// BestStreak is the longest success run anywhere in the lookback window.
	BestStreak int `json:"best_streak"`
}
