package usecase

import (
	"errors"
	"log"
	"time"

	habitdomain "habitus-backend/internal/habit/domain"
	habitrepo "habitus-backend/internal/habit/repository"
	"habitus-backend/internal/stats/domain"
	"habitus-backend/pkg/date"
)

// ErrInvalidRange is returned when a caller asks for aggregates with
// from after to.
var ErrInvalidRange = errors.New("invalid date range: from is after to")

// LocationResolver reports a user's reporting timezone. "Today" for streak
// purposes is the calendar day in that zone.
type LocationResolver interface {
	LocationFor(userID string) *time.Location
}

// statsUsecase implements StatsUsecase
type statsUsecase struct {
	taskRepo       habitrepo.TaskDefinitionRepository
	completionRepo habitrepo.CompletionRepository
	locations      LocationResolver
	lookbackDays   int
}

// NewStatsUsecase creates a new instance of statsUsecase. locations may be
// nil, in which case streaks are computed against UTC days.
func NewStatsUsecase(taskRepo habitrepo.TaskDefinitionRepository, completionRepo habitrepo.CompletionRepository, locations LocationResolver, lookbackDays int) StatsUsecase {
	if lookbackDays <= 0 {
		lookbackDays = 90
	}
	return &statsUsecase{
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
		locations:      locations,
		lookbackDays:   lookbackDays,
	}
}

func (u *statsUsecase) GetDailyAggregates(userID string, from, to date.Date) ([]domain.DailyAggregate, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	mitDefs, err := u.taskRepo.FindActiveByUser(userID, habitdomain.KindMIT)
	if err != nil {
		log.Printf("[Stats] fetching MIT definitions for user %s failed, returning empty aggregates: %v", userID, err)
		return []domain.DailyAggregate{}, nil
	}
	metDefs, err := u.taskRepo.FindActiveByUser(userID, habitdomain.KindMET)
	if err != nil {
		log.Printf("[Stats] fetching MET definitions for user %s failed, returning empty aggregates: %v", userID, err)
		return []domain.DailyAggregate{}, nil
	}

	mitDone, err := u.completionsByDay(userID, habitdomain.KindMIT, from, to)
	if err != nil {
		return []domain.DailyAggregate{}, nil
	}
	metDone, err := u.completionsByDay(userID, habitdomain.KindMET, from, to)
	if err != nil {
		return []domain.DailyAggregate{}, nil
	}

	days := from.DaysUntil(to) + 1
	aggregates := make([]domain.DailyAggregate, 0, days)
	for d := from; !d.After(to); d = d.AddDays(1) {
		aggregates = append(aggregates, domain.DailyAggregate{
			Date:         d,
			MITTotal:     countExpected(mitDefs, d),
			MITCompleted: mitDone[d],
			METTotal:     countExpected(metDefs, d),
			METCompleted: metDone[d],
		})
	}
	return aggregates, nil
}

// completionsByDay buckets a range's completion records by date in one pass,
// keeping the aggregation O(days + records).
func (u *statsUsecase) completionsByDay(userID string, kind habitdomain.Kind, from, to date.Date) (map[date.Date]int, error) {
	recs, err := u.completionRepo.FindInRange(userID, kind, from, to)
	if err != nil {
		log.Printf("[Stats] fetching %s completions for user %s failed, returning empty aggregates: %v", kind, userID, err)
		return nil, err
	}
	byDay := make(map[date.Date]int, len(recs))
	for _, rec := range recs {
		byDay[rec.Date]++
	}
	return byDay, nil
}

func countExpected(defs []*habitdomain.TaskDefinition, d date.Date) int {
	n := 0
	for _, def := range defs {
		if def.ExpectedOn(d) {
			n++
		}
	}
	return n
}

func (u *statsUsecase) GetStreaks(userID string) (domain.StreakResult, error) {
	loc := time.UTC
	if u.locations != nil {
		if l := u.locations.LocationFor(userID); l != nil {
			loc = l
		}
	}

	today := date.Today(loc)
	from := today.AddDays(-(u.lookbackDays - 1))

	aggregates, err := u.GetDailyAggregates(userID, from, today)
	if err != nil {
		// Only ErrInvalidRange reaches here and the window above is valid,
		// but degrade to a zeroed result rather than surface it.
		log.Printf("[Stats] streak aggregation for user %s failed: %v", userID, err)
		return domain.StreakResult{}, nil
	}

	return CalculateStreaks(aggregates), nil
}

// CalculateStreaks folds an ascending-by-date aggregate sequence into the
// current and best MIT success streaks.
//
// Per-day classification: mitTotal == 0 is neutral and skipped as if the day
// did not exist; completed >= total is a success; anything else is a failure.
// Walking from the most recent day backward, the current streak accumulates
// successes until the first failure, while the best streak tracks the longest
// success run anywhere in the window.
func CalculateStreaks(aggregates []domain.DailyAggregate) domain.StreakResult {
	currentStreak := 0
	bestStreak := 0
	runningRun := 0
	currentBroken := false

	for i := len(aggregates) - 1; i >= 0; i-- {
		day := aggregates[i]
		if day.MITTotal == 0 {
			// Neutral day: transparent for both streaks.
			continue
		}
		if day.MITCompleted >= day.MITTotal {
			runningRun++
			if runningRun > bestStreak {
				bestStreak = runningRun
			}
			if !currentBroken {
				currentStreak++
			}
		} else {
			runningRun = 0
			currentBroken = true
		}
	}

	return domain.StreakResult{
		CurrentStreak: currentStreak,
		BestStreak:    bestStreak,
	}
}
