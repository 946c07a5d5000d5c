package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"habitus-backend/pkg/date"
)

func day(y int, m time.Month, d int) date.Date {
	return date.New(y, m, d)
}

func TestExpectedOnOneOff(t *testing.T) {
	start := day(2024, time.February, 10)
	end := day(2024, time.February, 20)
	def := &TaskDefinition{
		Kind:        KindMIT,
		StartDate:   start,
		EndDate:     &end, // ignored for one-off definitions
		IsRecurring: false,
	}

	assert.True(t, def.ExpectedOn(start))
	assert.False(t, def.ExpectedOn(start.AddDays(-1)))
	assert.False(t, def.ExpectedOn(start.AddDays(1)))
	// Even inside the end-date window a one-off only matches its start date.
	assert.False(t, def.ExpectedOn(day(2024, time.February, 15)))
	assert.False(t, def.ExpectedOn(end))
}

func TestExpectedOnRecurringBounded(t *testing.T) {
	start := day(2024, time.January, 5)
	end := day(2024, time.January, 10)
	def := &TaskDefinition{
		Kind:        KindMIT,
		StartDate:   start,
		EndDate:     &end,
		IsRecurring: true,
	}

	assert.False(t, def.ExpectedOn(start.AddDays(-1)))
	// Closed interval on both ends.
	for d := start; !d.After(end); d = d.AddDays(1) {
		assert.True(t, def.ExpectedOn(d), "expected on %s", d)
	}
	assert.False(t, def.ExpectedOn(end.AddDays(1)))
}

func TestExpectedOnRecurringOpenEnded(t *testing.T) {
	start := day(2024, time.January, 1)
	def := &TaskDefinition{
		Kind:        KindMET,
		StartDate:   start,
		IsRecurring: true,
	}

	assert.False(t, def.ExpectedOn(start.AddDays(-1)))
	assert.True(t, def.ExpectedOn(start))
	assert.True(t, def.ExpectedOn(start.AddDays(365)))
	assert.True(t, def.ExpectedOn(start.AddDays(10000)))
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindMIT.Valid())
	assert.True(t, KindMET.Valid())
	assert.False(t, Kind("chore").Valid())
	assert.False(t, Kind("").Valid())
}
