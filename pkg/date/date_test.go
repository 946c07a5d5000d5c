package date

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	d, err := Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, New(2024, time.February, 29), d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = Parse("2024-13-01")
	assert.Error(t, err)

	_, err = Parse("not-a-date")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	d := New(2024, time.January, 31)
	assert.Equal(t, New(2024, time.February, 1), d.AddDays(1))
	assert.Equal(t, New(2024, time.January, 1), d.AddDays(-30))

	// Leap year boundary.
	assert.Equal(t, New(2024, time.March, 1), New(2024, time.February, 29).AddDays(1))
}

func TestDaysUntil(t *testing.T) {
	a := New(2024, time.January, 1)
	b := New(2024, time.January, 31)
	assert.Equal(t, 30, a.DaysUntil(b))
	assert.Equal(t, -30, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))

	// Across a DST changeover month there is still a whole number of days.
	assert.Equal(t, 366, New(2024, time.January, 1).DaysUntil(New(2025, time.January, 1)))
}

func TestCompare(t *testing.T) {
	a := New(2024, time.March, 10)
	assert.True(t, a.Before(New(2024, time.March, 11)))
	assert.True(t, a.Before(New(2024, time.April, 1)))
	assert.True(t, a.Before(New(2025, time.January, 1)))
	assert.True(t, a.After(New(2024, time.March, 9)))
	assert.True(t, a.Equal(New(2024, time.March, 10)))
	assert.Equal(t, 0, a.Compare(a))
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.July, 4)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-04"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`123`), &back))
}

func TestScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.May, 6, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, New(2024, time.May, 6), d)

	require.NoError(t, d.Scan("2024-05-07"))
	assert.Equal(t, New(2024, time.May, 7), d)

	require.NoError(t, d.Scan([]byte("2024-05-08")))
	assert.Equal(t, New(2024, time.May, 8), d)

	assert.Error(t, d.Scan(42))
}

func TestToday(t *testing.T) {
	// Today in a zone far west and far east can differ, but both must be
	// valid calendar days close to the UTC day.
	utc := Today(time.UTC)
	assert.False(t, utc.IsZero())
	assert.Equal(t, utc, Today(nil))
}
