package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance("run", "run"))
	assert.Equal(t, 0, Distance("Run", "rUN"))
	assert.Equal(t, 1, Distance("run", "ran"))
	assert.Equal(t, 3, Distance("", "run"))
	assert.Equal(t, 3, Distance("run", ""))
	assert.Equal(t, 3, Distance("kitten", "sitting"))
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("medit", "Morning meditation", 1))   // prefix
	assert.True(t, Match("meditation", "meditation 10min", 1)) // substring
	assert.True(t, Match("meditatoin", "daily meditation", 2)) // typo
	assert.False(t, Match("gym", "Morning meditation", 1))
	assert.False(t, Match("", "anything", 2))
}
