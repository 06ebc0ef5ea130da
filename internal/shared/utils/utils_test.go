package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "1990-01-01", FormatDate(d))

	_, err = ParseDate("01/01/1990")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	east := time.FixedZone("UTC+7", 7*3600)
	west := time.FixedZone("UTC-5", -5*3600)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(time.Date(2024, 3, 10, 23, 59, 0, 0, east)))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(time.Date(2024, 3, 10, 1, 0, 0, 0, west)))
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, UniqueStrings([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, UniqueStrings([]string{}))
	assert.Nil(t, UniqueStrings(nil))
}

func TestDifference(t *testing.T) {
	have := map[string]struct{}{"a": {}, "c": {}}
	assert.Equal(t, []string{"b", "d"}, Difference([]string{"a", "b", "c", "d"}, have))
	assert.Nil(t, Difference([]string{"a"}, have))
}
