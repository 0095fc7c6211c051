package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYearBounds(t *testing.T) {
	_, ok := ParseYear("1899")
	assert.False(t, ok)

	yr, ok := ParseYear("1900")
	assert.True(t, ok)
	assert.Equal(t, 1900, yr)

	yr, ok = ParseYear("9999")
	assert.True(t, ok)
	assert.Equal(t, 9999, yr)

	_, ok = ParseYear("10000")
	assert.False(t, ok)

	_, ok = ParseYear("abcd")
	assert.False(t, ok)
}

func TestParseMonthBounds(t *testing.T) {
	_, ok := ParseMonth("00")
	assert.False(t, ok)
	_, ok = ParseMonth("13")
	assert.False(t, ok)

	_, ok = ParseMonth("01")
	assert.True(t, ok)
	_, ok = ParseMonth("12")
	assert.True(t, ok)
}

func TestParseDayBounds(t *testing.T) {
	_, ok := ParseDay("00")
	assert.False(t, ok)
	_, ok = ParseDay("32")
	assert.False(t, ok)

	_, ok = ParseDay("01")
	assert.True(t, ok)
	_, ok = ParseDay("31")
	assert.True(t, ok)
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("20200101"))
	assert.True(t, IsValidDate("20200230")) // no calendar validation
	assert.False(t, IsValidDate("2020010"))
	assert.False(t, IsValidDate("202001011"))
	assert.False(t, IsValidDate("18991231"))
	assert.False(t, IsValidDate("20201301"))
}

func TestIsValidYearDate(t *testing.T) {
	assert.True(t, IsValidYearDate("2020", "20200101"))
	assert.False(t, IsValidYearDate("abcd", "20200101"))
	assert.False(t, IsValidYearDate("2020", "bad"))
}
