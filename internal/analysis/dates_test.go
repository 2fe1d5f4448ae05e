package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate_MonthName(t *testing.T) {
	assert.Equal(t, "2026-03-15", NormalizeDate("March 15, 2026"))
}

func TestNormalizeDate_DayFirst(t *testing.T) {
	assert.Equal(t, "2026-03-15", NormalizeDate("15 March 2026"))
}

func TestNormalizeDate_SlashDayMonthYear(t *testing.T) {
	assert.Equal(t, "2026-03-15", NormalizeDate("15/03/2026"))
}

func TestNormalizeDate_DashDayMonthYear(t *testing.T) {
	assert.Equal(t, "2026-03-15", NormalizeDate("15-03-2026"))
}

func TestNormalizeDate_ISOPassesThrough(t *testing.T) {
	assert.Equal(t, "2026-03-15", NormalizeDate("2026-03-15"))
}

func TestNormalizeDate_RangeKeepsOpeningDay(t *testing.T) {
	assert.Equal(t, "2026-03-15", NormalizeDate("March 15-16, 2026"))
}

func TestNormalizeDate_UnparseableReturnsVerbatim(t *testing.T) {
	assert.Equal(t, "coming soon", NormalizeDate("coming soon"))
}

func TestNormalizeDate_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeDate(""))
	assert.Equal(t, "   ", NormalizeDate("   "))
}

func TestNormalizeDate_AbbreviatedMonth(t *testing.T) {
	assert.Equal(t, "2026-09-05", NormalizeDate("Sep 5, 2026"))
}
