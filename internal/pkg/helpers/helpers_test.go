package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestNextDailyRun(t *testing.T) {
	now := time.Date(2025, 6, 10, 6, 30, 0, 0, time.UTC)

	next := NextDailyRun(now, "07:00")
	assert.Equal(t, time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC), next)

	// Already past today's slot rolls to tomorrow
	next = NextDailyRun(now, "06:00")
	assert.Equal(t, time.Date(2025, 6, 11, 6, 0, 0, 0, time.UTC), next)

	// Exactly at the slot rolls to tomorrow
	next = NextDailyRun(time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC), "07:00")
	assert.Equal(t, time.Date(2025, 6, 11, 7, 0, 0, 0, time.UTC), next)
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 25)
	assert.Equal(t, uint64(50), offset)
	assert.Equal(t, 25, limit)

	// Out-of-range inputs fall back to defaults
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)
	assert.Equal(t, 5, info.TotalPages)

	// Page beyond the last clamps
	info = NewPaginationInfo(45, 9, 10)
	assert.Equal(t, 5, info.CurrentPage)

	// Empty result set still reports one page
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)
}
