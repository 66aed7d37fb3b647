package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 30, 0, 0, time.UTC)
}

func TestNextStreakFirstActivity(t *testing.T) {
	state, changed := NextStreak(StreakState{}, date(2025, time.March, 10, 9))

	assert.True(t, changed)
	assert.Equal(t, 1, state.Days)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), *state.LastActivityDate)
}

func TestNextStreakSameDayRepeat(t *testing.T) {
	first := CalendarDay(date(2025, time.March, 10, 9))
	cur := StreakState{Days: 4, LastActivityDate: &first}

	state, changed := NextStreak(cur, date(2025, time.March, 10, 23))

	assert.True(t, changed)
	assert.Equal(t, 4, state.Days, "same-day activity must not grow the streak")
	assert.Equal(t, first, *state.LastActivityDate)
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	first := CalendarDay(date(2025, time.March, 10, 9))
	cur := StreakState{Days: 4, LastActivityDate: &first}

	state, changed := NextStreak(cur, date(2025, time.March, 11, 0))

	assert.True(t, changed)
	assert.Equal(t, 5, state.Days)
}

func TestNextStreakMidnightBoundary(t *testing.T) {
	// 23:59 and 00:01 are one minute apart but on different calendar days.
	late := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	lateDay := CalendarDay(late)
	cur := StreakState{Days: 1, LastActivityDate: &lateDay}

	state, changed := NextStreak(cur, time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC))

	assert.True(t, changed)
	assert.Equal(t, 2, state.Days)
}

func TestNextStreakGapResets(t *testing.T) {
	first := CalendarDay(date(2025, time.March, 10, 9))
	cur := StreakState{Days: 9, LastActivityDate: &first}

	state, changed := NextStreak(cur, date(2025, time.March, 13, 12))

	assert.True(t, changed)
	assert.Equal(t, 1, state.Days)
}

func TestNextStreakBackdatedActivityIsNoOp(t *testing.T) {
	first := CalendarDay(date(2025, time.March, 10, 9))
	cur := StreakState{Days: 3, LastActivityDate: &first}

	state, changed := NextStreak(cur, date(2025, time.March, 8, 9))

	assert.False(t, changed, "replayed stale activity must not touch the row")
	assert.Equal(t, cur, state)
}

func TestNextStreakIsIdempotentWithinADay(t *testing.T) {
	at := date(2025, time.June, 1, 14)

	state, _ := NextStreak(StreakState{}, at)
	again, changed := NextStreak(state, at)

	assert.True(t, changed)
	assert.Equal(t, state.Days, again.Days)

	third, _ := NextStreak(again, at)
	assert.Equal(t, state.Days, third.Days)
}

func TestCalendarDayIgnoresZone(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	// 00:30 CET is 23:30 UTC of the previous day; the streak counts UTC days.
	local := time.Date(2025, time.March, 11, 0, 30, 0, 0, paris)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), CalendarDay(local))
}
