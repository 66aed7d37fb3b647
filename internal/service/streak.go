package service

import "time"

// StreakState is the streak-relevant slice of a user row.
type StreakState struct {
	Days             int
	LastActivityDate *time.Time
}

// CalendarDay truncates an instant to midnight of its UTC calendar day.
// Time of day and the caller's timezone are deliberately ignored.
func CalendarDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NextStreak applies one qualifying activity to a streak state. The second
// return value reports whether the user row needs to be written at all:
// backdated activity (an out-of-order replay of a retried request) leaves
// the state untouched.
func NextStreak(cur StreakState, activityAt time.Time) (StreakState, bool) {
	activityDay := CalendarDay(activityAt)

	if cur.LastActivityDate == nil {
		// First-ever activity.
		return StreakState{Days: 1, LastActivityDate: &activityDay}, true
	}

	lastDay := CalendarDay(*cur.LastActivityDate)
	daysDiff := int(activityDay.Sub(lastDay).Hours() / 24)

	switch {
	case daysDiff < 0:
		return cur, false
	case daysDiff == 0:
		// Same-day repeat: only the activity date moves.
		return StreakState{Days: cur.Days, LastActivityDate: &activityDay}, true
	case daysDiff == 1:
		return StreakState{Days: cur.Days + 1, LastActivityDate: &activityDay}, true
	default:
		// Gap of more than one day resets the counter.
		return StreakState{Days: 1, LastActivityDate: &activityDay}, true
	}
}
