package service

import "bananalearn_backend/internal/model"

// GamificationSnapshot is the user state a badge predicate is evaluated
// against. It is taken once per rule-engine run; badges unlocked during the
// run do not feed back into it.
type GamificationSnapshot struct {
	XP               int
	StreakDays       int
	CoursesCompleted int
	IsTop10          bool
}

// BadgeSatisfied evaluates the single predicate selected by the badge's
// condition type. A badge whose required threshold or value is missing is
// never satisfied; it is skipped silently rather than treated as an error.
func BadgeSatisfied(badge model.Badge, snap GamificationSnapshot) bool {
	switch badge.ConditionType {
	case model.ConditionXP:
		return badge.ThresholdXP != nil && snap.XP >= *badge.ThresholdXP
	case model.ConditionTop10:
		return snap.IsTop10
	case model.ConditionCoursesCompleted:
		return badge.ConditionValue != nil && snap.CoursesCompleted >= *badge.ConditionValue
	case model.ConditionStreak:
		return badge.ConditionValue != nil && snap.StreakDays >= *badge.ConditionValue
	default:
		return false
	}
}

// NewlyUnlockable filters the catalog down to badges the snapshot satisfies
// and the user has not unlocked yet. Each badge is evaluated independently;
// there is no ordering between them.
func NewlyUnlockable(catalog []model.Badge, unlocked map[uint]bool, snap GamificationSnapshot) []model.Badge {
	var eligible []model.Badge
	for _, badge := range catalog {
		if unlocked[badge.ID] {
			continue
		}
		if BadgeSatisfied(badge, snap) {
			eligible = append(eligible, badge)
		}
	}
	return eligible
}

// RankOf locates a user in a slice already ordered by XP descending and
// returns the 1-based rank, or 0 when absent.
func RankOf(users []model.User, userID uint) int {
	for i, u := range users {
		if u.ID == userID {
			return i + 1
		}
	}
	return 0
}
