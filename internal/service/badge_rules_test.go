package service

import (
	"bananalearn_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func xpBadge(id uint, threshold int) model.Badge {
	return model.Badge{
		BaseModel:     model.BaseModel{ID: id},
		Name:          "xp badge",
		ConditionType: model.ConditionXP,
		ThresholdXP:   intPtr(threshold),
	}
}

func TestBadgeSatisfiedXPThreshold(t *testing.T) {
	badge := xpBadge(1, 100)

	assert.False(t, BadgeSatisfied(badge, GamificationSnapshot{XP: 99}))
	assert.True(t, BadgeSatisfied(badge, GamificationSnapshot{XP: 100}), "threshold is inclusive")
	assert.True(t, BadgeSatisfied(badge, GamificationSnapshot{XP: 1500}))
}

func TestBadgeSatisfiedMissingThresholdIsSkipped(t *testing.T) {
	badge := model.Badge{
		BaseModel:     model.BaseModel{ID: 2},
		ConditionType: model.ConditionXP,
		// ThresholdXP left nil: the definition is incomplete.
	}

	assert.False(t, BadgeSatisfied(badge, GamificationSnapshot{XP: 1000000}))
}

func TestBadgeSatisfiedUnknownConditionType(t *testing.T) {
	badge := model.Badge{
		BaseModel:     model.BaseModel{ID: 3},
		ConditionType: model.BadgeConditionType("lunar_phase"),
	}

	assert.False(t, BadgeSatisfied(badge, GamificationSnapshot{XP: 1000, StreakDays: 1000}))
}

func TestBadgeSatisfiedTop10(t *testing.T) {
	badge := model.Badge{BaseModel: model.BaseModel{ID: 4}, ConditionType: model.ConditionTop10}

	assert.True(t, BadgeSatisfied(badge, GamificationSnapshot{IsTop10: true}))
	assert.False(t, BadgeSatisfied(badge, GamificationSnapshot{IsTop10: false}))
}

func TestBadgeSatisfiedCoursesCompleted(t *testing.T) {
	badge := model.Badge{
		BaseModel:      model.BaseModel{ID: 5},
		ConditionType:  model.ConditionCoursesCompleted,
		ConditionValue: intPtr(5),
	}

	assert.False(t, BadgeSatisfied(badge, GamificationSnapshot{CoursesCompleted: 4}))
	assert.True(t, BadgeSatisfied(badge, GamificationSnapshot{CoursesCompleted: 5}))
}

func TestBadgeSatisfiedStreak(t *testing.T) {
	badge := model.Badge{
		BaseModel:      model.BaseModel{ID: 6},
		ConditionType:  model.ConditionStreak,
		ConditionValue: intPtr(7),
	}

	assert.False(t, BadgeSatisfied(badge, GamificationSnapshot{StreakDays: 6}))
	assert.True(t, BadgeSatisfied(badge, GamificationSnapshot{StreakDays: 7}))
}

func TestNewlyUnlockableSkipsAlreadyUnlocked(t *testing.T) {
	catalog := []model.Badge{xpBadge(1, 100), xpBadge(2, 1000)}
	unlocked := map[uint]bool{1: true}

	eligible := NewlyUnlockable(catalog, unlocked, GamificationSnapshot{XP: 2000})

	assert.Len(t, eligible, 1)
	assert.Equal(t, uint(2), eligible[0].ID)
}

func TestNewlyUnlockableIsIdempotent(t *testing.T) {
	catalog := []model.Badge{xpBadge(1, 100)}
	snap := GamificationSnapshot{XP: 150}

	first := NewlyUnlockable(catalog, map[uint]bool{}, snap)
	assert.Len(t, first, 1)

	// A second run with the unlock recorded must find nothing new.
	second := NewlyUnlockable(catalog, map[uint]bool{1: true}, snap)
	assert.Empty(t, second)
}

func TestNewlyUnlockableEvaluatesBadgesIndependently(t *testing.T) {
	catalog := []model.Badge{
		xpBadge(1, 100),
		{BaseModel: model.BaseModel{ID: 2}, ConditionType: model.ConditionStreak, ConditionValue: intPtr(3)},
		{BaseModel: model.BaseModel{ID: 3}, ConditionType: model.ConditionTop10},
	}
	snap := GamificationSnapshot{XP: 500, StreakDays: 3, IsTop10: false}

	eligible := NewlyUnlockable(catalog, map[uint]bool{}, snap)

	assert.Len(t, eligible, 2)
	ids := []uint{eligible[0].ID, eligible[1].ID}
	assert.ElementsMatch(t, []uint{1, 2}, ids)
}

func TestRankOf(t *testing.T) {
	users := []model.User{
		{BaseModel: model.BaseModel{ID: 7}, XP: 900},
		{BaseModel: model.BaseModel{ID: 3}, XP: 500},
		{BaseModel: model.BaseModel{ID: 9}, XP: 100},
	}

	assert.Equal(t, 1, RankOf(users, 7))
	assert.Equal(t, 3, RankOf(users, 9))
	assert.Equal(t, 0, RankOf(users, 42), "absent user has no rank")
}

func TestRankOfTenthVersusEleventh(t *testing.T) {
	users := make([]model.User, 12)
	for i := range users {
		users[i] = model.User{BaseModel: model.BaseModel{ID: uint(i + 1)}, XP: 1000 - i}
	}

	rankTen := RankOf(users, 10)
	rankEleven := RankOf(users, 11)

	assert.True(t, rankTen > 0 && rankTen <= 10)
	assert.True(t, rankEleven > 10)
}
