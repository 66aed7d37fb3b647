package model

import "time"

// BadgeConditionType selects which predicate a badge is evaluated with.
type BadgeConditionType string

const (
	ConditionXP               BadgeConditionType = "xp"
	ConditionTop10            BadgeConditionType = "top10"
	ConditionCoursesCompleted BadgeConditionType = "courses_completed"
	ConditionStreak           BadgeConditionType = "streak"
)

// swagger:model Badge
type Badge struct {
	BaseModel
	Name          string             `gorm:"size:100;not null" json:"name"`
	Icon          string             `gorm:"size:255" json:"icon"`
	Description   string             `gorm:"size:500" json:"description"`
	ConditionType BadgeConditionType `gorm:"type:enum('xp','top10','courses_completed','streak');not null" json:"conditionType"`
	// ThresholdXP is only read when ConditionType is "xp".
	ThresholdXP *int `gorm:"column:threshold_xp" json:"thresholdXp,omitempty"`
	// ConditionValue is only read for "courses_completed" and "streak".
	ConditionValue *int `json:"conditionValue,omitempty"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge records a single unlock. The unique index turns a concurrent
// double-unlock into a duplicate-key error the rule engine swallows.
// swagger:model UserBadge
type UserBadge struct {
	BaseModel
	UserID     uint      `gorm:"uniqueIndex:idx_user_badge;type:bigint unsigned;not null" json:"userId"`
	BadgeID    uint      `gorm:"uniqueIndex:idx_user_badge;type:bigint unsigned;not null" json:"badgeId"`
	UnlockedAt time.Time `gorm:"not null" json:"unlockedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
