package model

import "time"

// swagger:model Course
type Course struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	XPReward    int    `gorm:"default:50" json:"xpReward"`
	Published   bool   `gorm:"default:false" json:"published"`
	AuthorID    uint   `gorm:"index;type:bigint unsigned" json:"authorId"`
}

func (Course) TableName() string {
	return "courses"
}

// UserProgress holds one row per completed course per user; it is the
// source of the courses_completed badge count.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned;not null" json:"userId"`
	CourseID    uint      `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned;not null" json:"courseId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
