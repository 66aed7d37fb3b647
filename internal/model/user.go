package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	// XP is the platform's single reward currency ("bananes").
	XP               int        `gorm:"default:0" json:"xp"`
	StreakDays       int        `gorm:"default:0" json:"streakDays"`
	LastActivityDate *time.Time `json:"lastActivityDate"`
	Avatar           string     `gorm:"size:255" json:"avatar"`
	Disabled         bool       `gorm:"default:false" json:"disabled"`
	LastLogin        time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
