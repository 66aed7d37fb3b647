package repository

import (
	"bananalearn_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// AddXP credits bananes atomically.
func (r *UserRepository) AddXP(userID uint, xp int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("xp", gorm.Expr("xp + ?", xp)).
		Error
}

// SpendXP debits bananes only when the balance covers the amount; returns
// gorm.ErrRecordNotFound when it does not.
func (r *UserRepository) SpendXP(userID uint, amount int) error {
	res := r.DB.Model(&model.User{}).
		Where("id = ? AND xp >= ?", userID, amount).
		Update("xp", gorm.Expr("xp - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStreak persists the streak counter and the calendar day of the last
// qualifying activity in a single row update.
func (r *UserRepository) UpdateStreak(userID uint, streakDays int, lastActivity time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak_days":        streakDays,
			"last_activity_date": lastActivity,
		}).Error
}

func (r *UserRepository) FindTopByXP(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("xp DESC").Limit(limit).Find(&users).Error
	return users, err
}

// FindAllByXPDesc loads every user ordered by XP. The rule engine walks the
// slice to locate a user's rank; acceptable while the user base stays small.
func (r *UserRepository) FindAllByXPDesc() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("xp DESC").Find(&users).Error
	return users, err
}
