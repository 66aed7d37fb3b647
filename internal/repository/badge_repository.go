package repository

import (
	"bananalearn_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("created_at asc").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.First(&badge, id).Error
	return &badge, err
}

func (r *BadgeRepository) Create(badge *model.Badge) error {
	return r.DB.Create(badge).Error
}

func (r *BadgeRepository) Update(badge *model.Badge) error {
	return r.DB.Save(badge).Error
}

func (r *BadgeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Badge{}, id).Error
}

func (r *BadgeRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Badge{}).Count(&count).Error
	return count, err
}

// FindUnlockedByUserID returns the badge definitions a user has unlocked.
func (r *BadgeRepository) FindUnlockedByUserID(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ?", userID).
		Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

// FindUnlockedIDs returns the badge IDs already unlocked for a user.
func (r *BadgeRepository) FindUnlockedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &ids).Error
	return ids, err
}

func (r *BadgeRepository) CreateUserBadge(ub *model.UserBadge) error {
	return r.DB.Create(ub).Error
}
