package repository

import (
	"bananalearn_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ProgressRepository) Exists(userID, courseID uint) (bool, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProgressRepository) FindByUserID(userID uint) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Order("completed_at desc").Find(&rows).Error
	return rows, err
}
