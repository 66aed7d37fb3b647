package repository

import (
	"bananalearn_backend/internal/model"

	"gorm.io/gorm"
)

type DuelRepository struct {
	DB *gorm.DB
}

func NewDuelRepository(db *gorm.DB) *DuelRepository {
	return &DuelRepository{DB: db}
}

func (r *DuelRepository) Create(duel *model.Duel) error {
	return r.DB.Create(duel).Error
}

func (r *DuelRepository) FindByID(id uint) (*model.Duel, error) {
	var duel model.Duel
	err := r.DB.First(&duel, id).Error
	return &duel, err
}

func (r *DuelRepository) Update(duel *model.Duel) error {
	return r.DB.Save(duel).Error
}

func (r *DuelRepository) FindByUser(userID uint) ([]model.Duel, error) {
	var duels []model.Duel
	err := r.DB.Where("challenger_id = ? OR opponent_id = ?", userID, userID).
		Order("created_at desc").Find(&duels).Error
	return duels, err
}
