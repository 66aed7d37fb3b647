package repository

import (
	"bananalearn_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type ClanRepository struct {
	DB *gorm.DB
}

func NewClanRepository(db *gorm.DB) *ClanRepository {
	return &ClanRepository{DB: db}
}

func (r *ClanRepository) Create(clan *model.Clan) error {
	return r.DB.Create(clan).Error
}

func (r *ClanRepository) FindByID(id uint) (*model.Clan, error) {
	var clan model.Clan
	err := r.DB.First(&clan, id).Error
	return &clan, err
}

func (r *ClanRepository) FindByName(name string) (*model.Clan, error) {
	var clan model.Clan
	err := r.DB.Where("name = ?", name).First(&clan).Error
	return &clan, err
}

func (r *ClanRepository) FindAll() ([]model.Clan, error) {
	var clans []model.Clan
	err := r.DB.Order("created_at asc").Find(&clans).Error
	return clans, err
}

func (r *ClanRepository) AddMember(member *model.ClanMember) error {
	return r.DB.Create(member).Error
}

func (r *ClanRepository) IsMember(clanID, userID uint) (bool, error) {
	var member model.ClanMember
	err := r.DB.Where("clan_id = ? AND user_id = ?", clanID, userID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ClanRepository) MemberCount(clanID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ClanMember{}).Where("clan_id = ?", clanID).Count(&count).Error
	return count, err
}

func (r *ClanRepository) CreateContribution(contribution *model.ClanContribution) error {
	return r.DB.Create(contribution).Error
}

// ClanWarRank is one row of the clan-war leaderboard.
type ClanWarRank struct {
	ClanID uint   `json:"clanId"`
	Name   string `json:"name"`
	Emblem string `json:"emblem"`
	Total  int    `json:"total"`
}

// WarRanking orders clans by war-chest total, best first.
func (r *ClanRepository) WarRanking() ([]ClanWarRank, error) {
	var ranking []ClanWarRank
	err := r.DB.Model(&model.ClanContribution{}).
		Select("clan_contributions.clan_id, clans.name, clans.emblem, SUM(clan_contributions.amount) as total").
		Joins("JOIN clans ON clans.id = clan_contributions.clan_id").
		Group("clan_contributions.clan_id, clans.name, clans.emblem").
		Order("total DESC").
		Scan(&ranking).Error
	return ranking, err
}
