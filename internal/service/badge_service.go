package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/repository"
)

// BadgeService is the admin side of the badge catalog. Definitions may be
// edited after users unlocked them; UserBadge rows keep pointing at the
// same IDs.
type BadgeService struct {
	BadgeRepo *repository.BadgeRepository
}

func NewBadgeService(badgeRepo *repository.BadgeRepository) *BadgeService {
	return &BadgeService{BadgeRepo: badgeRepo}
}

// BadgeRequest carries the admin create/update payload.
type BadgeRequest struct {
	Name           string `json:"name" binding:"required"`
	Icon           string `json:"icon"`
	Description    string `json:"description"`
	ConditionType  string `json:"conditionType" binding:"required,oneof=xp top10 courses_completed streak"`
	ThresholdXP    *int   `json:"thresholdXp"`
	ConditionValue *int   `json:"conditionValue"`
}

func (s *BadgeService) ListBadges() ([]model.Badge, error) {
	return s.BadgeRepo.FindAll()
}

func (s *BadgeService) GetBadge(id uint) (*model.Badge, error) {
	return s.BadgeRepo.FindByID(id)
}

func (s *BadgeService) CreateBadge(req BadgeRequest) (*model.Badge, error) {
	badge := &model.Badge{
		Name:           req.Name,
		Icon:           req.Icon,
		Description:    req.Description,
		ConditionType:  model.BadgeConditionType(req.ConditionType),
		ThresholdXP:    req.ThresholdXP,
		ConditionValue: req.ConditionValue,
	}

	if err := s.BadgeRepo.Create(badge); err != nil {
		return nil, err
	}

	return badge, nil
}

func (s *BadgeService) UpdateBadge(id uint, req BadgeRequest) (*model.Badge, error) {
	badge, err := s.BadgeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	badge.Name = req.Name
	badge.Icon = req.Icon
	badge.Description = req.Description
	badge.ConditionType = model.BadgeConditionType(req.ConditionType)
	badge.ThresholdXP = req.ThresholdXP
	badge.ConditionValue = req.ConditionValue

	if err := s.BadgeRepo.Update(badge); err != nil {
		return nil, err
	}

	return badge, nil
}

func (s *BadgeService) DeleteBadge(id uint) error {
	if _, err := s.BadgeRepo.FindByID(id); err != nil {
		return err
	}
	return s.BadgeRepo.Delete(id)
}
