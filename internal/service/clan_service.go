package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/repository"
	"bananalearn_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	clanRankingKey = "clanwar:ranking"
	clanRankingTTL = 30 * time.Second
)

// ClanService manages clans and the clan-war economy. The war ranking is
// cached briefly in Redis because ranking pages poll it.
type ClanService struct {
	ClanRepo     *repository.ClanRepository
	UserRepo     *repository.UserRepository
	Gamification *GamificationService
	Redis        *redis.Client
	DB           *gorm.DB
}

func NewClanService(
	clanRepo *repository.ClanRepository,
	userRepo *repository.UserRepository,
	gamification *GamificationService,
	rdb *redis.Client,
	db *gorm.DB,
) *ClanService {
	return &ClanService{
		ClanRepo:     clanRepo,
		UserRepo:     userRepo,
		Gamification: gamification,
		Redis:        rdb,
		DB:           db,
	}
}

type ClanRequest struct {
	Name        string `json:"name" binding:"required"`
	Emblem      string `json:"emblem"`
	Description string `json:"description"`
}

// ClanDetail adds member count to the clan record.
type ClanDetail struct {
	model.Clan
	MemberCount int64 `json:"memberCount"`
}

func (s *ClanService) CreateClan(leaderID uint, req ClanRequest) (*model.Clan, error) {
	if _, err := s.ClanRepo.FindByName(req.Name); err == nil {
		return nil, util.ErrClanNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	clan := &model.Clan{
		Name:        req.Name,
		Emblem:      req.Emblem,
		Description: req.Description,
		LeaderID:    leaderID,
	}
	if err := s.ClanRepo.Create(clan); err != nil {
		return nil, err
	}

	// The founder is the first member.
	err := s.ClanRepo.AddMember(&model.ClanMember{ClanID: clan.ID, UserID: leaderID})
	if err != nil {
		return nil, err
	}

	return clan, nil
}

func (s *ClanService) ListClans() ([]model.Clan, error) {
	return s.ClanRepo.FindAll()
}

func (s *ClanService) GetClan(id uint) (*ClanDetail, error) {
	clan, err := s.ClanRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrClanNotFound
	}
	if err != nil {
		return nil, err
	}

	count, err := s.ClanRepo.MemberCount(id)
	if err != nil {
		return nil, err
	}

	return &ClanDetail{Clan: *clan, MemberCount: count}, nil
}

func (s *ClanService) JoinClan(userID, clanID uint) error {
	if _, err := s.GetClan(clanID); err != nil {
		return err
	}

	member, err := s.ClanRepo.IsMember(clanID, userID)
	if err != nil {
		return err
	}
	if member {
		return util.ErrAlreadyClanMember
	}

	err = s.ClanRepo.AddMember(&model.ClanMember{ClanID: clanID, UserID: userID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrAlreadyClanMember
	}
	return err
}

// Contribute moves bananes from the member into the clan war chest and
// runs the evaluator: donating is a qualifying activity.
func (s *ClanService) Contribute(ctx context.Context, userID, clanID uint, amount int) error {
	if amount <= 0 {
		return util.ErrInsufficientBananes
	}

	member, err := s.ClanRepo.IsMember(clanID, userID)
	if err != nil {
		return err
	}
	if !member {
		return util.ErrNotClanMember
	}

	// Debit and contribution row commit together, so a failed insert
	// cannot leave the member out of pocket.
	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).SpendXP(userID, amount); err != nil {
			return err
		}
		return repository.NewClanRepository(tx).CreateContribution(&model.ClanContribution{
			ClanID:        clanID,
			UserID:        userID,
			Amount:        amount,
			ContributedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrInsufficientBananes
		}
		return err
	}

	// The ranking cache is stale now; next poll rebuilds it.
	s.Redis.Del(ctx, clanRankingKey)

	s.Gamification.RecordActivity(userID, now, true)

	return nil
}

// WarRanking serves the clan-war leaderboard, cached for a few seconds
// because ranking pages poll it in a loop.
func (s *ClanService) WarRanking(ctx context.Context) ([]repository.ClanWarRank, error) {
	cached, err := s.Redis.Get(ctx, clanRankingKey).Result()
	if err == nil {
		var ranking []repository.ClanWarRank
		if jsonErr := json.Unmarshal([]byte(cached), &ranking); jsonErr == nil {
			return ranking, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	ranking, err := s.ClanRepo.WarRanking()
	if err != nil {
		return nil, err
	}
	if ranking == nil {
		ranking = []repository.ClanWarRank{}
	}

	if payload, err := json.Marshal(ranking); err == nil {
		s.Redis.Set(ctx, clanRankingKey, payload, clanRankingTTL)
	}

	return ranking, nil
}
