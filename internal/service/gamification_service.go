package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/pkg/logger"
	"bananalearn_backend/pkg/monitoring"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserStore is the slice of the user repository the evaluator and the XP
// event services need.
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	AddXP(userID uint, xp int) error
	UpdateStreak(userID uint, streakDays int, lastActivity time.Time) error
	FindTopByXP(limit int) ([]model.User, error)
	FindAllByXPDesc() ([]model.User, error)
}

// BadgeStore is the badge catalog plus the per-user unlock records.
type BadgeStore interface {
	FindAll() ([]model.Badge, error)
	FindUnlockedIDs(userID uint) ([]uint, error)
	FindUnlockedByUserID(userID uint) ([]model.Badge, error)
	CountAll() (int64, error)
	CreateUserBadge(ub *model.UserBadge) error
}

// ProgressStore tracks course completions.
type ProgressStore interface {
	Create(progress *model.UserProgress) error
	CountByUserID(userID uint) (int64, error)
	Exists(userID, courseID uint) (bool, error)
}

// GamificationService recomputes reward state after scoring events: it
// advances streaks and unlocks badges. Event services call it after their
// primary mutation has been committed.
type GamificationService struct {
	UserRepo     UserStore
	BadgeRepo    BadgeStore
	ProgressRepo ProgressStore
}

func NewGamificationService(
	userRepo UserStore,
	badgeRepo BadgeStore,
	progressRepo ProgressStore,
) *GamificationService {
	return &GamificationService{
		UserRepo:     userRepo,
		BadgeRepo:    badgeRepo,
		ProgressRepo: progressRepo,
	}
}

// UpdateStreak applies one qualifying activity to the user's consecutive-day
// counter. At most one user-row update per call; a backdated activity is a
// no-op so replayed requests cannot corrupt the counter.
func (s *GamificationService) UpdateStreak(userID uint, activityAt time.Time) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	next, changed := NextStreak(StreakState{
		Days:             user.StreakDays,
		LastActivityDate: user.LastActivityDate,
	}, activityAt)
	if !changed {
		return nil
	}

	return s.UserRepo.UpdateStreak(userID, next.Days, *next.LastActivityDate)
}

// CheckAndUnlockBadges evaluates every not-yet-unlocked badge against a
// single snapshot of the user's state and inserts one UserBadge row per
// newly satisfied badge. Re-running with unchanged state inserts nothing.
func (s *GamificationService) CheckAndUnlockBadges(userID uint) ([]model.Badge, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.BadgeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	unlockedIDs, err := s.BadgeRepo.FindUnlockedIDs(userID)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[uint]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	completedCount, err := s.ProgressRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	// Rank by walking all users ordered by XP. O(total users), fine for a
	// classroom-sized leaderboard.
	ranked, err := s.UserRepo.FindAllByXPDesc()
	if err != nil {
		return nil, err
	}
	rank := RankOf(ranked, userID)

	snap := GamificationSnapshot{
		XP:               user.XP,
		StreakDays:       user.StreakDays,
		CoursesCompleted: int(completedCount),
		IsTop10:          rank > 0 && rank <= 10,
	}

	var newBadges []model.Badge
	now := time.Now()
	for _, badge := range NewlyUnlockable(catalog, unlocked, snap) {
		err := s.BadgeRepo.CreateUserBadge(&model.UserBadge{
			UserID:     userID,
			BadgeID:    badge.ID,
			UnlockedAt: now,
		})
		if err != nil {
			// A concurrent event may have unlocked the same badge between
			// our snapshot and this insert; the unique index makes that a
			// duplicate-key error we can ignore.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return newBadges, err
		}
		monitoring.BadgesUnlocked.Inc()
		newBadges = append(newBadges, badge)
	}

	return newBadges, nil
}

// RecordActivity is the orchestration entry point event services call after
// committing their primary mutation. activityDefining selects whether the
// event advances the streak (a passive duel loss, for instance, does not).
// Best effort by design: evaluator failures are logged and never surfaced,
// so the event the user triggered still succeeds.
func (s *GamificationService) RecordActivity(userID uint, at time.Time, activityDefining bool) {
	if activityDefining {
		if err := s.UpdateStreak(userID, at); err != nil {
			logger.Log.Warn("streak update failed",
				zap.Uint("userId", userID), zap.Error(err))
		}
	}

	if _, err := s.CheckAndUnlockBadges(userID); err != nil {
		logger.Log.Warn("badge check failed",
			zap.Uint("userId", userID), zap.Error(err))
	}
}

// BadgeStats summarizes catalog completion for a user.
type BadgeStats struct {
	Unlocked   int     `json:"unlocked"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// UserBadges is the payload of GET /api/student/badges.
type UserBadges struct {
	Badges []model.Badge `json:"badges"`
	Stats  BadgeStats    `json:"stats"`
}

func (s *GamificationService) GetUserBadges(userID uint) (*UserBadges, error) {
	badges, err := s.BadgeRepo.FindUnlockedByUserID(userID)
	if err != nil {
		return nil, err
	}

	total, err := s.BadgeRepo.CountAll()
	if err != nil {
		return nil, err
	}

	stats := BadgeStats{
		Unlocked: len(badges),
		Total:    int(total),
	}
	if total > 0 {
		stats.Percentage = float64(stats.Unlocked) / float64(total) * 100
	}

	if badges == nil {
		badges = []model.Badge{}
	}

	return &UserBadges{Badges: badges, Stats: stats}, nil
}

// LeaderboardEntry is one row of the global bananes leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	XP     int    `json:"xp"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *GamificationService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		leaderboard[i] = LeaderboardEntry{
			Rank:   i + 1,
			User:   user.Name,
			XP:     user.XP,
			Avatar: user.Avatar,
		}
	}

	return leaderboard, nil
}
