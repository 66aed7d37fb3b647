package service

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/util"
	"bananalearn_backend/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type memUserStore struct {
	user model.User
}

func (m *memUserStore) FindByID(id uint) (*model.User, error) {
	u := m.user
	return &u, nil
}

func (m *memUserStore) AddXP(userID uint, xp int) error {
	m.user.XP += xp
	return nil
}

func (m *memUserStore) UpdateStreak(userID uint, streakDays int, lastActivity time.Time) error {
	m.user.StreakDays = streakDays
	m.user.LastActivityDate = &lastActivity
	return nil
}

func (m *memUserStore) FindTopByXP(limit int) ([]model.User, error) {
	return []model.User{m.user}, nil
}

func (m *memUserStore) FindAllByXPDesc() ([]model.User, error) {
	return []model.User{m.user}, nil
}

type memBadgeStore struct {
	catalog []model.Badge
	unlocks []model.UserBadge
}

func (m *memBadgeStore) FindAll() ([]model.Badge, error) {
	return m.catalog, nil
}

func (m *memBadgeStore) FindUnlockedIDs(userID uint) ([]uint, error) {
	var ids []uint
	for _, ub := range m.unlocks {
		if ub.UserID == userID {
			ids = append(ids, ub.BadgeID)
		}
	}
	return ids, nil
}

func (m *memBadgeStore) FindUnlockedByUserID(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	for _, ub := range m.unlocks {
		for _, b := range m.catalog {
			if ub.UserID == userID && ub.BadgeID == b.ID {
				badges = append(badges, b)
			}
		}
	}
	return badges, nil
}

func (m *memBadgeStore) CountAll() (int64, error) {
	return int64(len(m.catalog)), nil
}

func (m *memBadgeStore) CreateUserBadge(ub *model.UserBadge) error {
	for _, existing := range m.unlocks {
		if existing.UserID == ub.UserID && existing.BadgeID == ub.BadgeID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.unlocks = append(m.unlocks, *ub)
	return nil
}

type memProgressStore struct {
	rows []model.UserProgress
}

func (m *memProgressStore) Create(progress *model.UserProgress) error {
	for _, row := range m.rows {
		if row.UserID == progress.UserID && row.CourseID == progress.CourseID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.rows = append(m.rows, *progress)
	return nil
}

func (m *memProgressStore) CountByUserID(userID uint) (int64, error) {
	var count int64
	for _, row := range m.rows {
		if row.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *memProgressStore) Exists(userID, courseID uint) (bool, error) {
	for _, row := range m.rows {
		if row.UserID == userID && row.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

type memCourseStore struct {
	courses map[uint]model.Course
}

func (m *memCourseStore) Create(course *model.Course) error {
	m.courses[course.ID] = *course
	return nil
}

func (m *memCourseStore) FindByID(id uint) (*model.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &course, nil
}

func (m *memCourseStore) FindPublished() ([]model.Course, error) {
	var out []model.Course
	for _, c := range m.courses {
		if c.Published {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCourseStore) FindByAuthor(authorID uint) ([]model.Course, error) {
	return nil, nil
}

func (m *memCourseStore) Update(course *model.Course) error {
	m.courses[course.ID] = *course
	return nil
}

func (m *memCourseStore) Delete(id uint) error {
	delete(m.courses, id)
	return nil
}

func newTestCourseService() (*CourseService, *memUserStore, *memBadgeStore) {
	logger.Log = zap.NewNop()

	users := &memUserStore{user: model.User{BaseModel: model.BaseModel{ID: 1}, Name: "Kiki"}}
	badges := &memBadgeStore{catalog: []model.Badge{
		xpBadge(1, 100),
		{BaseModel: model.BaseModel{ID: 2}, ConditionType: model.ConditionStreak, ConditionValue: intPtr(7)},
	}}
	progress := &memProgressStore{}
	courses := &memCourseStore{courses: map[uint]model.Course{
		10: {BaseModel: model.BaseModel{ID: 10}, Title: "Lianes 101", XPReward: 50, Published: true},
		11: {BaseModel: model.BaseModel{ID: 11}, Title: "Lianes 201", XPReward: 60, Published: true},
	}}

	gamification := NewGamificationService(users, badges, progress)
	return NewCourseService(courses, progress, users, gamification), users, badges
}

func TestCourseCompletionTwoDayScenario(t *testing.T) {
	svc, users, badges := newTestCourseService()

	// Day 1: first course. 50 bananes, streak starts, no badge yet.
	result, err := svc.CompleteCourse(1, 10)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 50, result.XPGained)
	assert.Equal(t, 50, result.TotalXP)
	assert.Equal(t, 50, users.user.XP)
	assert.Equal(t, 1, users.user.StreakDays)
	assert.Empty(t, badges.unlocks, "50 bananes is below every threshold")

	// The calendar rolls over to the next day.
	yesterday := users.user.LastActivityDate.AddDate(0, 0, -1)
	users.user.LastActivityDate = &yesterday

	// Day 2: second course. 110 bananes total, streak grows, the 100-banane
	// badge unlocks exactly once.
	result, err = svc.CompleteCourse(1, 11)
	assert.NoError(t, err)
	assert.Equal(t, 110, result.TotalXP)
	assert.Equal(t, 110, users.user.XP)
	assert.Equal(t, 2, users.user.StreakDays)
	assert.Len(t, badges.unlocks, 1)
	assert.Equal(t, uint(1), badges.unlocks[0].BadgeID)
	assert.Equal(t, uint(1), badges.unlocks[0].UserID)
}

func TestCheckAndUnlockBadgesIsIdempotent(t *testing.T) {
	svc, _, badges := newTestCourseService()

	_, err := svc.CompleteCourse(1, 10)
	assert.NoError(t, err)
	_, err = svc.CompleteCourse(1, 11)
	assert.NoError(t, err)
	assert.Len(t, badges.unlocks, 1)

	// Re-running the rule engine with unchanged state inserts nothing.
	newBadges, err := svc.Gamification.CheckAndUnlockBadges(1)
	assert.NoError(t, err)
	assert.Empty(t, newBadges)
	assert.Len(t, badges.unlocks, 1, "a second evaluator run must not duplicate the unlock")
}

func TestCompleteCourseTwiceIsRejected(t *testing.T) {
	svc, users, _ := newTestCourseService()

	_, err := svc.CompleteCourse(1, 10)
	assert.NoError(t, err)

	_, err = svc.CompleteCourse(1, 10)
	assert.ErrorIs(t, err, util.ErrCourseCompleted)
	assert.Equal(t, 50, users.user.XP, "a rejected completion must not credit bananes again")
}
