package controller

import (
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// limitRecordingUserStore captures the limit the leaderboard query is
// executed with.
type limitRecordingUserStore struct {
	lastLimit int
}

func (s *limitRecordingUserStore) FindByID(id uint) (*model.User, error) { return &model.User{}, nil }
func (s *limitRecordingUserStore) AddXP(userID uint, xp int) error       { return nil }
func (s *limitRecordingUserStore) UpdateStreak(userID uint, streakDays int, lastActivity time.Time) error {
	return nil
}

func (s *limitRecordingUserStore) FindTopByXP(limit int) ([]model.User, error) {
	s.lastLimit = limit
	return []model.User{}, nil
}

func (s *limitRecordingUserStore) FindAllByXPDesc() ([]model.User, error) {
	return []model.User{}, nil
}

func leaderboardRequest(t *testing.T, query string) (*limitRecordingUserStore, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &limitRecordingUserStore{}
	ctrl := NewGamificationController(service.NewGamificationService(store, nil, nil))

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/leaderboard"+query, nil)

	ctrl.GetLeaderboard(ctx)
	return store, w
}

func TestGetLeaderboardDefaultLimit(t *testing.T) {
	store, w := leaderboardRequest(t, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, store.lastLimit)
}

func TestGetLeaderboardHonorsSmallLimit(t *testing.T) {
	store, w := leaderboardRequest(t, "?limit=25")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, store.lastLimit)
}

func TestGetLeaderboardCapsOversizedLimit(t *testing.T) {
	store, w := leaderboardRequest(t, "?limit=5000")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, store.lastLimit)
}

func TestGetLeaderboardIgnoresInvalidLimit(t *testing.T) {
	store, w := leaderboardRequest(t, "?limit=banane")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, store.lastLimit)
}
